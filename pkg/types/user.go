package types

import "time"

// DefaultTimezone is used for users that never set one.
const DefaultTimezone = "America/Sao_Paulo"

// User is a registered chat participant. Every other record is owned by a
// user, directly or through its parent.
type User struct {
	UserID       int64     // Primary key.
	ChatID       int64     // Transport-level identity; unique.
	Username     string    // Optional handle.
	FirstName    string    // Optional.
	LastName     string    // Optional.
	ReferralCode string    // Unique code other users pass to /start.
	ReferredBy   int64     // UserID of the referrer; zero when none.
	Language     Language  // Language of every reply to this user.
	Timezone     string    // IANA zone name used for "today".
	CreatedAt    time.Time // Timestamp of registration.
}

// Location returns the user's time zone, falling back to DefaultTimezone
// and finally UTC when the stored name cannot be loaded.
func (u User) Location() *time.Location {
	for _, name := range []string{u.Timezone, DefaultTimezone} {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}

// Today returns midnight of the current calendar day in the user's zone.
func (u User) Today(now time.Time) time.Time {
	return DateOf(now.In(u.Location()))
}

// DateOf truncates t to its calendar date, keeping t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateLayout is the persisted and user-facing input format for dates.
const DateLayout = "2006-01-02"
