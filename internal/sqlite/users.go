package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var _ types.UserStore = (*usersTable)(nil)

type usersTable struct {
	backend *Backend
}

const userColumns = `user_id, chat_id, username, first_name, last_name, referral_code,
    referred_by, language, timezone, created_at`

// newReferralCode returns eight upper-case hex characters from a random UUID.
func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Create registers u. Language and Timezone default when unset.
func (ut *usersTable) Create(ctx context.Context, u types.User) (types.User, error) {
	if u.ChatID == 0 {
		return types.User{}, types.ErrInvalidData
	}
	db, err := ut.backend.conn()
	if err != nil {
		return types.User{}, err
	}
	if u.Timezone == "" {
		u.Timezone = types.DefaultTimezone
	}
	u.ReferralCode = newReferralCode()
	u.CreatedAt = nowFunc().UTC().Truncate(time.Second)

	var referredBy sql.NullInt64
	if u.ReferredBy != 0 {
		referredBy = sql.NullInt64{Int64: u.ReferredBy, Valid: true}
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO users (chat_id, username, first_name, last_name, referral_code,
		    referred_by, language, timezone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ChatID, u.Username, u.FirstName, u.LastName, u.ReferralCode,
		referredBy, u.Language.String(), u.Timezone, formatTime(u.CreatedAt),
	)
	if err != nil {
		return types.User{}, fmt.Errorf("inserting user %d: %w", u.ChatID, err)
	}
	if u.UserID, err = res.LastInsertId(); err != nil {
		return types.User{}, fmt.Errorf("reading user id: %w", err)
	}
	return u, nil
}

func (ut *usersTable) GetByChatID(ctx context.Context, chatID int64) (types.User, error) {
	return ut.getWhere(ctx, "chat_id = ?", chatID)
}

func (ut *usersTable) GetByReferralCode(ctx context.Context, code string) (types.User, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return types.User{}, types.ErrNotFound
	}
	return ut.getWhere(ctx, "referral_code = ?", code)
}

func (ut *usersTable) getWhere(ctx context.Context, where string, arg any) (types.User, error) {
	db, err := ut.backend.conn()
	if err != nil {
		return types.User{}, err
	}
	row := db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg)
	u, err := hydrateUser(row)
	if err != nil {
		return types.User{}, notFound(err)
	}
	return u, nil
}

func (ut *usersTable) SetLanguage(ctx context.Context, userID int64, lang types.Language) error {
	return ut.set(ctx, userID, "language", lang.String())
}

func (ut *usersTable) SetTimezone(ctx context.Context, userID int64, tz string) error {
	return ut.set(ctx, userID, "timezone", tz)
}

func (ut *usersTable) set(ctx context.Context, userID int64, column, value string) error {
	db, err := ut.backend.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "UPDATE users SET "+column+" = ? WHERE user_id = ?", value, userID)
	if err != nil {
		return fmt.Errorf("updating user %d %s: %w", userID, column, err)
	}
	return requireAffected(res)
}

func (ut *usersTable) CountReferrals(ctx context.Context, userID int64) (int, error) {
	db, err := ut.backend.conn()
	if err != nil {
		return 0, err
	}
	var n int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE referred_by = ?", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting referrals of %d: %w", userID, err)
	}
	return n, nil
}

func hydrateUser(row scanner) (types.User, error) {
	var (
		u          types.User
		referredBy sql.NullInt64
		lang       string
		createdAt  string
	)
	if err := row.Scan(&u.UserID, &u.ChatID, &u.Username, &u.FirstName, &u.LastName,
		&u.ReferralCode, &referredBy, &lang, &u.Timezone, &createdAt); err != nil {
		return types.User{}, err
	}
	u.ReferredBy = referredBy.Int64
	u.Language, _ = types.ParseLanguage(lang)
	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.User{}, err
	}
	return u, nil
}
