package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Habit frequency types.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Habit is a recurring activity the user logs by day.
type Habit struct {
	HabitID        int64     // Primary key.
	UserID         int64     // Owner.
	Name           string    // Name the user types to log it.
	Description    string    // Optional.
	FrequencyType  string    // FrequencyDaily or FrequencyWeekly.
	FrequencyValue int       // Times per week for weekly habits; zero when unset.
	Unit           string    // Optional unit appended to logged values, e.g. "L".
	LinkedActionID int64     // OKR action the habit feeds; zero when unlinked.
	CreatedAt      time.Time // Timestamp of creation.
}

// EntityID implements Named.
func (h Habit) EntityID() int64 { return h.HabitID }

// DisplayName implements Named.
func (h Habit) DisplayName() string { return h.Name }

// HabitLog records that a habit was done on a date. There is at most one
// log per habit and date; logging again updates the value.
type HabitLog struct {
	LogID     int64
	HabitID   int64
	Date      time.Time
	Value     decimal.NullDecimal
	Notes     string
	CreatedAt time.Time
}

// HabitCount pairs a habit with the number of days it was logged.
type HabitCount struct {
	Habit Habit
	Count int
}

// HabitStats summarizes one habit over a calendar year.
type HabitStats struct {
	Year          int
	TotalDays     int             // Days in Year.
	CompletedDays int             // Distinct logged days in Year.
	Percentage    decimal.Decimal // CompletedDays / TotalDays * 100, two places.
	Streak        int             // Consecutive logged days ending today; zero outside the current year.
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// ComputeHabitStats derives HabitStats from the logged dates of one habit.
// Dates outside year are ignored. The streak counts backward from today and
// stops at the first day without a log or at the start of the year.
func ComputeHabitStats(year int, logged []time.Time, today time.Time) HabitStats {
	days := make(map[string]bool, len(logged))
	for _, d := range logged {
		if d.Year() == year {
			days[d.Format(DateLayout)] = true
		}
	}
	stats := HabitStats{
		Year:          year,
		TotalDays:     DaysInYear(year),
		CompletedDays: len(days),
	}
	stats.Percentage = percentOf(decimal.NewFromInt(int64(stats.CompletedDays)), decimal.NewFromInt(int64(stats.TotalDays)))

	if today.Year() != year {
		return stats
	}
	for d := DateOf(today); d.Year() == year && days[d.Format(DateLayout)]; d = d.AddDate(0, 0, -1) {
		stats.Streak++
	}
	return stats
}
