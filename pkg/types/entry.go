package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is an expense or an income. Both share one shape and differ only in
// Kind, which is EntityExpense or EntityIncome.
type Entry struct {
	EntryID     int64           // Primary key within its kind.
	UserID      int64           // Owner.
	Kind        EntityType      // EntityExpense or EntityIncome.
	Amount      decimal.Decimal // Always positive.
	Description string          // Free text typed by the user.
	Category    string          // One of the AI closed-set categories.
	Date        time.Time       // Calendar date in the owner's zone.
	CreatedAt   time.Time       // Timestamp of creation.
}

// EntityID implements Named.
func (e Entry) EntityID() int64 { return e.EntryID }

// DisplayName implements Named.
func (e Entry) DisplayName() string { return e.Description }

// IsEntryKind reports whether kind names an Entry table.
func IsEntryKind(kind EntityType) bool {
	return kind == EntityExpense || kind == EntityIncome
}

// CategoryTotal aggregates entries of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// CategoryMonthTotal aggregates entries of one category in one month.
type CategoryMonthTotal struct {
	Category string
	Month    time.Month
	Total    decimal.Decimal
}
