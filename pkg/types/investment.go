package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a position the user tracks. Amount is the money put in;
// CurrentValue, when set, is the latest market value the user reported.
type Investment struct {
	InvestmentID int64               // Primary key.
	UserID       int64               // Owner.
	Name         string              // Free text, may contain spaces.
	Type         string              // Free-text asset class, e.g. CDB.
	Amount       decimal.Decimal     // Total contributed; always positive.
	CurrentValue decimal.NullDecimal // Reported market value.
	PurchaseDate time.Time           // Calendar date of the first contribution.
	Notes        string              // Optional.
	CreatedAt    time.Time           // Timestamp of creation.
}

// EntityID implements Named.
func (i Investment) EntityID() int64 { return i.InvestmentID }

// DisplayName implements Named.
func (i Investment) DisplayName() string { return i.Name }

// Value returns the current value, or the invested amount when no current
// value was reported.
func (i Investment) Value() decimal.Decimal {
	if i.CurrentValue.Valid {
		return i.CurrentValue.Decimal
	}
	return i.Amount
}

// Return returns Value minus Amount.
func (i Investment) Return() decimal.Decimal {
	return i.Value().Sub(i.Amount)
}

// ReturnPercent returns the return as a percentage of Amount, rounded to two
// places. It is zero when Amount is zero.
func (i Investment) ReturnPercent() decimal.Decimal {
	return percentOf(i.Return(), i.Amount)
}

// InvestmentTotals aggregates all investments of a user.
type InvestmentTotals struct {
	Invested decimal.Decimal // Sum of Amount.
	Value    decimal.Decimal // Sum of Value().
}

// Return returns Value minus Invested.
func (t InvestmentTotals) Return() decimal.Decimal {
	return t.Value.Sub(t.Invested)
}

// ReturnPercent returns the return as a percentage of Invested.
func (t InvestmentTotals) ReturnPercent() decimal.Decimal {
	return percentOf(t.Return(), t.Invested)
}

// Contribution is money added to an existing investment. Recording one
// raises the investment's Amount (and CurrentValue, when set) by the same
// value in a single transaction.
type Contribution struct {
	ContributionID int64           // Primary key.
	InvestmentID   int64           // Parent investment.
	Amount         decimal.Decimal // Always positive.
	Date           time.Time       // Calendar date.
	CreatedAt      time.Time       // Timestamp of creation.
}

// EntityID implements Named.
func (c Contribution) EntityID() int64 { return c.ContributionID }

// DisplayName implements Named.
func (c Contribution) DisplayName() string { return c.Date.Format(DateLayout) }

var hundred = decimal.NewFromInt(100)

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(2)
}
