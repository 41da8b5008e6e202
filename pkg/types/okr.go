package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Objective is the top of an OKR tree. Deleting it deletes its key results
// and their actions.
type Objective struct {
	ObjectiveID int64
	UserID      int64
	Title       string
	Description string
	TargetDate  time.Time // Zero when unset.
	CreatedAt   time.Time
}

// EntityID implements Named.
func (o Objective) EntityID() int64 { return o.ObjectiveID }

// DisplayName implements Named.
func (o Objective) DisplayName() string { return o.Title }

// KeyResult is a measurable outcome under an objective.
type KeyResult struct {
	KeyResultID  int64
	ObjectiveID  int64
	Title        string
	TargetValue  decimal.NullDecimal
	CurrentValue decimal.NullDecimal
	CreatedAt    time.Time
}

// EntityID implements Named.
func (k KeyResult) EntityID() int64 { return k.KeyResultID }

// DisplayName implements Named.
func (k KeyResult) DisplayName() string { return k.Title }

// Percent returns CurrentValue as a percentage of TargetValue. The second
// result is false when either is unset or the target is zero.
func (k KeyResult) Percent() (decimal.Decimal, bool) {
	if !k.TargetValue.Valid || !k.CurrentValue.Valid || k.TargetValue.Decimal.IsZero() {
		return decimal.Zero, false
	}
	return percentOf(k.CurrentValue.Decimal, k.TargetValue.Decimal), true
}

// Action is a concrete step under a key result. Progress is free text such
// as "2/52".
type Action struct {
	ActionID    int64
	KeyResultID int64
	Description string
	Progress    string
	CreatedAt   time.Time
}

// EntityID implements Named.
func (a Action) EntityID() int64 { return a.ActionID }

// DisplayName implements Named.
func (a Action) DisplayName() string { return a.Description }
