package types

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Store defines backend-agnostic access to every persisted record.
// Callers attach to a backend, use the sub-stores, and detach when done.
// Every operation is scoped to an owning user so one user never reads or
// mutates another user's records.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	Users() UserStore
	Entries() EntryStore
	Investments() InvestmentStore
	Habits() HabitStore
	OKRs() OKRStore

	// Lookup returns the read-only view used to resolve user identifiers.
	Lookup() Lookup
}

// Lookup is the storage boundary of identifier resolution.
type Lookup interface {
	// FindByID returns the record of the given entity type with the given
	// primary key owned by ownerID. Returns ErrNotFound otherwise.
	FindByID(ctx context.Context, entity EntityType, ownerID, id int64) (Named, error)

	// SearchByName returns up to limit records of the given entity type
	// owned by ownerID whose display name contains query, ignoring case.
	// Records whose name equals query come first, then the rest by name.
	SearchByName(ctx context.Context, entity EntityType, ownerID int64, query string, limit int) ([]Named, error)
}

// UserStore manages registered users.
type UserStore interface {
	// Create registers a user and assigns UserID, ReferralCode, and
	// CreatedAt. Returns ErrInvalidData when ChatID is zero.
	Create(ctx context.Context, u User) (User, error)
	GetByChatID(ctx context.Context, chatID int64) (User, error)
	GetByReferralCode(ctx context.Context, code string) (User, error)
	SetLanguage(ctx context.Context, userID int64, lang Language) error
	SetTimezone(ctx context.Context, userID int64, tz string) error
	CountReferrals(ctx context.Context, userID int64) (int, error)
}

// EntryStore manages expenses and incomes. kind selects the table and must
// be EntityExpense or EntityIncome; other values return ErrInvalidData.
type EntryStore interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	Get(ctx context.Context, kind EntityType, userID, id int64) (Entry, error)
	Delete(ctx context.Context, kind EntityType, userID, id int64) error
	UpdateAmount(ctx context.Context, kind EntityType, userID, id int64, amount decimal.Decimal) (Entry, error)
	UpdateDescription(ctx context.Context, kind EntityType, userID, id int64, description string) (Entry, error)

	// ListByMonth returns the entries dated in the given month, newest first.
	ListByMonth(ctx context.Context, kind EntityType, userID int64, year int, month time.Month) ([]Entry, error)
	TotalByMonth(ctx context.Context, kind EntityType, userID int64, year int, month time.Month) (decimal.Decimal, error)

	// TotalsByCategory returns per-category totals for the month, largest first.
	TotalsByCategory(ctx context.Context, kind EntityType, userID int64, year int, month time.Month) ([]CategoryTotal, error)

	// CategoryTotalsByMonth returns category by month totals for the year,
	// ordered by category then month.
	CategoryTotalsByMonth(ctx context.Context, kind EntityType, userID int64, year int) ([]CategoryMonthTotal, error)
}

// InvestmentStore manages investments and their contributions.
type InvestmentStore interface {
	Create(ctx context.Context, inv Investment) (Investment, error)
	Get(ctx context.Context, userID, id int64) (Investment, error)

	// List returns the user's investments, newest purchase first.
	List(ctx context.Context, userID int64) ([]Investment, error)
	UpdateCurrentValue(ctx context.Context, userID, id int64, value decimal.Decimal) (Investment, error)
	Delete(ctx context.Context, userID, id int64) error
	Totals(ctx context.Context, userID int64) (InvestmentTotals, error)

	// AddContribution records c and raises the parent investment in one
	// transaction. It returns the stored contribution and the updated
	// investment.
	AddContribution(ctx context.Context, userID int64, c Contribution) (Contribution, Investment, error)

	// DeleteContribution removes a contribution and reverts its effect on
	// the parent investment in one transaction.
	DeleteContribution(ctx context.Context, userID, id int64) error
	Contributions(ctx context.Context, userID, investmentID int64) ([]Contribution, error)
}

// HabitStore manages habits and their daily logs.
type HabitStore interface {
	Create(ctx context.Context, h Habit) (Habit, error)
	Get(ctx context.Context, userID, id int64) (Habit, error)

	// List returns the user's habits ordered by name.
	List(ctx context.Context, userID int64) ([]Habit, error)
	Delete(ctx context.Context, userID, id int64) error
	LinkAction(ctx context.Context, userID, habitID, actionID int64) (Habit, error)

	// Log inserts or updates the log of habitID for date. A NULL value
	// keeps the value of an existing log.
	Log(ctx context.Context, userID, habitID int64, date time.Time, value decimal.NullDecimal, notes string) (HabitLog, error)

	// Logs returns the logs dated within [from, to], newest first.
	Logs(ctx context.Context, habitID int64, from, to time.Time) ([]HabitLog, error)
	YearlyCount(ctx context.Context, habitID int64, year int) (int, error)

	// YearlyReview returns every habit of the user with its yearly count,
	// most logged first.
	YearlyReview(ctx context.Context, userID int64, year int) ([]HabitCount, error)
	Stats(ctx context.Context, habitID int64, year int, today time.Time) (HabitStats, error)
}

// OKRStore manages objectives, key results, and actions.
type OKRStore interface {
	CreateObjective(ctx context.Context, o Objective) (Objective, error)
	GetObjective(ctx context.Context, userID, id int64) (Objective, error)
	ListObjectives(ctx context.Context, userID int64) ([]Objective, error)
	UpdateObjectiveTitle(ctx context.Context, userID, id int64, title string) (Objective, error)

	// DeleteObjective removes the objective with its key results and actions.
	DeleteObjective(ctx context.Context, userID, id int64) error

	// CreateKeyResult returns ErrNotFound when the parent objective is not
	// owned by userID.
	CreateKeyResult(ctx context.Context, userID int64, kr KeyResult) (KeyResult, error)
	GetKeyResult(ctx context.Context, userID, id int64) (KeyResult, error)
	ListKeyResults(ctx context.Context, objectiveID int64) ([]KeyResult, error)
	UpdateKeyResultValue(ctx context.Context, userID, id int64, value decimal.Decimal) (KeyResult, error)
	DeleteKeyResult(ctx context.Context, userID, id int64) error

	// CreateAction returns ErrNotFound when the parent key result is not
	// owned by userID.
	CreateAction(ctx context.Context, userID int64, a Action) (Action, error)
	GetAction(ctx context.Context, userID, id int64) (Action, error)
	ListActions(ctx context.Context, keyResultID int64) ([]Action, error)
	UpdateActionProgress(ctx context.Context, userID, id int64, progress string) (Action, error)
	DeleteAction(ctx context.Context, userID, id int64) error
}
