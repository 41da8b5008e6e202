package types

// EntityType identifies the kind of record a command targets.
type EntityType uint8

// Entity types. EntityNone means the classifier did not recognise one.
const (
	EntityNone EntityType = iota
	EntityExpense
	EntityIncome
	EntityInvestment
	EntityHabit
	EntityObjective
	EntityKeyResult
	EntityAction
	EntityContribution

	// EntityTypeCount sizes tables indexed by EntityType.
	EntityTypeCount
)

var entityTypeNames = [EntityTypeCount]string{
	EntityNone:         "none",
	EntityExpense:      "expense",
	EntityIncome:       "income",
	EntityInvestment:   "investment",
	EntityHabit:        "habit",
	EntityObjective:    "objective",
	EntityKeyResult:    "keyResult",
	EntityAction:       "action",
	EntityContribution: "contribution",
}

// String returns the canonical name of the entity type.
func (e EntityType) String() string {
	if e >= EntityTypeCount {
		return "unknown"
	}
	return entityTypeNames[e]
}

// Named is implemented by every stored record that a user can refer to by
// id or by a free-text name.
type Named interface {
	// EntityID returns the primary key.
	EntityID() int64

	// DisplayName returns the name, title, or description users type to
	// find the record.
	DisplayName() string
}
