package command

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// maxInvestmentNumbers caps the trailing numbers an investment may carry:
// the amount and the current value.
const maxInvestmentNumbers = 2

// InvestmentFields are the fields of a new investment.
type InvestmentFields struct {
	Name         string
	Type         string
	Amount       decimal.Decimal
	CurrentValue decimal.NullDecimal
	Date         time.Time
	HasDate      bool // Date came from the args rather than today.
	Notes        string
}

// EntryFields are the fields of a new expense or income.
type EntryFields struct {
	Description string
	Amount      decimal.Decimal
}

// HabitFields are the fields of a new habit.
type HabitFields struct {
	Name           string
	FrequencyType  string
	FrequencyValue int
}

// HabitLogFields are the fields of one habit log.
type HabitLogFields struct {
	Name    string
	Value   decimal.NullDecimal
	Date    time.Time
	HasDate bool
}

// KeyResultFields are the fields of a new key result.
type KeyResultFields struct {
	Objective string // Identifier of the parent objective.
	Title     string
	Target    decimal.NullDecimal
}

// ContributionFields are the fields of a new contribution.
type ContributionFields struct {
	Investment string // Identifier of the parent investment.
	Amount     decimal.Decimal
	Date       time.Time
	HasDate    bool
}

// ValueUpdateFields carry a record identifier and a new numeric value.
type ValueUpdateFields struct {
	Identifier string
	Value      decimal.Decimal
}

// TextUpdateFields carry a record identifier and free text.
type TextUpdateFields struct {
	Identifier string
	Text       string
}

// LinkFields name a habit and the action it should feed.
type LinkFields struct {
	Habit  string
	Action string
}

// numberAt is a number found by the investment scan and where it was.
type numberAt struct {
	value decimal.Decimal
	index int
}

// ExtractInvestment reads "<name...> <type> <amount> [current] [date] [notes...]".
//
// The last YYYY-MM-DD token is the date. Scanning backward from just before
// it (or from the end), the trailing run of numbers is collected, closest
// to the end first: the first is the amount and a second one, if present,
// the current value. The tokens before the run hold the type (last) and
// the name (the rest). Tokens after the date are notes. Without a date
// token the date is today.
func ExtractInvestment(args []string, today time.Time) (InvestmentFields, error) {
	var f InvestmentFields

	dateIndex := -1
	for i := len(args) - 1; i >= 0; i-- {
		if isDateToken(args[i]) {
			dateIndex = i
			break
		}
	}
	if dateIndex >= 0 {
		d, err := parseDate(args[dateIndex], today.Location())
		if err != nil {
			return f, err
		}
		f.Date, f.HasDate = d, true
	} else {
		f.Date = types.DateOf(today)
	}

	end := len(args)
	if dateIndex >= 0 {
		end = dateIndex
	}
	var numbers []numberAt
	for i := end - 1; i >= 0 && len(numbers) < maxInvestmentNumbers; i-- {
		v, ok := scanNumber(args[i])
		if !ok {
			if len(numbers) > 0 {
				break
			}
			continue
		}
		numbers = append(numbers, numberAt{value: v, index: i})
	}
	if len(numbers) == 0 {
		return f, extractErr(ReasonInvalidAmount, "")
	}

	amount := numbers[0]
	if !amount.value.IsPositive() {
		return f, extractErr(ReasonInvalidAmount, args[amount.index])
	}
	f.Amount = amount.value
	first := amount.index
	if len(numbers) > 1 {
		f.CurrentValue = decimal.NewNullDecimal(numbers[1].value)
		first = numbers[1].index
	}

	region := args[:first]
	if len(region) < 2 {
		return f, extractErr(ReasonMissingNameOrType, "")
	}
	f.Type = region[len(region)-1]
	f.Name = strings.Join(region[:len(region)-1], " ")

	if dateIndex > amount.index {
		f.Notes = strings.Join(args[dateIndex+1:], " ")
	}
	return f, nil
}

// ExtractEntry reads "<description...> <amount>": the last token is the
// amount and the tokens before it are the description, which may be empty.
func ExtractEntry(args []string) (EntryFields, error) {
	var f EntryFields
	if len(args) == 0 {
		return f, extractErr(ReasonInvalidAmount, "")
	}
	last := args[len(args)-1]
	amount, ok := positiveAmount(last)
	if !ok {
		return f, extractErr(ReasonInvalidAmount, last)
	}
	f.Amount = amount
	f.Description = strings.Join(args[:len(args)-1], " ")
	return f, nil
}

// ExtractShorthand reads "<amount> <description...>", the bare form of
// /add and /income where the amount comes first.
func ExtractShorthand(args []string) (EntryFields, error) {
	var f EntryFields
	if len(args) == 0 {
		return f, extractErr(ReasonInvalidAmount, "")
	}
	amount, ok := positiveAmount(args[0])
	if !ok {
		return f, extractErr(ReasonInvalidAmount, args[0])
	}
	f.Amount = amount
	f.Description = strings.Join(args[1:], " ")
	if f.Description == "" {
		return f, extractErr(ReasonMissingNameOrType, "")
	}
	return f, nil
}

// ExtractHabit reads "<name> [frequency...]". A frequency mentioning a week
// is weekly, with the first number in it as times per week ("4x por
// semana"); anything else is daily.
func ExtractHabit(args []string) (HabitFields, error) {
	f := HabitFields{FrequencyType: types.FrequencyDaily}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return f, extractErr(ReasonMissingNameOrType, "")
	}
	f.Name = args[0]
	freq := fold(strings.Join(args[1:], " "))
	if strings.Contains(freq, "semana") || strings.Contains(freq, "week") {
		f.FrequencyType = types.FrequencyWeekly
		if m := digitRun.FindString(freq); m != "" {
			f.FrequencyValue, _ = strconv.Atoi(m)
		}
	}
	return f, nil
}

// ExtractHabitLog reads "<name> [value] [date]". The value is the first
// number inside its token, so "2L" logs 2. The date defaults to today.
func ExtractHabitLog(args []string, today time.Time) (HabitLogFields, error) {
	f := HabitLogFields{Date: types.DateOf(today)}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	f.Name = args[0]
	rest := args[1:]
	if len(rest) > 0 && !isDateToken(rest[0]) {
		if v, ok := leadingValue(rest[0]); ok {
			f.Value = decimal.NewNullDecimal(v)
		}
		rest = rest[1:]
	}
	if len(rest) > 0 && isDateToken(rest[0]) {
		d, err := parseDate(rest[0], today.Location())
		if err != nil {
			return f, err
		}
		f.Date, f.HasDate = d, true
	}
	return f, nil
}

// ExtractKeyResult reads "<objective> <title...> [target]". The last token
// is the target when it is a number and a title remains before it.
func ExtractKeyResult(args []string) (KeyResultFields, error) {
	var f KeyResultFields
	if len(args) == 0 {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	f.Objective = args[0]
	rest := args[1:]
	if len(rest) >= 2 {
		if v, ok := ParseAmount(rest[len(rest)-1]); ok {
			f.Target = decimal.NewNullDecimal(v)
			rest = rest[:len(rest)-1]
		}
	}
	f.Title = strings.Join(rest, " ")
	if f.Title == "" {
		return f, extractErr(ReasonMissingNameOrType, "")
	}
	return f, nil
}

// ExtractContribution reads "<investment...> <amount> [date]".
func ExtractContribution(args []string, today time.Time) (ContributionFields, error) {
	f := ContributionFields{Date: types.DateOf(today)}
	rest := args
	if n := len(rest); n > 0 && isDateToken(rest[n-1]) {
		d, err := parseDate(rest[n-1], today.Location())
		if err != nil {
			return f, err
		}
		f.Date, f.HasDate = d, true
		rest = rest[:n-1]
	}
	if len(rest) == 0 {
		return f, extractErr(ReasonInvalidAmount, "")
	}
	last := rest[len(rest)-1]
	amount, ok := positiveAmount(last)
	if !ok {
		return f, extractErr(ReasonInvalidAmount, last)
	}
	f.Amount = amount
	f.Investment = strings.Join(rest[:len(rest)-1], " ")
	if f.Investment == "" {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	return f, nil
}

// ExtractValueUpdate reads "<identifier...> <value>". The value may be zero
// but not negative.
func ExtractValueUpdate(args []string) (ValueUpdateFields, error) {
	var f ValueUpdateFields
	if len(args) == 0 {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	last := args[len(args)-1]
	v, ok := ParseAmount(last)
	if !ok {
		return f, extractErr(ReasonInvalidValue, last)
	}
	f.Value = v
	f.Identifier = strings.Join(args[:len(args)-1], " ")
	if f.Identifier == "" {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	return f, nil
}

// ExtractTextUpdate reads "<identifier> <text...>".
func ExtractTextUpdate(args []string) (TextUpdateFields, error) {
	var f TextUpdateFields
	if len(args) == 0 || args[0] == "" {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	f.Identifier = args[0]
	f.Text = strings.Join(args[1:], " ")
	if f.Text == "" {
		return f, extractErr(ReasonMissingNameOrType, "")
	}
	return f, nil
}

// ExtractTitle joins args into a title.
func ExtractTitle(args []string) (string, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return "", extractErr(ReasonMissingNameOrType, "")
	}
	return title, nil
}

// ExtractLink reads "<habit> <action...>".
func ExtractLink(args []string) (LinkFields, error) {
	var f LinkFields
	if len(args) < 2 {
		return f, extractErr(ReasonMissingIdentifier, "")
	}
	f.Habit = args[0]
	f.Action = strings.Join(args[1:], " ")
	return f, nil
}

// Extract runs the creation extractor for cmd.Entity over cmd.Args and
// returns one of the *Fields values (a string for objectives).
// Inferred expenses use the shorthand convention.
func Extract(cmd ParsedCommand, today time.Time) (any, error) {
	args := cmd.ArgValues()
	switch cmd.Entity {
	case types.EntityExpense, types.EntityIncome:
		if cmd.Inferred {
			return ExtractShorthand(args)
		}
		return ExtractEntry(args)
	case types.EntityInvestment:
		return ExtractInvestment(args, today)
	case types.EntityHabit:
		return ExtractHabit(args)
	case types.EntityObjective:
		return ExtractTitle(args)
	case types.EntityKeyResult:
		return ExtractKeyResult(args)
	case types.EntityAction:
		return ExtractTextUpdate(args)
	case types.EntityContribution:
		return ExtractContribution(args, today)
	}
	return nil, extractErr(ReasonMissingNameOrType, "")
}
