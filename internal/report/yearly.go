package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// Yearly sheet titles and row labels.
const (
	SheetIncome      = "Income"
	SheetExpenses    = "Expenses"
	SheetInvestments = "Investments"

	LabelMonthlyTotals = "Monthly totals"
	LabelTotal         = "TOTAL"
	LabelOther         = "Other"
	LabelInvested      = "Total invested"
	LabelCurrentValue  = "Current value"
)

// width is the column count of every yearly row: a label, twelve months,
// the total, and the monthly average.
const width = 15

var okrHeader = []string{"Objective", "Key result", "Action", "Progress"}

// expenseGroups sorts well-known expense categories under a heading.
// Categories outside every group are listed under LabelOther.
var expenseGroups = []struct {
	Name       string
	Categories []string
}{
	{"Debt", []string{"Credit cards", "Dívida"}},
	{"Entertainment", []string{"Entertainment", "Books", "Concerts/shows", "Games", "Hobbies", "Movies", "Music", "Outdoor activities", "Photography", "Sports", "Theater/plays"}},
	{"Everyday", []string{"Food", "Transport", "Shopping", "Delivery", "Restaurants", "Personal supplies", "Clothes", "Laundry/dry cleaning", "Hair/beauty", "Subscriptions"}},
}

// Series is one labelled row of monthly amounts.
type Series struct {
	Label  string
	Months [12]decimal.Decimal // Index 0 is January.
}

// Total sums the twelve months.
func (s Series) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.Months {
		total = total.Add(v)
	}
	return total
}

// Average is Total over twelve months.
func (s Series) Average() decimal.Decimal {
	return s.Total().Div(decimal.NewFromInt(12))
}

func (s *Series) add(o Series) {
	for i, v := range o.Months {
		s.Months[i] = s.Months[i].Add(v)
	}
}

// KeyResultTree is a key result with its actions.
type KeyResultTree struct {
	KeyResult types.KeyResult
	Actions   []types.Action
}

// ObjectiveTree is an objective with its key results.
type ObjectiveTree struct {
	Objective  types.Objective
	KeyResults []KeyResultTree
}

// Yearly is one user's spreadsheet for a calendar year: the OKR tree with
// the habit review, then income and expenses by category and month, then
// contributions by investment type and month.
type Yearly struct {
	Year        int
	Owner       string
	OKRs        []ObjectiveTree
	Habits      []types.HabitCount
	Incomes     []Series // One per category, by name.
	Expenses    []Series // One per category, by name.
	Investments []Series // One per investment type, by name.
	Totals      types.InvestmentTotals
}

// BuildYearly loads everything the yearly spreadsheet shows for userID.
func BuildYearly(ctx context.Context, store types.Store, userID int64, owner string, year int) (Yearly, error) {
	y := Yearly{Year: year, Owner: owner}
	var err error
	if y.OKRs, err = loadOKRs(ctx, store.OKRs(), userID); err != nil {
		return Yearly{}, err
	}
	if y.Habits, err = store.Habits().YearlyReview(ctx, userID, year); err != nil {
		return Yearly{}, fmt.Errorf("habit review: %w", err)
	}
	if y.Incomes, err = categorySeries(ctx, store.Entries(), types.EntityIncome, userID, year); err != nil {
		return Yearly{}, err
	}
	if y.Expenses, err = categorySeries(ctx, store.Entries(), types.EntityExpense, userID, year); err != nil {
		return Yearly{}, err
	}
	invs, err := store.Investments().List(ctx, userID)
	if err != nil {
		return Yearly{}, fmt.Errorf("listing investments: %w", err)
	}
	y.Investments = investmentSeries(invs, year)
	if y.Totals, err = store.Investments().Totals(ctx, userID); err != nil {
		return Yearly{}, fmt.Errorf("investment totals: %w", err)
	}
	return y, nil
}

func loadOKRs(ctx context.Context, okrs types.OKRStore, userID int64) ([]ObjectiveTree, error) {
	objectives, err := okrs.ListObjectives(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}
	trees := make([]ObjectiveTree, 0, len(objectives))
	for _, o := range objectives {
		krs, err := okrs.ListKeyResults(ctx, o.ObjectiveID)
		if err != nil {
			return nil, fmt.Errorf("listing key results of %d: %w", o.ObjectiveID, err)
		}
		tree := ObjectiveTree{Objective: o}
		for _, kr := range krs {
			actions, err := okrs.ListActions(ctx, kr.KeyResultID)
			if err != nil {
				return nil, fmt.Errorf("listing actions of %d: %w", kr.KeyResultID, err)
			}
			tree.KeyResults = append(tree.KeyResults, KeyResultTree{KeyResult: kr, Actions: actions})
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

func categorySeries(ctx context.Context, store types.EntryStore, kind types.EntityType, userID int64, year int) ([]Series, error) {
	totals, err := store.CategoryTotalsByMonth(ctx, kind, userID, year)
	if err != nil {
		return nil, fmt.Errorf("%s totals by month: %w", kind, err)
	}
	var out []Series
	index := map[string]int{}
	for _, t := range totals {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, Series{Label: t.Category})
		}
		out[i].Months[t.Month-1] = out[i].Months[t.Month-1].Add(t.Total)
	}
	return out, nil
}

// investmentSeries sums the investments purchased in year by type and
// month. Types with no purchase in year still get a row of zeros.
func investmentSeries(invs []types.Investment, year int) []Series {
	index := map[string]int{}
	var out []Series
	for _, inv := range invs {
		if _, ok := index[inv.Type]; !ok {
			index[inv.Type] = len(out)
			out = append(out, Series{Label: inv.Type})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	for i, s := range out {
		index[s.Label] = i
	}
	for _, inv := range invs {
		if inv.PurchaseDate.Year() != year {
			continue
		}
		s := &out[index[inv.Type]]
		m := inv.PurchaseDate.Month() - 1
		s.Months[m] = s.Months[m].Add(inv.Amount)
	}
	return out
}

// monthTotals sums series month by month under label.
func monthTotals(label string, series []Series) Series {
	total := Series{Label: label}
	for _, s := range series {
		total.add(s)
	}
	return total
}

// FileName is the attachment name, e.g. spreadsheet_2025.csv.
func (y Yearly) FileName() string {
	return "spreadsheet_" + strconv.Itoa(y.Year) + ".csv"
}

// WriteCSV writes the four sheets one after another, separated by an
// empty row. Every row has the same number of columns.
func (y Yearly) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	sheets := []struct {
		name string
		rows [][]string
	}{
		{"OKRs", y.okrRows()},
		{SheetIncome, y.incomeRows()},
		{SheetExpenses, y.expenseRows()},
		{SheetInvestments, y.investmentRows()},
	}
	for i, s := range sheets {
		if i > 0 {
			if err := cw.Write(row()); err != nil {
				return fmt.Errorf("writing separator: %w", err)
			}
		}
		for _, r := range s.rows {
			if err := cw.Write(r); err != nil {
				return fmt.Errorf("writing %s sheet: %w", s.name, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV renders the spreadsheet into memory.
func (y Yearly) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := y.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y Yearly) okrRows() [][]string {
	rows := [][]string{row(y.Owner), row(okrHeader...)}
	for _, o := range y.OKRs {
		if len(o.KeyResults) == 0 {
			rows = append(rows, row(o.Objective.Title))
			continue
		}
		for i, kr := range o.KeyResults {
			objective := ""
			if i == 0 {
				objective = o.Objective.Title
			}
			if len(kr.Actions) == 0 {
				current := ""
				if kr.KeyResult.CurrentValue.Valid {
					current = kr.KeyResult.CurrentValue.Decimal.String()
				}
				rows = append(rows, row(objective, kr.KeyResult.Title, "", current))
				continue
			}
			for j, a := range kr.Actions {
				title := ""
				if j == 0 {
					title = kr.KeyResult.Title
				} else {
					objective = ""
				}
				rows = append(rows, row(objective, title, a.Description, a.Progress))
			}
		}
	}
	if len(y.Habits) > 0 {
		rows = append(rows, row())
		for _, h := range y.Habits {
			rows = append(rows, row("", "", h.Habit.Name, fmt.Sprintf("%d days", h.Count)))
		}
	}
	return rows
}

func (y Yearly) incomeRows() [][]string {
	rows := [][]string{row(SheetIncome), monthHeader()}
	rows = append(rows, seriesRow(monthTotals(LabelMonthlyTotals, y.Incomes)))
	for _, s := range y.Incomes {
		rows = append(rows, seriesRow(s))
	}
	return rows
}

func (y Yearly) expenseRows() [][]string {
	rows := [][]string{row(SheetExpenses), monthHeader()}
	rows = append(rows, seriesRow(monthTotals(LabelTotal, y.Expenses)))

	byName := make(map[string]Series, len(y.Expenses))
	for _, s := range y.Expenses {
		byName[s.Label] = s
	}
	grouped := map[string]bool{}
	for _, g := range expenseGroups {
		var members []Series
		for _, c := range g.Categories {
			grouped[c] = true
			if s, ok := byName[c]; ok {
				members = append(members, s)
			}
		}
		if len(members) == 0 {
			continue
		}
		rows = append(rows, row(g.Name), seriesRow(monthTotals(LabelMonthlyTotals, members)))
		for _, s := range members {
			rows = append(rows, seriesRow(s))
		}
	}

	var other []Series
	for _, s := range y.Expenses {
		if !grouped[s.Label] {
			other = append(other, s)
		}
	}
	if len(other) > 0 {
		rows = append(rows, row(LabelOther))
		for _, s := range other {
			rows = append(rows, seriesRow(s))
		}
	}
	return rows
}

func (y Yearly) investmentRows() [][]string {
	rows := [][]string{row(SheetInvestments), monthHeader()}
	rows = append(rows, seriesRow(monthTotals(LabelMonthlyTotals, y.Investments)))
	for _, s := range y.Investments {
		rows = append(rows, seriesRow(s))
	}
	return append(rows,
		row(LabelInvested, amount(y.Totals.Invested)),
		row(LabelCurrentValue, amount(y.Totals.Value)),
	)
}

func monthHeader() []string {
	r := row("")
	for m := time.January; m <= time.December; m++ {
		r[m] = m.String()[:3]
	}
	r[13], r[14] = "Total", "Average"
	return r
}

func seriesRow(s Series) []string {
	r := row(s.Label)
	for i, v := range s.Months {
		r[i+1] = amount(v)
	}
	r[13], r[14] = amount(s.Total()), amount(s.Average())
	return r
}

// row pads cells to width.
func row(cells ...string) []string {
	r := make([]string, width)
	copy(r, cells)
	return r
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
