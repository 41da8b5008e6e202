// Package report builds the monthly transaction export and the yearly
// spreadsheet.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// Row types in the first CSV column.
const (
	RowIncome  = "Income"
	RowExpense = "Expense"
	RowSummary = "SUMMARY"
)

var header = []string{"Type", "Date", "Amount", "Category", "Description"}

// Monthly holds one user's transactions for a calendar month.
type Monthly struct {
	Year     int
	Month    time.Month
	Incomes  []types.Entry
	Expenses []types.Entry
}

// Build loads the month's incomes and expenses from store.
func Build(ctx context.Context, store types.EntryStore, userID int64, year int, month time.Month) (Monthly, error) {
	m := Monthly{Year: year, Month: month}
	var err error
	if m.Incomes, err = store.ListByMonth(ctx, types.EntityIncome, userID, year, month); err != nil {
		return Monthly{}, fmt.Errorf("listing incomes: %w", err)
	}
	if m.Expenses, err = store.ListByMonth(ctx, types.EntityExpense, userID, year, month); err != nil {
		return Monthly{}, fmt.Errorf("listing expenses: %w", err)
	}
	return m, nil
}

// Empty reports whether the month has no transactions.
func (m Monthly) Empty() bool {
	return len(m.Incomes) == 0 && len(m.Expenses) == 0
}

// TotalIncome sums the month's incomes.
func (m Monthly) TotalIncome() decimal.Decimal { return sum(m.Incomes) }

// TotalExpenses sums the month's expenses.
func (m Monthly) TotalExpenses() decimal.Decimal { return sum(m.Expenses) }

// Balance is income minus expenses.
func (m Monthly) Balance() decimal.Decimal { return m.TotalIncome().Sub(m.TotalExpenses()) }

// FileName is the attachment name, e.g. Monthly_Report_March_2025.csv.
func (m Monthly) FileName() string {
	return fmt.Sprintf("Monthly_Report_%s_%d.csv", m.Month, m.Year)
}

// WriteCSV writes incomes, then expenses, then the summary rows.
func (m Monthly) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range m.Incomes {
		if err := cw.Write(entryRow(RowIncome, e)); err != nil {
			return fmt.Errorf("writing income %d: %w", e.EntryID, err)
		}
	}
	for _, e := range m.Expenses {
		if err := cw.Write(entryRow(RowExpense, e)); err != nil {
			return fmt.Errorf("writing expense %d: %w", e.EntryID, err)
		}
	}
	summary := [][]string{
		{RowSummary, "", "", "", ""},
		{RowSummary, "Total Income", money(m.TotalIncome()), "", ""},
		{RowSummary, "Total Expenses", money(m.TotalExpenses()), "", ""},
		{RowSummary, "Balance", money(m.Balance()), "", ""},
	}
	if err := cw.WriteAll(summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// CSV renders the report into memory.
func (m Monthly) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func entryRow(kind string, e types.Entry) []string {
	return []string{kind, e.Date.Format("02/01/2006"), money(e.Amount), e.Category, e.Description}
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func sum(entries []types.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
