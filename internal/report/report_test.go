package report

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/internal/sqlite"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func entry(kind types.EntityType, amount, desc, category string, d int) types.Entry {
	return types.Entry{
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Description: desc,
		Category:    category,
		Date:        time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC),
	}
}

func TestMonthly_WriteCSV(t *testing.T) {
	m := Monthly{
		Year:  2025,
		Month: time.March,
		Incomes: []types.Entry{
			entry(types.EntityIncome, "3000", "salário", "Salary", 5),
		},
		Expenses: []types.Entry{
			entry(types.EntityExpense, "45.5", "uber, centro", "Transport", 12),
			entry(types.EntityExpense, "0.10", "café", "Food", 1),
		},
	}

	data, err := m.CSV()
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 8)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"Income", "05/03/2025", "R$ 3000.00", "Salary", "salário"}, rows[1])
	assert.Equal(t, []string{"Expense", "12/03/2025", "R$ 45.50", "Transport", "uber, centro"}, rows[2])
	assert.Equal(t, []string{"SUMMARY", "", "", "", ""}, rows[4])
	assert.Equal(t, []string{"SUMMARY", "Total Income", "R$ 3000.00", "", ""}, rows[5])
	assert.Equal(t, []string{"SUMMARY", "Total Expenses", "R$ 45.60", "", ""}, rows[6])
	assert.Equal(t, []string{"SUMMARY", "Balance", "R$ 2954.40", "", ""}, rows[7])

	assert.Equal(t, "Monthly_Report_March_2025.csv", m.FileName())
	assert.False(t, m.Empty())
	assert.True(t, Monthly{}.Empty())
}

func TestBuild_FromStore(t *testing.T) {
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })
	ctx := context.Background()

	u, err := b.Users().Create(ctx, types.User{ChatID: 1})
	require.NoError(t, err)
	for _, e := range []types.Entry{
		entry(types.EntityIncome, "100", "freela", "Freelance", 3),
		entry(types.EntityExpense, "30", "mercado", "Food", 4),
	} {
		e.UserID = u.UserID
		_, err := b.Entries().Create(ctx, e)
		require.NoError(t, err)
	}

	m, err := Build(ctx, b.Entries(), u.UserID, 2025, time.March)
	require.NoError(t, err)
	assert.Len(t, m.Incomes, 1)
	assert.Len(t, m.Expenses, 1)
	assert.Equal(t, "70", m.Balance().String())

	empty, err := Build(ctx, b.Entries(), u.UserID, 2025, time.April)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := Save(dir, "report.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.csv"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(got))

	// Overwrites in place and leaves no temp files behind.
	_, err = Save(dir, "report.csv", []byte("c\n"))
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = Save(dir, "../escape.csv", nil)
	assert.Error(t, err)
}
