package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addEntry(t *testing.T, b *Backend, kind types.EntityType, userID int64, amount, desc, category string, date time.Time) types.Entry {
	t.Helper()
	e, err := b.Entries().Create(context.Background(), types.Entry{
		UserID:      userID,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Description: desc,
		Category:    category,
		Date:        date,
	})
	require.NoError(t, err)
	return e
}

func TestEntries_CreateGetDelete(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)

	e := addEntry(t, b, types.EntityExpense, u.UserID, "50.00", "almoço", "", day(2025, 3, 10))
	assert.Equal(t, DefaultCategory, e.Category)

	got, err := b.Entries().Get(ctx, types.EntityExpense, u.UserID, e.EntryID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "almoço", got.Description)
	assert.Equal(t, day(2025, 3, 10), got.Date)
	assert.Equal(t, types.EntityExpense, got.Kind)

	// Expenses and incomes are separate tables.
	_, err = b.Entries().Get(ctx, types.EntityIncome, u.UserID, e.EntryID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	other := createUser(t, b, 2)
	assert.ErrorIs(t, b.Entries().Delete(ctx, types.EntityExpense, other.UserID, e.EntryID), types.ErrNotFound)

	require.NoError(t, b.Entries().Delete(ctx, types.EntityExpense, u.UserID, e.EntryID))
	_, err = b.Entries().Get(ctx, types.EntityExpense, u.UserID, e.EntryID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEntries_RejectsInvalidInput(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)

	_, err := b.Entries().Create(ctx, types.Entry{UserID: u.UserID, Kind: types.EntityHabit, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = b.Entries().Create(ctx, types.Entry{UserID: u.UserID, Kind: types.EntityExpense, Amount: decimal.Zero})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = b.Entries().UpdateAmount(ctx, types.EntityExpense, u.UserID, 1, decimal.NewFromInt(-3))
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestEntries_Updates(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)
	e := addEntry(t, b, types.EntityIncome, u.UserID, "1000", "salário", "Salary", day(2025, 3, 5))

	got, err := b.Entries().UpdateAmount(ctx, types.EntityIncome, u.UserID, e.EntryID, decimal.RequireFromString("1200.50"))
	require.NoError(t, err)
	assert.Equal(t, "1200.5", got.Amount.String())

	got, err = b.Entries().UpdateDescription(ctx, types.EntityIncome, u.UserID, e.EntryID, "bônus")
	require.NoError(t, err)
	assert.Equal(t, "bônus", got.Description)

	_, err = b.Entries().UpdateDescription(ctx, types.EntityIncome, u.UserID, 999, "x")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEntries_MonthQueries(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)

	addEntry(t, b, types.EntityExpense, u.UserID, "0.10", "café", "Food", day(2025, 3, 1))
	addEntry(t, b, types.EntityExpense, u.UserID, "0.20", "pão", "Food", day(2025, 3, 31))
	addEntry(t, b, types.EntityExpense, u.UserID, "45", "uber", "Transport", day(2025, 3, 15))
	addEntry(t, b, types.EntityExpense, u.UserID, "999", "fevereiro", "Food", day(2025, 2, 28))
	addEntry(t, b, types.EntityExpense, u.UserID, "5", "abril", "Bills", day(2025, 4, 1))

	list, err := b.Entries().ListByMonth(ctx, types.EntityExpense, u.UserID, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "pão", list[0].Description, "newest first")
	assert.Equal(t, "café", list[2].Description)

	total, err := b.Entries().TotalByMonth(ctx, types.EntityExpense, u.UserID, 2025, time.March)
	require.NoError(t, err)
	assert.Equal(t, "45.3", total.String(), "sums stay exact")

	byCat, err := b.Entries().TotalsByCategory(ctx, types.EntityExpense, u.UserID, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, byCat, 2)
	assert.Equal(t, "Transport", byCat[0].Category)
	assert.Equal(t, 1, byCat[0].Count)
	assert.Equal(t, "Food", byCat[1].Category)
	assert.Equal(t, "0.3", byCat[1].Total.String())
	assert.Equal(t, 2, byCat[1].Count)

	empty, err := b.Entries().TotalByMonth(ctx, types.EntityExpense, u.UserID, 2024, time.March)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestEntries_CategoryTotalsByMonth(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)

	addEntry(t, b, types.EntityExpense, u.UserID, "10", "a", "Food", day(2025, 1, 3))
	addEntry(t, b, types.EntityExpense, u.UserID, "15", "b", "Food", day(2025, 1, 20))
	addEntry(t, b, types.EntityExpense, u.UserID, "7", "c", "Food", day(2025, 2, 1))
	addEntry(t, b, types.EntityExpense, u.UserID, "3", "d", "Bills", day(2025, 2, 1))
	addEntry(t, b, types.EntityExpense, u.UserID, "100", "e", "Bills", day(2024, 12, 31))

	got, err := b.Entries().CategoryTotalsByMonth(ctx, types.EntityExpense, u.UserID, 2025)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, types.CategoryMonthTotal{Category: "Bills", Month: time.February, Total: got[0].Total}, got[0])
	assert.Equal(t, "3", got[0].Total.String())
	assert.Equal(t, "Food", got[1].Category)
	assert.Equal(t, time.January, got[1].Month)
	assert.Equal(t, "25", got[1].Total.String())
	assert.Equal(t, time.February, got[2].Month)
}
