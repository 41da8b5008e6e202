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

func addHabit(t *testing.T, b *Backend, userID int64, name string) types.Habit {
	t.Helper()
	h, err := b.Habits().Create(context.Background(), types.Habit{UserID: userID, Name: name})
	require.NoError(t, err)
	return h
}

func TestHabits_CreateListDelete(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)

	addHabit(t, b, u.UserID, "treino")
	weekly, err := b.Habits().Create(ctx, types.Habit{
		UserID: u.UserID, Name: "agua", FrequencyType: types.FrequencyWeekly, FrequencyValue: 3, Unit: "L",
	})
	require.NoError(t, err)

	list, err := b.Habits().List(ctx, u.UserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "agua", list[0].Name, "ordered by name")
	assert.Equal(t, 3, list[0].FrequencyValue)
	assert.Equal(t, types.FrequencyDaily, list[1].FrequencyType)

	_, err = b.Habits().Create(ctx, types.Habit{UserID: u.UserID})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	require.NoError(t, b.Habits().Delete(ctx, u.UserID, weekly.HabitID))
	_, err = b.Habits().Get(ctx, u.UserID, weekly.HabitID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestHabits_LogUpsert(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)
	h := addHabit(t, b, u.UserID, "agua")
	date := day(2025, 3, 10)

	l, err := b.Habits().Log(ctx, u.UserID, h.HabitID, date, decimal.NewNullDecimal(dec("2")), "manhã")
	require.NoError(t, err)
	assert.Equal(t, "2", l.Value.Decimal.String())

	// A null value keeps the stored one; empty notes keep the stored notes.
	l2, err := b.Habits().Log(ctx, u.UserID, h.HabitID, date, decimal.NullDecimal{}, "")
	require.NoError(t, err)
	assert.Equal(t, l.LogID, l2.LogID)
	assert.True(t, l2.Value.Valid)
	assert.Equal(t, "2", l2.Value.Decimal.String())
	assert.Equal(t, "manhã", l2.Notes)

	l3, err := b.Habits().Log(ctx, u.UserID, h.HabitID, date, decimal.NewNullDecimal(dec("3.5")), "")
	require.NoError(t, err)
	assert.Equal(t, "3.5", l3.Value.Decimal.String())

	logs, err := b.Habits().Logs(ctx, h.HabitID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	other := createUser(t, b, 2)
	_, err = b.Habits().Log(ctx, other.UserID, h.HabitID, date, decimal.NullDecimal{}, "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestHabits_CountsAndStats(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)
	read := addHabit(t, b, u.UserID, "ler")
	gym := addHabit(t, b, u.UserID, "treino")
	addHabit(t, b, u.UserID, "sono")

	for _, d := range []time.Time{day(2024, 12, 31), day(2025, 3, 8), day(2025, 3, 9), day(2025, 3, 10)} {
		_, err := b.Habits().Log(ctx, u.UserID, gym.HabitID, d, decimal.NullDecimal{}, "")
		require.NoError(t, err)
	}
	_, err := b.Habits().Log(ctx, u.UserID, read.HabitID, day(2025, 1, 1), decimal.NullDecimal{}, "")
	require.NoError(t, err)

	n, err := b.Habits().YearlyCount(ctx, gym.HabitID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	review, err := b.Habits().YearlyReview(ctx, u.UserID, 2025)
	require.NoError(t, err)
	require.Len(t, review, 3)
	assert.Equal(t, "treino", review[0].Habit.Name)
	assert.Equal(t, 3, review[0].Count)
	assert.Equal(t, "ler", review[1].Habit.Name)
	assert.Equal(t, 0, review[2].Count)

	stats, err := b.Habits().Stats(ctx, gym.HabitID, 2025, time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 365, stats.TotalDays)
	assert.Equal(t, 3, stats.CompletedDays)
	assert.Equal(t, 3, stats.Streak)
	assert.Equal(t, "0.82", stats.Percentage.String())

	march, err := b.Habits().Logs(ctx, gym.HabitID, day(2025, 3, 9), day(2025, 3, 10))
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, day(2025, 3, 10), march[0].Date)
}

func TestHabits_LinkAction(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 1)
	h := addHabit(t, b, u.UserID, "treino")

	o, err := b.OKRs().CreateObjective(ctx, types.Objective{UserID: u.UserID, Title: "Saúde"})
	require.NoError(t, err)
	kr, err := b.OKRs().CreateKeyResult(ctx, u.UserID, types.KeyResult{ObjectiveID: o.ObjectiveID, Title: "peso"})
	require.NoError(t, err)
	a, err := b.OKRs().CreateAction(ctx, u.UserID, types.Action{KeyResultID: kr.KeyResultID, Description: "academia"})
	require.NoError(t, err)

	linked, err := b.Habits().LinkAction(ctx, u.UserID, h.HabitID, a.ActionID)
	require.NoError(t, err)
	assert.Equal(t, a.ActionID, linked.LinkedActionID)

	other := createUser(t, b, 2)
	_, err = b.Habits().LinkAction(ctx, other.UserID, h.HabitID, a.ActionID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Deleting the action unlinks the habit.
	require.NoError(t, b.OKRs().DeleteAction(ctx, u.UserID, a.ActionID))
	got, err := b.Habits().Get(ctx, u.UserID, h.HabitID)
	require.NoError(t, err)
	assert.Zero(t, got.LinkedActionID)
}
