package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var _ types.HabitStore = (*habitsTable)(nil)

const habitColumns = `habit_id, user_id, name, description, frequency_type, frequency_value, unit, linked_action_id, created_at`

type habitsTable struct {
	backend *Backend
}

func (ht *habitsTable) Create(ctx context.Context, h types.Habit) (types.Habit, error) {
	if h.Name == "" {
		return types.Habit{}, types.ErrInvalidName
	}
	db, err := ht.backend.conn()
	if err != nil {
		return types.Habit{}, err
	}
	if h.FrequencyType == "" {
		h.FrequencyType = types.FrequencyDaily
	}
	h.CreatedAt = nowFunc().UTC().Truncate(time.Second)

	res, err := db.ExecContext(ctx,
		`INSERT INTO habits (user_id, name, description, frequency_type, frequency_value, unit, linked_action_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.UserID, h.Name, h.Description, h.FrequencyType, h.FrequencyValue, h.Unit,
		nullID(h.LinkedActionID), formatTime(h.CreatedAt),
	)
	if err != nil {
		return types.Habit{}, fmt.Errorf("inserting habit: %w", err)
	}
	if h.HabitID, err = res.LastInsertId(); err != nil {
		return types.Habit{}, fmt.Errorf("reading habit id: %w", err)
	}
	return h, nil
}

func (ht *habitsTable) Get(ctx context.Context, userID, id int64) (types.Habit, error) {
	db, err := ht.backend.conn()
	if err != nil {
		return types.Habit{}, err
	}
	return getHabit(ctx, db, userID, id)
}

func getHabit(ctx context.Context, q queryer, userID, id int64) (types.Habit, error) {
	row := q.QueryRowContext(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE habit_id = ? AND user_id = ?`, id, userID)
	h, err := hydrateHabit(row)
	if err != nil {
		return types.Habit{}, notFound(err)
	}
	return h, nil
}

// List returns the user's habits ordered by name.
func (ht *habitsTable) List(ctx context.Context, userID int64) ([]types.Habit, error) {
	db, err := ht.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE user_id = ? ORDER BY name ASC, habit_id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying habits: %w", err)
	}
	defer rows.Close()

	var out []types.Habit
	for rows.Next() {
		h, err := hydrateHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning habit: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (ht *habitsTable) Delete(ctx context.Context, userID, id int64) error {
	db, err := ht.backend.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM habits WHERE habit_id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting habit %d: %w", id, err)
	}
	return requireAffected(res)
}

// LinkAction points the habit at one of the same user's OKR actions.
func (ht *habitsTable) LinkAction(ctx context.Context, userID, habitID, actionID int64) (types.Habit, error) {
	db, err := ht.backend.conn()
	if err != nil {
		return types.Habit{}, err
	}
	var owned int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM actions a
		 JOIN key_results k ON k.key_result_id = a.key_result_id
		 JOIN objectives o ON o.objective_id = k.objective_id
		 WHERE a.action_id = ? AND o.user_id = ?`, actionID, userID).Scan(&owned)
	if err != nil {
		return types.Habit{}, fmt.Errorf("checking action %d: %w", actionID, err)
	}
	if owned == 0 {
		return types.Habit{}, types.ErrNotFound
	}
	res, err := db.ExecContext(ctx,
		`UPDATE habits SET linked_action_id = ? WHERE habit_id = ? AND user_id = ?`, actionID, habitID, userID)
	if err != nil {
		return types.Habit{}, fmt.Errorf("linking habit %d: %w", habitID, err)
	}
	if err := requireAffected(res); err != nil {
		return types.Habit{}, err
	}
	return getHabit(ctx, db, userID, habitID)
}

// Log records the habit for date, one row per day. Logging the same day
// again replaces the value unless the new value is null, and replaces the
// notes unless the new notes are empty.
func (ht *habitsTable) Log(ctx context.Context, userID, habitID int64, date time.Time, value decimal.NullDecimal, notes string) (types.HabitLog, error) {
	db, err := ht.backend.conn()
	if err != nil {
		return types.HabitLog{}, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return types.HabitLog{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := getHabit(ctx, tx, userID, habitID); err != nil {
		return types.HabitLog{}, err
	}
	if date.IsZero() {
		date = types.DateOf(nowFunc().UTC())
	}
	day := formatDate(date)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO habit_logs (habit_id, date, value, notes, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (habit_id, date) DO UPDATE SET
		   value = COALESCE(excluded.value, habit_logs.value),
		   notes = CASE WHEN excluded.notes = '' THEN habit_logs.notes ELSE excluded.notes END`,
		habitID, day, nullDecimal(value), notes, formatTime(nowFunc().UTC().Truncate(time.Second)))
	if err != nil {
		return types.HabitLog{}, fmt.Errorf("logging habit %d: %w", habitID, err)
	}
	row := tx.QueryRowContext(ctx,
		`SELECT log_id, habit_id, date, value, notes, created_at FROM habit_logs WHERE habit_id = ? AND date = ?`,
		habitID, day)
	l, err := hydrateHabitLog(row)
	if err != nil {
		return types.HabitLog{}, fmt.Errorf("reading habit log: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.HabitLog{}, fmt.Errorf("commit transaction: %w", err)
	}
	return l, nil
}

// Logs returns the habit's logs dated within [from, to], newest first. A
// zero bound is open.
func (ht *habitsTable) Logs(ctx context.Context, habitID int64, from, to time.Time) ([]types.HabitLog, error) {
	db, err := ht.backend.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT log_id, habit_id, date, value, notes, created_at FROM habit_logs WHERE habit_id = ?`
	args := []any{habitID}
	if !from.IsZero() {
		query += ` AND date >= ?`
		args = append(args, formatDate(from))
	}
	if !to.IsZero() {
		query += ` AND date <= ?`
		args = append(args, formatDate(to))
	}
	query += ` ORDER BY date DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying habit logs: %w", err)
	}
	defer rows.Close()

	var out []types.HabitLog
	for rows.Next() {
		l, err := hydrateHabitLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning habit log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (ht *habitsTable) YearlyCount(ctx context.Context, habitID int64, year int) (int, error) {
	db, err := ht.backend.conn()
	if err != nil {
		return 0, err
	}
	from, to := yearRange(year)
	var n int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM habit_logs WHERE habit_id = ? AND date >= ? AND date < ?`,
		habitID, from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting habit %d logs: %w", habitID, err)
	}
	return n, nil
}

// YearlyReview returns every habit of the user with its log count for year,
// most logged first.
func (ht *habitsTable) YearlyReview(ctx context.Context, userID int64, year int) ([]types.HabitCount, error) {
	habits, err := ht.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]types.HabitCount, 0, len(habits))
	for _, h := range habits {
		n, err := ht.YearlyCount(ctx, h.HabitID, year)
		if err != nil {
			return nil, err
		}
		out = append(out, types.HabitCount{Habit: h, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (ht *habitsTable) Stats(ctx context.Context, habitID int64, year int, today time.Time) (types.HabitStats, error) {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	logs, err := ht.Logs(ctx, habitID, first, first.AddDate(1, 0, -1))
	if err != nil {
		return types.HabitStats{}, err
	}
	dates := make([]time.Time, len(logs))
	for i, l := range logs {
		dates[i] = l.Date
	}
	return types.ComputeHabitStats(year, dates, today), nil
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func hydrateHabit(row scanner) (types.Habit, error) {
	var (
		h         types.Habit
		linked    sql.NullInt64
		createdAt string
	)
	err := row.Scan(&h.HabitID, &h.UserID, &h.Name, &h.Description, &h.FrequencyType,
		&h.FrequencyValue, &h.Unit, &linked, &createdAt)
	if err != nil {
		return types.Habit{}, err
	}
	h.LinkedActionID = linked.Int64
	if h.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Habit{}, err
	}
	return h, nil
}

func hydrateHabitLog(row scanner) (types.HabitLog, error) {
	var (
		l               types.HabitLog
		value           sql.NullString
		date, createdAt string
	)
	if err := row.Scan(&l.LogID, &l.HabitID, &date, &value, &l.Notes, &createdAt); err != nil {
		return types.HabitLog{}, err
	}
	var err error
	if l.Date, err = parseDate(date); err != nil {
		return types.HabitLog{}, err
	}
	if l.Value, err = parseNullDecimal(value); err != nil {
		return types.HabitLog{}, err
	}
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.HabitLog{}, err
	}
	return l, nil
}
