package sqlite

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var _ types.EntryStore = (*entriesTable)(nil)

// DefaultCategory is stored when an entry arrives without one.
const DefaultCategory = "Other"

// entriesTable serves both the expenses and the incomes tables.
type entriesTable struct {
	backend *Backend
}

type entryTableName struct {
	table string
	id    string
}

func entryTableFor(kind types.EntityType) (entryTableName, error) {
	switch kind {
	case types.EntityExpense:
		return entryTableName{"expenses", "expense_id"}, nil
	case types.EntityIncome:
		return entryTableName{"incomes", "income_id"}, nil
	}
	return entryTableName{}, fmt.Errorf("entry kind %s: %w", kind, types.ErrInvalidData)
}

func (n entryTableName) selectColumns() string {
	return "SELECT " + n.id + ", user_id, amount, description, category, date, created_at FROM " + n.table
}

func (et *entriesTable) Create(ctx context.Context, e types.Entry) (types.Entry, error) {
	n, err := entryTableFor(e.Kind)
	if err != nil {
		return types.Entry{}, err
	}
	if !e.Amount.IsPositive() {
		return types.Entry{}, fmt.Errorf("amount %s: %w", e.Amount, types.ErrInvalidData)
	}
	db, err := et.backend.conn()
	if err != nil {
		return types.Entry{}, err
	}
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	if e.Date.IsZero() {
		e.Date = types.DateOf(nowFunc().UTC())
	}
	e.CreatedAt = nowFunc().UTC().Truncate(time.Second)

	res, err := db.ExecContext(ctx,
		"INSERT INTO "+n.table+" (user_id, amount, description, category, date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.UserID, e.Amount.String(), e.Description, e.Category, formatDate(e.Date), formatTime(e.CreatedAt),
	)
	if err != nil {
		return types.Entry{}, fmt.Errorf("inserting %s: %w", e.Kind, err)
	}
	if e.EntryID, err = res.LastInsertId(); err != nil {
		return types.Entry{}, fmt.Errorf("reading %s id: %w", e.Kind, err)
	}
	e.Date, _ = parseDate(formatDate(e.Date))
	return e, nil
}

func (et *entriesTable) Get(ctx context.Context, kind types.EntityType, userID, id int64) (types.Entry, error) {
	n, err := entryTableFor(kind)
	if err != nil {
		return types.Entry{}, err
	}
	db, err := et.backend.conn()
	if err != nil {
		return types.Entry{}, err
	}
	row := db.QueryRowContext(ctx, n.selectColumns()+" WHERE "+n.id+" = ? AND user_id = ?", id, userID)
	e, err := hydrateEntry(row, kind)
	if err != nil {
		return types.Entry{}, notFound(err)
	}
	return e, nil
}

func (et *entriesTable) Delete(ctx context.Context, kind types.EntityType, userID, id int64) error {
	n, err := entryTableFor(kind)
	if err != nil {
		return err
	}
	db, err := et.backend.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM "+n.table+" WHERE "+n.id+" = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", kind, id, err)
	}
	return requireAffected(res)
}

func (et *entriesTable) UpdateAmount(ctx context.Context, kind types.EntityType, userID, id int64, amount decimal.Decimal) (types.Entry, error) {
	if !amount.IsPositive() {
		return types.Entry{}, fmt.Errorf("amount %s: %w", amount, types.ErrInvalidData)
	}
	return et.update(ctx, kind, userID, id, "amount", amount.String())
}

func (et *entriesTable) UpdateDescription(ctx context.Context, kind types.EntityType, userID, id int64, description string) (types.Entry, error) {
	return et.update(ctx, kind, userID, id, "description", description)
}

func (et *entriesTable) update(ctx context.Context, kind types.EntityType, userID, id int64, column string, value any) (types.Entry, error) {
	n, err := entryTableFor(kind)
	if err != nil {
		return types.Entry{}, err
	}
	db, err := et.backend.conn()
	if err != nil {
		return types.Entry{}, err
	}
	res, err := db.ExecContext(ctx,
		"UPDATE "+n.table+" SET "+column+" = ? WHERE "+n.id+" = ? AND user_id = ?", value, id, userID)
	if err != nil {
		return types.Entry{}, fmt.Errorf("updating %s %d: %w", kind, id, err)
	}
	if err := requireAffected(res); err != nil {
		return types.Entry{}, err
	}
	return et.Get(ctx, kind, userID, id)
}

func (et *entriesTable) ListByMonth(ctx context.Context, kind types.EntityType, userID int64, year int, month time.Month) ([]types.Entry, error) {
	from, to := monthRange(year, month)
	return et.listBetween(ctx, kind, userID, from, to)
}

func (et *entriesTable) TotalByMonth(ctx context.Context, kind types.EntityType, userID int64, year int, month time.Month) (decimal.Decimal, error) {
	entries, err := et.ListByMonth(ctx, kind, userID, year, month)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (et *entriesTable) TotalsByCategory(ctx context.Context, kind types.EntityType, userID int64, year int, month time.Month) ([]types.CategoryTotal, error) {
	entries, err := et.ListByMonth(ctx, kind, userID, year, month)
	if err != nil {
		return nil, err
	}
	byCategory := map[string]*types.CategoryTotal{}
	var out []*types.CategoryTotal
	for _, e := range entries {
		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &types.CategoryTotal{Category: e.Category, Total: decimal.Zero}
			byCategory[e.Category] = ct
			out = append(out, ct)
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	totals := make([]types.CategoryTotal, len(out))
	for i, ct := range out {
		totals[i] = *ct
	}
	return totals, nil
}

func (et *entriesTable) CategoryTotalsByMonth(ctx context.Context, kind types.EntityType, userID int64, year int) ([]types.CategoryMonthTotal, error) {
	from, to := yearRange(year)
	entries, err := et.listBetween(ctx, kind, userID, from, to)
	if err != nil {
		return nil, err
	}
	type key struct {
		category string
		month    time.Month
	}
	sums := map[key]decimal.Decimal{}
	for _, e := range entries {
		k := key{e.Category, e.Date.Month()}
		sums[k] = sums[k].Add(e.Amount)
	}
	out := make([]types.CategoryMonthTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, types.CategoryMonthTotal{Category: k.category, Month: k.month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// listBetween returns entries dated in [from, to), newest first. Empty
// bounds are open.
func (et *entriesTable) listBetween(ctx context.Context, kind types.EntityType, userID int64, from, to string) ([]types.Entry, error) {
	n, err := entryTableFor(kind)
	if err != nil {
		return nil, err
	}
	db, err := et.backend.conn()
	if err != nil {
		return nil, err
	}
	query := n.selectColumns() + " WHERE user_id = ?"
	args := []any{userID}
	if from != "" {
		query += " AND date >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND date < ?"
		args = append(args, to)
	}
	query += " ORDER BY date DESC, " + n.id + " DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", n.table, err)
	}
	defer rows.Close()

	var out []types.Entry
	for rows.Next() {
		e, err := hydrateEntry(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", n.table, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func hydrateEntry(row scanner, kind types.EntityType) (types.Entry, error) {
	var (
		e               types.Entry
		amount          string
		date, createdAt string
	)
	if err := row.Scan(&e.EntryID, &e.UserID, &amount, &e.Description, &e.Category, &date, &createdAt); err != nil {
		return types.Entry{}, err
	}
	e.Kind = kind
	var err error
	if e.Amount, err = parseDecimal(amount); err != nil {
		return types.Entry{}, err
	}
	if e.Date, err = parseDate(date); err != nil {
		return types.Entry{}, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Entry{}, err
	}
	return e, nil
}
