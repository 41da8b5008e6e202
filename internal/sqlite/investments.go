package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var _ types.InvestmentStore = (*investmentsTable)(nil)

const investmentColumns = `investment_id, user_id, name, type, amount, current_value, purchase_date, notes, created_at`

type investmentsTable struct {
	backend *Backend
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (it *investmentsTable) Create(ctx context.Context, inv types.Investment) (types.Investment, error) {
	if inv.Name == "" || inv.Type == "" {
		return types.Investment{}, types.ErrInvalidName
	}
	if !inv.Amount.IsPositive() {
		return types.Investment{}, fmt.Errorf("amount %s: %w", inv.Amount, types.ErrInvalidData)
	}
	db, err := it.backend.conn()
	if err != nil {
		return types.Investment{}, err
	}
	if inv.PurchaseDate.IsZero() {
		inv.PurchaseDate = types.DateOf(nowFunc().UTC())
	}
	inv.CreatedAt = nowFunc().UTC().Truncate(time.Second)

	res, err := db.ExecContext(ctx,
		`INSERT INTO investments (user_id, name, type, amount, current_value, purchase_date, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.UserID, inv.Name, inv.Type, inv.Amount.String(), nullDecimal(inv.CurrentValue),
		formatDate(inv.PurchaseDate), inv.Notes, formatTime(inv.CreatedAt),
	)
	if err != nil {
		return types.Investment{}, fmt.Errorf("inserting investment: %w", err)
	}
	if inv.InvestmentID, err = res.LastInsertId(); err != nil {
		return types.Investment{}, fmt.Errorf("reading investment id: %w", err)
	}
	inv.PurchaseDate, _ = parseDate(formatDate(inv.PurchaseDate))
	return inv, nil
}

func (it *investmentsTable) Get(ctx context.Context, userID, id int64) (types.Investment, error) {
	db, err := it.backend.conn()
	if err != nil {
		return types.Investment{}, err
	}
	return getInvestment(ctx, db, userID, id)
}

func getInvestment(ctx context.Context, q queryer, userID, id int64) (types.Investment, error) {
	row := q.QueryRowContext(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE investment_id = ? AND user_id = ?`, id, userID)
	inv, err := hydrateInvestment(row)
	if err != nil {
		return types.Investment{}, notFound(err)
	}
	return inv, nil
}

func (it *investmentsTable) List(ctx context.Context, userID int64) ([]types.Investment, error) {
	db, err := it.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE user_id = ?
		 ORDER BY purchase_date DESC, investment_id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying investments: %w", err)
	}
	defer rows.Close()

	var out []types.Investment
	for rows.Next() {
		inv, err := hydrateInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning investment: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (it *investmentsTable) UpdateCurrentValue(ctx context.Context, userID, id int64, value decimal.Decimal) (types.Investment, error) {
	if value.IsNegative() {
		return types.Investment{}, fmt.Errorf("current value %s: %w", value, types.ErrInvalidData)
	}
	db, err := it.backend.conn()
	if err != nil {
		return types.Investment{}, err
	}
	res, err := db.ExecContext(ctx,
		`UPDATE investments SET current_value = ? WHERE investment_id = ? AND user_id = ?`,
		value.String(), id, userID)
	if err != nil {
		return types.Investment{}, fmt.Errorf("updating investment %d: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return types.Investment{}, err
	}
	return getInvestment(ctx, db, userID, id)
}

// Delete removes the investment; its contributions go with it.
func (it *investmentsTable) Delete(ctx context.Context, userID, id int64) error {
	db, err := it.backend.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM investments WHERE investment_id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting investment %d: %w", id, err)
	}
	return requireAffected(res)
}

// Totals sums invested amounts and values; an investment without a current
// value counts at its invested amount.
func (it *investmentsTable) Totals(ctx context.Context, userID int64) (types.InvestmentTotals, error) {
	list, err := it.List(ctx, userID)
	if err != nil {
		return types.InvestmentTotals{}, err
	}
	totals := types.InvestmentTotals{Invested: decimal.Zero, Value: decimal.Zero}
	for _, inv := range list {
		totals.Invested = totals.Invested.Add(inv.Amount)
		totals.Value = totals.Value.Add(inv.Value())
	}
	return totals, nil
}

// AddContribution records c and raises the investment's amount, and its
// current value when one is set, by c.Amount in one transaction.
func (it *investmentsTable) AddContribution(ctx context.Context, userID int64, c types.Contribution) (types.Contribution, types.Investment, error) {
	if !c.Amount.IsPositive() {
		return types.Contribution{}, types.Investment{}, fmt.Errorf("amount %s: %w", c.Amount, types.ErrInvalidData)
	}
	db, err := it.backend.conn()
	if err != nil {
		return types.Contribution{}, types.Investment{}, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return types.Contribution{}, types.Investment{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	inv, err := getInvestment(ctx, tx, userID, c.InvestmentID)
	if err != nil {
		return types.Contribution{}, types.Investment{}, err
	}
	if c.Date.IsZero() {
		c.Date = types.DateOf(nowFunc().UTC())
	}
	c.CreatedAt = nowFunc().UTC().Truncate(time.Second)

	res, err := tx.ExecContext(ctx,
		`INSERT INTO contributions (investment_id, amount, date, created_at) VALUES (?, ?, ?, ?)`,
		c.InvestmentID, c.Amount.String(), formatDate(c.Date), formatTime(c.CreatedAt))
	if err != nil {
		return types.Contribution{}, types.Investment{}, fmt.Errorf("inserting contribution: %w", err)
	}
	if c.ContributionID, err = res.LastInsertId(); err != nil {
		return types.Contribution{}, types.Investment{}, fmt.Errorf("reading contribution id: %w", err)
	}

	inv = shiftInvestment(inv, c.Amount)
	if err := saveInvestmentAmounts(ctx, tx, inv); err != nil {
		return types.Contribution{}, types.Investment{}, err
	}
	if err := tx.Commit(); err != nil {
		return types.Contribution{}, types.Investment{}, fmt.Errorf("commit transaction: %w", err)
	}
	c.Date, _ = parseDate(formatDate(c.Date))
	return c, inv, nil
}

// DeleteContribution removes a contribution and reverts its effect on the
// parent investment.
func (it *investmentsTable) DeleteContribution(ctx context.Context, userID, id int64) error {
	db, err := it.backend.conn()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var investmentID int64
	var amount string
	err = tx.QueryRowContext(ctx,
		`SELECT c.investment_id, c.amount FROM contributions c
		 JOIN investments i ON i.investment_id = c.investment_id
		 WHERE c.contribution_id = ? AND i.user_id = ?`, id, userID).Scan(&investmentID, &amount)
	if err != nil {
		return notFound(err)
	}
	delta, err := parseDecimal(amount)
	if err != nil {
		return err
	}
	inv, err := getInvestment(ctx, tx, userID, investmentID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM contributions WHERE contribution_id = ?`, id); err != nil {
		return fmt.Errorf("deleting contribution %d: %w", id, err)
	}
	if err := saveInvestmentAmounts(ctx, tx, shiftInvestment(inv, delta.Neg())); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (it *investmentsTable) Contributions(ctx context.Context, userID, investmentID int64) ([]types.Contribution, error) {
	db, err := it.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT c.contribution_id, c.investment_id, c.amount, c.date, c.created_at
		 FROM contributions c JOIN investments i ON i.investment_id = c.investment_id
		 WHERE c.investment_id = ? AND i.user_id = ?
		 ORDER BY c.date DESC, c.contribution_id DESC`, investmentID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying contributions: %w", err)
	}
	defer rows.Close()

	var out []types.Contribution
	for rows.Next() {
		c, err := hydrateContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func shiftInvestment(inv types.Investment, delta decimal.Decimal) types.Investment {
	inv.Amount = inv.Amount.Add(delta)
	if inv.CurrentValue.Valid {
		inv.CurrentValue.Decimal = inv.CurrentValue.Decimal.Add(delta)
	}
	return inv
}

func saveInvestmentAmounts(ctx context.Context, tx *sql.Tx, inv types.Investment) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE investments SET amount = ?, current_value = ? WHERE investment_id = ?`,
		inv.Amount.String(), nullDecimal(inv.CurrentValue), inv.InvestmentID)
	if err != nil {
		return fmt.Errorf("updating investment %d: %w", inv.InvestmentID, err)
	}
	return nil
}

func hydrateInvestment(row scanner) (types.Investment, error) {
	var (
		inv                     types.Investment
		amount                  string
		current                 sql.NullString
		purchaseDate, createdAt string
	)
	err := row.Scan(&inv.InvestmentID, &inv.UserID, &inv.Name, &inv.Type, &amount, &current,
		&purchaseDate, &inv.Notes, &createdAt)
	if err != nil {
		return types.Investment{}, err
	}
	if inv.Amount, err = parseDecimal(amount); err != nil {
		return types.Investment{}, err
	}
	if inv.CurrentValue, err = parseNullDecimal(current); err != nil {
		return types.Investment{}, err
	}
	if inv.PurchaseDate, err = parseDate(purchaseDate); err != nil {
		return types.Investment{}, err
	}
	if inv.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Investment{}, err
	}
	return inv, nil
}

func hydrateContribution(row scanner) (types.Contribution, error) {
	var (
		c               types.Contribution
		amount          string
		date, createdAt string
	)
	if err := row.Scan(&c.ContributionID, &c.InvestmentID, &amount, &date, &createdAt); err != nil {
		return types.Contribution{}, err
	}
	var err error
	if c.Amount, err = parseDecimal(amount); err != nil {
		return types.Contribution{}, err
	}
	if c.Date, err = parseDate(date); err != nil {
		return types.Contribution{}, err
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Contribution{}, err
	}
	return c, nil
}
