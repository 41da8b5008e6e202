package sqlite

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var _ types.Lookup = (*lookup)(nil)

// lookup finds any owned record by id or by name for the resolver.
type lookup struct {
	backend *Backend
}

func (l *lookup) FindByID(ctx context.Context, entity types.EntityType, ownerID, id int64) (types.Named, error) {
	b := l.backend
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		return named(b.entries.Get(ctx, entity, ownerID, id))
	case types.EntityInvestment:
		return named(b.investments.Get(ctx, ownerID, id))
	case types.EntityHabit:
		return named(b.habits.Get(ctx, ownerID, id))
	case types.EntityObjective:
		return named(b.okrs.GetObjective(ctx, ownerID, id))
	case types.EntityKeyResult:
		return named(b.okrs.GetKeyResult(ctx, ownerID, id))
	case types.EntityAction:
		return named(b.okrs.GetAction(ctx, ownerID, id))
	case types.EntityContribution:
		return named(l.contribution(ctx, ownerID, id))
	}
	return nil, fmt.Errorf("find %s: %w", entity, types.ErrInvalidData)
}

// SearchByName returns records whose name contains query, compared with
// case folding. Exact matches come first, the rest in name order, capped
// at limit when limit is positive.
func (l *lookup) SearchByName(ctx context.Context, entity types.EntityType, ownerID int64, query string, limit int) ([]types.Named, error) {
	all, err := l.all(ctx, entity, ownerID)
	if err != nil {
		return nil, err
	}
	q := fold(query)
	type match struct {
		rec    types.Named
		folded string
		exact  bool
	}
	var matches []match
	for _, rec := range all {
		name := fold(rec.DisplayName())
		if strings.Contains(name, q) {
			matches = append(matches, match{rec: rec, folded: name, exact: name == q})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].exact != matches[j].exact {
			return matches[i].exact
		}
		if matches[i].folded != matches[j].folded {
			return matches[i].folded < matches[j].folded
		}
		return matches[i].rec.EntityID() < matches[j].rec.EntityID()
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]types.Named, len(matches))
	for i, m := range matches {
		out[i] = m.rec
	}
	return out, nil
}

func (l *lookup) all(ctx context.Context, entity types.EntityType, ownerID int64) ([]types.Named, error) {
	b := l.backend
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		return namedAll(b.entries.listBetween(ctx, entity, ownerID, "", ""))
	case types.EntityInvestment:
		return namedAll(b.investments.List(ctx, ownerID))
	case types.EntityHabit:
		return namedAll(b.habits.List(ctx, ownerID))
	case types.EntityObjective:
		return namedAll(b.okrs.ListObjectives(ctx, ownerID))
	case types.EntityKeyResult:
		return namedAll(l.keyResults(ctx, ownerID))
	case types.EntityAction:
		return namedAll(l.actions(ctx, ownerID))
	case types.EntityContribution:
		return namedAll(l.contributions(ctx, ownerID))
	}
	return nil, fmt.Errorf("search %s: %w", entity, types.ErrInvalidData)
}

func (l *lookup) keyResults(ctx context.Context, ownerID int64) ([]types.KeyResult, error) {
	db, err := l.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+keyResultColumns+keyResultOwned+` WHERE o.user_id = ? ORDER BY k.key_result_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying key results: %w", err)
	}
	defer rows.Close()

	var out []types.KeyResult
	for rows.Next() {
		kr, err := hydrateKeyResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning key result: %w", err)
		}
		out = append(out, kr)
	}
	return out, rows.Err()
}

func (l *lookup) actions(ctx context.Context, ownerID int64) ([]types.Action, error) {
	db, err := l.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+actionColumns+actionOwned+` WHERE o.user_id = ? ORDER BY a.action_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying actions: %w", err)
	}
	defer rows.Close()

	var out []types.Action
	for rows.Next() {
		a, err := hydrateAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

const contributionOwned = `SELECT c.contribution_id, c.investment_id, c.amount, c.date, c.created_at
	FROM contributions c JOIN investments i ON i.investment_id = c.investment_id`

func (l *lookup) contribution(ctx context.Context, ownerID, id int64) (types.Contribution, error) {
	db, err := l.backend.conn()
	if err != nil {
		return types.Contribution{}, err
	}
	row := db.QueryRowContext(ctx, contributionOwned+` WHERE c.contribution_id = ? AND i.user_id = ?`, id, ownerID)
	c, err := hydrateContribution(row)
	if err != nil {
		return types.Contribution{}, notFound(err)
	}
	return c, nil
}

func (l *lookup) contributions(ctx context.Context, ownerID int64) ([]types.Contribution, error) {
	db, err := l.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, contributionOwned+` WHERE i.user_id = ? ORDER BY c.contribution_id`, ownerID)
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

func named[T types.Named](rec T, err error) (types.Named, error) {
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func namedAll[T types.Named](recs []T, err error) ([]types.Named, error) {
	if err != nil {
		return nil, err
	}
	out := make([]types.Named, len(recs))
	for i, r := range recs {
		out[i] = r
	}
	return out, nil
}

// fold builds a Caser per call; Casers keep state and are not safe to share.
func fold(s string) string {
	return cases.Fold().String(s)
}
