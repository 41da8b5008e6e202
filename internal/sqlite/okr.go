package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var _ types.OKRStore = (*okrTable)(nil)

// Key results and actions carry no user id; ownership is checked by joining
// up to the objective.
const (
	objectiveColumns = `o.objective_id, o.user_id, o.title, o.description, o.target_date, o.created_at`
	keyResultColumns = `k.key_result_id, k.objective_id, k.title, k.target_value, k.current_value, k.created_at`
	actionColumns    = `a.action_id, a.key_result_id, a.description, a.progress, a.created_at`

	keyResultOwned = ` FROM key_results k JOIN objectives o ON o.objective_id = k.objective_id`
	actionOwned    = ` FROM actions a JOIN key_results k ON k.key_result_id = a.key_result_id
		JOIN objectives o ON o.objective_id = k.objective_id`
)

type okrTable struct {
	backend *Backend
}

// Objectives

func (ot *okrTable) CreateObjective(ctx context.Context, o types.Objective) (types.Objective, error) {
	if o.Title == "" {
		return types.Objective{}, types.ErrInvalidName
	}
	db, err := ot.backend.conn()
	if err != nil {
		return types.Objective{}, err
	}
	o.CreatedAt = nowFunc().UTC().Truncate(time.Second)
	res, err := db.ExecContext(ctx,
		`INSERT INTO objectives (user_id, title, description, target_date, created_at) VALUES (?, ?, ?, ?, ?)`,
		o.UserID, o.Title, o.Description, nullDate(o.TargetDate), formatTime(o.CreatedAt))
	if err != nil {
		return types.Objective{}, fmt.Errorf("inserting objective: %w", err)
	}
	if o.ObjectiveID, err = res.LastInsertId(); err != nil {
		return types.Objective{}, fmt.Errorf("reading objective id: %w", err)
	}
	return o, nil
}

func (ot *okrTable) GetObjective(ctx context.Context, userID, id int64) (types.Objective, error) {
	db, err := ot.backend.conn()
	if err != nil {
		return types.Objective{}, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT `+objectiveColumns+` FROM objectives o WHERE o.objective_id = ? AND o.user_id = ?`, id, userID)
	o, err := hydrateObjective(row)
	if err != nil {
		return types.Objective{}, notFound(err)
	}
	return o, nil
}

func (ot *okrTable) ListObjectives(ctx context.Context, userID int64) ([]types.Objective, error) {
	db, err := ot.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+objectiveColumns+` FROM objectives o WHERE o.user_id = ? ORDER BY o.created_at DESC, o.objective_id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying objectives: %w", err)
	}
	defer rows.Close()

	var out []types.Objective
	for rows.Next() {
		o, err := hydrateObjective(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning objective: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (ot *okrTable) UpdateObjectiveTitle(ctx context.Context, userID, id int64, title string) (types.Objective, error) {
	if title == "" {
		return types.Objective{}, types.ErrInvalidName
	}
	db, err := ot.backend.conn()
	if err != nil {
		return types.Objective{}, err
	}
	res, err := db.ExecContext(ctx,
		`UPDATE objectives SET title = ? WHERE objective_id = ? AND user_id = ?`, title, id, userID)
	if err != nil {
		return types.Objective{}, fmt.Errorf("updating objective %d: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return types.Objective{}, err
	}
	return ot.GetObjective(ctx, userID, id)
}

// DeleteObjective removes the objective with its key results and actions.
func (ot *okrTable) DeleteObjective(ctx context.Context, userID, id int64) error {
	db, err := ot.backend.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM objectives WHERE objective_id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting objective %d: %w", id, err)
	}
	return requireAffected(res)
}

// Key results

func (ot *okrTable) CreateKeyResult(ctx context.Context, userID int64, kr types.KeyResult) (types.KeyResult, error) {
	if kr.Title == "" {
		return types.KeyResult{}, types.ErrInvalidName
	}
	if _, err := ot.GetObjective(ctx, userID, kr.ObjectiveID); err != nil {
		return types.KeyResult{}, err
	}
	db, err := ot.backend.conn()
	if err != nil {
		return types.KeyResult{}, err
	}
	if !kr.CurrentValue.Valid {
		kr.CurrentValue = decimal.NewNullDecimal(decimal.Zero)
	}
	kr.CreatedAt = nowFunc().UTC().Truncate(time.Second)
	res, err := db.ExecContext(ctx,
		`INSERT INTO key_results (objective_id, title, target_value, current_value, created_at) VALUES (?, ?, ?, ?, ?)`,
		kr.ObjectiveID, kr.Title, nullDecimal(kr.TargetValue), nullDecimal(kr.CurrentValue), formatTime(kr.CreatedAt))
	if err != nil {
		return types.KeyResult{}, fmt.Errorf("inserting key result: %w", err)
	}
	if kr.KeyResultID, err = res.LastInsertId(); err != nil {
		return types.KeyResult{}, fmt.Errorf("reading key result id: %w", err)
	}
	return kr, nil
}

func (ot *okrTable) GetKeyResult(ctx context.Context, userID, id int64) (types.KeyResult, error) {
	db, err := ot.backend.conn()
	if err != nil {
		return types.KeyResult{}, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT `+keyResultColumns+keyResultOwned+` WHERE k.key_result_id = ? AND o.user_id = ?`, id, userID)
	kr, err := hydrateKeyResult(row)
	if err != nil {
		return types.KeyResult{}, notFound(err)
	}
	return kr, nil
}

func (ot *okrTable) ListKeyResults(ctx context.Context, objectiveID int64) ([]types.KeyResult, error) {
	db, err := ot.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+keyResultColumns+` FROM key_results k WHERE k.objective_id = ? ORDER BY k.key_result_id ASC`,
		objectiveID)
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

func (ot *okrTable) UpdateKeyResultValue(ctx context.Context, userID, id int64, value decimal.Decimal) (types.KeyResult, error) {
	if _, err := ot.GetKeyResult(ctx, userID, id); err != nil {
		return types.KeyResult{}, err
	}
	db, err := ot.backend.conn()
	if err != nil {
		return types.KeyResult{}, err
	}
	if _, err := db.ExecContext(ctx,
		`UPDATE key_results SET current_value = ? WHERE key_result_id = ?`, value.String(), id); err != nil {
		return types.KeyResult{}, fmt.Errorf("updating key result %d: %w", id, err)
	}
	return ot.GetKeyResult(ctx, userID, id)
}

func (ot *okrTable) DeleteKeyResult(ctx context.Context, userID, id int64) error {
	if _, err := ot.GetKeyResult(ctx, userID, id); err != nil {
		return err
	}
	db, err := ot.backend.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM key_results WHERE key_result_id = ?`, id); err != nil {
		return fmt.Errorf("deleting key result %d: %w", id, err)
	}
	return nil
}

// Actions

func (ot *okrTable) CreateAction(ctx context.Context, userID int64, a types.Action) (types.Action, error) {
	if a.Description == "" {
		return types.Action{}, types.ErrInvalidName
	}
	if _, err := ot.GetKeyResult(ctx, userID, a.KeyResultID); err != nil {
		return types.Action{}, err
	}
	db, err := ot.backend.conn()
	if err != nil {
		return types.Action{}, err
	}
	a.CreatedAt = nowFunc().UTC().Truncate(time.Second)
	res, err := db.ExecContext(ctx,
		`INSERT INTO actions (key_result_id, description, progress, created_at) VALUES (?, ?, ?, ?)`,
		a.KeyResultID, a.Description, a.Progress, formatTime(a.CreatedAt))
	if err != nil {
		return types.Action{}, fmt.Errorf("inserting action: %w", err)
	}
	if a.ActionID, err = res.LastInsertId(); err != nil {
		return types.Action{}, fmt.Errorf("reading action id: %w", err)
	}
	return a, nil
}

func (ot *okrTable) GetAction(ctx context.Context, userID, id int64) (types.Action, error) {
	db, err := ot.backend.conn()
	if err != nil {
		return types.Action{}, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT `+actionColumns+actionOwned+` WHERE a.action_id = ? AND o.user_id = ?`, id, userID)
	a, err := hydrateAction(row)
	if err != nil {
		return types.Action{}, notFound(err)
	}
	return a, nil
}

func (ot *okrTable) ListActions(ctx context.Context, keyResultID int64) ([]types.Action, error) {
	db, err := ot.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+actionColumns+` FROM actions a WHERE a.key_result_id = ? ORDER BY a.action_id ASC`, keyResultID)
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

func (ot *okrTable) UpdateActionProgress(ctx context.Context, userID, id int64, progress string) (types.Action, error) {
	if _, err := ot.GetAction(ctx, userID, id); err != nil {
		return types.Action{}, err
	}
	db, err := ot.backend.conn()
	if err != nil {
		return types.Action{}, err
	}
	if _, err := db.ExecContext(ctx, `UPDATE actions SET progress = ? WHERE action_id = ?`, progress, id); err != nil {
		return types.Action{}, fmt.Errorf("updating action %d: %w", id, err)
	}
	return ot.GetAction(ctx, userID, id)
}

func (ot *okrTable) DeleteAction(ctx context.Context, userID, id int64) error {
	if _, err := ot.GetAction(ctx, userID, id); err != nil {
		return err
	}
	db, err := ot.backend.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM actions WHERE action_id = ?`, id); err != nil {
		return fmt.Errorf("deleting action %d: %w", id, err)
	}
	return nil
}

func hydrateObjective(row scanner) (types.Objective, error) {
	var (
		o          types.Objective
		targetDate sql.NullString
		createdAt  string
	)
	if err := row.Scan(&o.ObjectiveID, &o.UserID, &o.Title, &o.Description, &targetDate, &createdAt); err != nil {
		return types.Objective{}, err
	}
	var err error
	if o.TargetDate, err = parseNullDate(targetDate); err != nil {
		return types.Objective{}, err
	}
	if o.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Objective{}, err
	}
	return o, nil
}

func hydrateKeyResult(row scanner) (types.KeyResult, error) {
	var (
		kr              types.KeyResult
		target, current sql.NullString
		createdAt       string
	)
	if err := row.Scan(&kr.KeyResultID, &kr.ObjectiveID, &kr.Title, &target, &current, &createdAt); err != nil {
		return types.KeyResult{}, err
	}
	var err error
	if kr.TargetValue, err = parseNullDecimal(target); err != nil {
		return types.KeyResult{}, err
	}
	if kr.CurrentValue, err = parseNullDecimal(current); err != nil {
		return types.KeyResult{}, err
	}
	if kr.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.KeyResult{}, err
	}
	return kr, nil
}

func hydrateAction(row scanner) (types.Action, error) {
	var (
		a         types.Action
		createdAt string
	)
	if err := row.Scan(&a.ActionID, &a.KeyResultID, &a.Description, &a.Progress, &createdAt); err != nil {
		return types.Action{}, err
	}
	var err error
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Action{}, err
	}
	return a, nil
}
