package bot

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/command"
	"github.com/mesh-intelligence/diindiin/internal/i18n"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func (d *Dispatcher) addObjectiveCommand(ctx context.Context, req *request) (Reply, error) {
	title, err := command.ExtractTitle(req.args)
	if err != nil {
		return d.usage(req, i18n.UsageAddObjective), nil
	}
	return d.addObjective(ctx, req, title)
}

func (d *Dispatcher) addObjective(ctx context.Context, req *request, title string) (Reply, error) {
	o, err := d.store.OKRs().CreateObjective(ctx, types.Objective{UserID: req.userID(), Title: title})
	if err != nil {
		return Reply{}, fmt.Errorf("create objective: %w", err)
	}
	req.log.Info("objective added", zap.Int64("id", o.ObjectiveID))
	return text(i18n.F(req.lang, i18n.ObjectiveAdded, o.Title, o.ObjectiveID)), nil
}

func (d *Dispatcher) addKeyResultCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) < 2 {
		return d.usage(req, i18n.UsageAddKR), nil
	}
	f, err := command.ExtractKeyResult(req.args)
	if err != nil {
		return Reply{}, err
	}
	return d.addKeyResult(ctx, req, f)
}

func (d *Dispatcher) addKeyResult(ctx context.Context, req *request, f command.KeyResultFields) (Reply, error) {
	o, err := findAs[types.Objective](ctx, d, req, types.EntityObjective, f.Objective)
	if err != nil {
		return Reply{}, err
	}
	kr, err := d.store.OKRs().CreateKeyResult(ctx, req.userID(), types.KeyResult{
		ObjectiveID: o.ObjectiveID,
		Title:       f.Title,
		TargetValue: f.Target,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("create key result: %w", err)
	}
	req.log.Info("key result added", zap.Int64("id", kr.KeyResultID), zap.Int64("objective_id", o.ObjectiveID))

	target := ""
	if kr.TargetValue.Valid {
		target = i18n.F(req.lang, i18n.TargetLine, number(req.lang, kr.TargetValue.Decimal))
	}
	return text(i18n.F(req.lang, i18n.KeyResultAdded, kr.Title, target, kr.KeyResultID)), nil
}

func (d *Dispatcher) addActionCommand(ctx context.Context, req *request) (Reply, error) {
	f, err := command.ExtractTextUpdate(req.args)
	if err != nil {
		return d.usage(req, i18n.UsageAddAction), nil
	}
	return d.addAction(ctx, req, f)
}

// addAction adds an action under the key result named by f.Identifier.
func (d *Dispatcher) addAction(ctx context.Context, req *request, f command.TextUpdateFields) (Reply, error) {
	kr, err := findAs[types.KeyResult](ctx, d, req, types.EntityKeyResult, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	a, err := d.store.OKRs().CreateAction(ctx, req.userID(), types.Action{
		KeyResultID: kr.KeyResultID,
		Description: f.Text,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("create action: %w", err)
	}
	req.log.Info("action added", zap.Int64("id", a.ActionID), zap.Int64("key_result_id", kr.KeyResultID))
	return text(i18n.F(req.lang, i18n.ActionAdded, a.Description, a.ActionID)), nil
}

func (d *Dispatcher) updateProgressCommand(ctx context.Context, req *request) (Reply, error) {
	f, err := command.ExtractTextUpdate(req.args)
	if err != nil {
		return d.usage(req, i18n.UsageUpdateProgress), nil
	}
	return d.updateProgress(ctx, req, f)
}

func (d *Dispatcher) updateProgress(ctx context.Context, req *request, f command.TextUpdateFields) (Reply, error) {
	a, err := findAs[types.Action](ctx, d, req, types.EntityAction, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	a, err = d.store.OKRs().UpdateActionProgress(ctx, req.userID(), a.ActionID, f.Text)
	if err != nil {
		return Reply{}, fmt.Errorf("update action progress: %w", err)
	}
	req.log.Info("action progress updated", zap.Int64("id", a.ActionID))
	return text(i18n.F(req.lang, i18n.ProgressUpdated, a.Description, a.Progress)), nil
}

func (d *Dispatcher) updateKeyResult(ctx context.Context, req *request, f command.ValueUpdateFields) (Reply, error) {
	kr, err := findAs[types.KeyResult](ctx, d, req, types.EntityKeyResult, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	kr, err = d.store.OKRs().UpdateKeyResultValue(ctx, req.userID(), kr.KeyResultID, f.Value)
	if err != nil {
		return Reply{}, fmt.Errorf("update key result: %w", err)
	}
	req.log.Info("key result updated", zap.Int64("id", kr.KeyResultID))
	return text(i18n.F(req.lang, i18n.KeyResultUpdated, kr.Title, keyResultProgress(req.lang, kr))), nil
}

func keyResultProgress(lang types.Language, kr types.KeyResult) string {
	current := kr.CurrentValue.Decimal
	if pct, ok := kr.Percent(); ok {
		return i18n.F(lang, i18n.KeyResultProgress,
			number(lang, current), number(lang, kr.TargetValue.Decimal), percent(lang, pct))
	}
	return i18n.F(lang, i18n.KeyResultCurrent, number(lang, current))
}

func (d *Dispatcher) renameObjective(ctx context.Context, req *request, f command.TextUpdateFields) (Reply, error) {
	o, err := findAs[types.Objective](ctx, d, req, types.EntityObjective, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	o, err = d.store.OKRs().UpdateObjectiveTitle(ctx, req.userID(), o.ObjectiveID, f.Text)
	if err != nil {
		return Reply{}, fmt.Errorf("rename objective: %w", err)
	}
	req.log.Info("objective renamed", zap.Int64("id", o.ObjectiveID))
	return text(i18n.F(req.lang, i18n.Renamed, i18n.EntityTitle(types.EntityObjective, req.lang), o.Title)), nil
}

// listOKRs renders every objective with its key results and actions.
func (d *Dispatcher) listOKRs(ctx context.Context, req *request) (Reply, error) {
	objs, err := d.store.OKRs().ListObjectives(ctx, req.userID())
	if err != nil {
		return Reply{}, fmt.Errorf("list objectives: %w", err)
	}
	if len(objs) == 0 {
		return d.usage(req, i18n.NoOKRs), nil
	}
	var b strings.Builder
	b.WriteString(i18n.T(req.lang, i18n.OKRsHeader))
	for _, o := range objs {
		if err := d.writeObjective(ctx, &b, req.lang, o); err != nil {
			return Reply{}, err
		}
		b.WriteString("\n")
	}
	return text(strings.TrimRight(b.String(), "\n")), nil
}

func (d *Dispatcher) okrCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return d.usage(req, i18n.UsageOKR), nil
	}
	return d.viewObjective(ctx, req, strings.Join(req.args, " "))
}

func (d *Dispatcher) viewObjective(ctx context.Context, req *request, identifier string) (Reply, error) {
	o, err := findAs[types.Objective](ctx, d, req, types.EntityObjective, identifier)
	if err != nil {
		return Reply{}, err
	}
	var b strings.Builder
	if err := d.writeObjective(ctx, &b, req.lang, o); err != nil {
		return Reply{}, err
	}
	return text(strings.TrimRight(b.String(), "\n")), nil
}

func (d *Dispatcher) writeObjective(ctx context.Context, b *strings.Builder, lang types.Language, o types.Objective) error {
	b.WriteString(i18n.F(lang, i18n.ObjectiveLine, o.Title, o.ObjectiveID))
	if !o.TargetDate.IsZero() {
		b.WriteString(i18n.F(lang, i18n.TargetDateLine, date(o.TargetDate)))
	}
	krs, err := d.store.OKRs().ListKeyResults(ctx, o.ObjectiveID)
	if err != nil {
		return fmt.Errorf("list key results: %w", err)
	}
	for _, kr := range krs {
		if err := d.writeKeyResult(ctx, b, lang, kr); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) writeKeyResult(ctx context.Context, b *strings.Builder, lang types.Language, kr types.KeyResult) error {
	b.WriteString(i18n.F(lang, i18n.KeyResultLine, kr.Title, kr.KeyResultID))
	if kr.TargetValue.Valid {
		b.WriteString(i18n.F(lang, i18n.TargetSuffix, number(lang, kr.TargetValue.Decimal)))
	}
	if kr.CurrentValue.Valid {
		b.WriteString(i18n.F(lang, i18n.CurrentSuffix, number(lang, kr.CurrentValue.Decimal)))
	}
	b.WriteString("\n")
	actions, err := d.store.OKRs().ListActions(ctx, kr.KeyResultID)
	if err != nil {
		return fmt.Errorf("list actions: %w", err)
	}
	for _, a := range actions {
		writeAction(b, lang, a)
	}
	return nil
}

func writeAction(b *strings.Builder, lang types.Language, a types.Action) {
	b.WriteString(i18n.F(lang, i18n.ActionLine, a.Description, a.ActionID))
	if a.Progress != "" {
		b.WriteString(i18n.F(lang, i18n.ProgressSuffix, a.Progress))
	}
	b.WriteString("\n")
}

func (d *Dispatcher) viewKeyResult(ctx context.Context, req *request, identifier string) (Reply, error) {
	kr, err := findAs[types.KeyResult](ctx, d, req, types.EntityKeyResult, identifier)
	if err != nil {
		return Reply{}, err
	}
	var b strings.Builder
	if err := d.writeKeyResult(ctx, &b, req.lang, kr); err != nil {
		return Reply{}, err
	}
	return text(strings.TrimRight(b.String(), "\n")), nil
}

func (d *Dispatcher) viewAction(ctx context.Context, req *request, identifier string) (Reply, error) {
	a, err := findAs[types.Action](ctx, d, req, types.EntityAction, identifier)
	if err != nil {
		return Reply{}, err
	}
	var b strings.Builder
	writeAction(&b, req.lang, a)
	return text(strings.TrimSpace(b.String())), nil
}
