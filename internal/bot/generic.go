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

// generic runs a classified command: extract fields, resolve identifiers,
// then call storage for the verb and entity pair.
func (d *Dispatcher) generic(ctx context.Context, req *request, cmd command.ParsedCommand) (Reply, error) {
	req.log = req.log.With(zap.Stringer("verb", cmd.Verb), zap.Stringer("entity", cmd.Entity))
	if cmd.Entity == types.EntityNone {
		if cmd.Verb == command.VerbAdd {
			return d.usage(req, i18n.UsageAdd), nil
		}
		return text(i18n.F(req.lang, i18n.GenericUsage, verbWord(req, cmd.Verb))), nil
	}

	args := cmd.ArgValues()
	switch cmd.Verb {
	case command.VerbAdd:
		return d.add(ctx, req, cmd)
	case command.VerbList, command.VerbShow:
		return d.list(ctx, req, cmd.Entity, args)
	case command.VerbView:
		return d.view(ctx, req, cmd.Entity, args)
	case command.VerbUpdate:
		return d.update(ctx, req, cmd.Entity, args)
	case command.VerbEdit:
		return d.edit(ctx, req, cmd.Entity, args)
	case command.VerbDelete:
		return d.remove(ctx, req, cmd.Entity, args)
	case command.VerbLink:
		return d.link(ctx, req, cmd.Entity, args)
	}
	return d.help(ctx, req)
}

func (d *Dispatcher) add(ctx context.Context, req *request, cmd command.ParsedCommand) (Reply, error) {
	fields, err := command.Extract(cmd, req.today)
	if err != nil {
		if cmd.Inferred && isReason(err, command.ReasonMissingNameOrType) {
			return d.usage(req, i18n.UsageAdd), nil
		}
		return Reply{}, err
	}
	switch f := fields.(type) {
	case command.EntryFields:
		return d.addEntry(ctx, req, cmd.Entity, f)
	case command.InvestmentFields:
		return d.addInvestment(ctx, req, f)
	case command.HabitFields:
		return d.addHabit(ctx, req, f)
	case string:
		return d.addObjective(ctx, req, f)
	case command.KeyResultFields:
		return d.addKeyResult(ctx, req, f)
	case command.TextUpdateFields:
		return d.addAction(ctx, req, f)
	case command.ContributionFields:
		return d.contribute(ctx, req, f)
	}
	return Reply{}, fmt.Errorf("add %s: unexpected fields %T", cmd.Entity, fields)
}

func (d *Dispatcher) list(ctx context.Context, req *request, entity types.EntityType, args []string) (Reply, error) {
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		return d.listEntries(ctx, req, entity)
	case types.EntityInvestment:
		return d.listInvestments(ctx, req)
	case types.EntityHabit:
		return d.listHabits(ctx, req)
	case types.EntityObjective, types.EntityKeyResult, types.EntityAction:
		return d.listOKRs(ctx, req)
	case types.EntityContribution:
		return d.listContributions(ctx, req, strings.Join(args, " "))
	}
	return d.help(ctx, req)
}

// view shows one record, or the list when no identifier is given.
func (d *Dispatcher) view(ctx context.Context, req *request, entity types.EntityType, args []string) (Reply, error) {
	identifier := strings.Join(args, " ")
	if identifier == "" {
		return d.list(ctx, req, entity, args)
	}
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		return d.viewEntry(ctx, req, entity, identifier)
	case types.EntityInvestment:
		return d.viewInvestment(ctx, req, identifier)
	case types.EntityHabit:
		return d.viewHabit(ctx, req, identifier)
	case types.EntityObjective:
		return d.viewObjective(ctx, req, identifier)
	case types.EntityKeyResult:
		return d.viewKeyResult(ctx, req, identifier)
	case types.EntityAction:
		return d.viewAction(ctx, req, identifier)
	case types.EntityContribution:
		return d.viewContribution(ctx, req, identifier)
	}
	return d.help(ctx, req)
}

// update changes the value that matters most for each entity: the amount
// of an entry, the current value of an investment or key result, the
// progress of an action, the title of an objective. Updating a habit logs
// it.
func (d *Dispatcher) update(ctx context.Context, req *request, entity types.EntityType, args []string) (Reply, error) {
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		f, err := command.ExtractValueUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.updateEntryAmount(ctx, req, entity, f)
	case types.EntityInvestment:
		f, err := command.ExtractValueUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.updateInvestment(ctx, req, f)
	case types.EntityKeyResult:
		f, err := command.ExtractValueUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.updateKeyResult(ctx, req, f)
	case types.EntityAction:
		f, err := command.ExtractTextUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.updateProgress(ctx, req, f)
	case types.EntityObjective:
		f, err := command.ExtractTextUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.renameObjective(ctx, req, f)
	case types.EntityHabit:
		f, err := command.ExtractHabitLog(args, req.today)
		if err != nil {
			return Reply{}, err
		}
		return d.logHabit(ctx, req, f)
	}
	return d.unsupported(req, command.VerbUpdate, entity), nil
}

// edit rewrites free text: an entry's description or an objective's title.
func (d *Dispatcher) edit(ctx context.Context, req *request, entity types.EntityType, args []string) (Reply, error) {
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		f, err := command.ExtractTextUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.updateEntryDescription(ctx, req, entity, f)
	case types.EntityObjective:
		f, err := command.ExtractTextUpdate(args)
		if err != nil {
			return Reply{}, err
		}
		return d.renameObjective(ctx, req, f)
	}
	return d.unsupported(req, command.VerbEdit, entity), nil
}

// remove deletes the record named by all args.
func (d *Dispatcher) remove(ctx context.Context, req *request, entity types.EntityType, args []string) (Reply, error) {
	identifier := strings.Join(args, " ")
	if identifier == "" {
		return Reply{}, &command.ExtractionError{Reason: command.ReasonMissingIdentifier}
	}
	rec, err := d.find(ctx, req, entity, identifier)
	if err != nil {
		return Reply{}, err
	}

	uid, id := req.userID(), rec.EntityID()
	switch entity {
	case types.EntityExpense, types.EntityIncome:
		err = d.store.Entries().Delete(ctx, entity, uid, id)
	case types.EntityInvestment:
		err = d.store.Investments().Delete(ctx, uid, id)
	case types.EntityContribution:
		err = d.store.Investments().DeleteContribution(ctx, uid, id)
	case types.EntityHabit:
		err = d.store.Habits().Delete(ctx, uid, id)
	case types.EntityObjective:
		err = d.store.OKRs().DeleteObjective(ctx, uid, id)
	case types.EntityKeyResult:
		err = d.store.OKRs().DeleteKeyResult(ctx, uid, id)
	case types.EntityAction:
		err = d.store.OKRs().DeleteAction(ctx, uid, id)
	default:
		return d.unsupported(req, command.VerbDelete, entity), nil
	}
	if err != nil {
		return Reply{}, fmt.Errorf("delete %s %d: %w", entity, id, err)
	}
	req.log.Info("record deleted", zap.Int64("id", id))
	return text(i18n.F(req.lang, i18n.Deleted, i18n.EntityTitle(entity, req.lang), rec.DisplayName(), id)), nil
}

func (d *Dispatcher) link(ctx context.Context, req *request, entity types.EntityType, args []string) (Reply, error) {
	if entity != types.EntityHabit && entity != types.EntityAction {
		return d.unsupported(req, command.VerbLink, entity), nil
	}
	f, err := command.ExtractLink(args)
	if err != nil {
		return Reply{}, err
	}
	return d.linkHabit(ctx, req, f)
}

func (d *Dispatcher) unsupported(req *request, verb command.Verb, entity types.EntityType) Reply {
	return text(i18n.F(req.lang, i18n.Unsupported, verbWord(req, verb), i18n.EntityName(entity, req.lang)))
}
