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

func (d *Dispatcher) addInvestmentCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return d.usage(req, i18n.UsageAddInvestment), nil
	}
	f, err := command.ExtractInvestment(req.args, req.today)
	if err != nil {
		return Reply{}, err
	}
	return d.addInvestment(ctx, req, f)
}

func (d *Dispatcher) addInvestment(ctx context.Context, req *request, f command.InvestmentFields) (Reply, error) {
	inv, err := d.store.Investments().Create(ctx, types.Investment{
		UserID:       req.userID(),
		Name:         f.Name,
		Type:         f.Type,
		Amount:       f.Amount,
		CurrentValue: f.CurrentValue,
		PurchaseDate: f.Date,
		Notes:        f.Notes,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("create investment: %w", err)
	}
	req.log.Info("investment added",
		zap.Int64("id", inv.InvestmentID),
		zap.String("type", inv.Type),
		zap.String("amount", inv.Amount.String()))

	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.InvestmentAdded,
		inv.Name, inv.Type, money(req.lang, inv.Amount), date(inv.PurchaseDate)))
	if inv.CurrentValue.Valid {
		b.WriteString(i18n.F(req.lang, i18n.CurrentValueLine, money(req.lang, inv.CurrentValue.Decimal)))
	}
	if inv.Notes != "" {
		b.WriteString(i18n.F(req.lang, i18n.NotesLine, inv.Notes))
	}
	return text(b.String()), nil
}

func (d *Dispatcher) listInvestments(ctx context.Context, req *request) (Reply, error) {
	store := d.store.Investments()
	invs, err := store.List(ctx, req.userID())
	if err != nil {
		return Reply{}, fmt.Errorf("list investments: %w", err)
	}
	if len(invs) == 0 {
		return d.usage(req, i18n.NoInvestments), nil
	}
	totals, err := store.Totals(ctx, req.userID())
	if err != nil {
		return Reply{}, fmt.Errorf("investment totals: %w", err)
	}

	var b strings.Builder
	b.WriteString(i18n.T(req.lang, i18n.InvestmentsHeader))
	for _, inv := range invs {
		writeInvestment(&b, req.lang, inv)
	}
	b.WriteString(i18n.F(req.lang, i18n.InvestmentTotals,
		money(req.lang, totals.Invested),
		money(req.lang, totals.Value),
		money(req.lang, totals.Return()),
		percent(req.lang, totals.ReturnPercent())))
	return text(b.String()), nil
}

func writeInvestment(b *strings.Builder, lang types.Language, inv types.Investment) {
	b.WriteString(i18n.F(lang, i18n.InvestmentItem, inv.Name, inv.Type, inv.InvestmentID, money(lang, inv.Amount)))
	if inv.CurrentValue.Valid {
		b.WriteString(i18n.F(lang, i18n.InvestmentReturn,
			money(lang, inv.CurrentValue.Decimal), money(lang, inv.Return()), percent(lang, inv.ReturnPercent())))
	}
	b.WriteString(i18n.F(lang, i18n.InvestmentDate, date(inv.PurchaseDate)))
}

func (d *Dispatcher) viewInvestment(ctx context.Context, req *request, identifier string) (Reply, error) {
	inv, err := findAs[types.Investment](ctx, d, req, types.EntityInvestment, identifier)
	if err != nil {
		return Reply{}, err
	}
	var b strings.Builder
	writeInvestment(&b, req.lang, inv)
	if inv.Notes != "" {
		b.WriteString(i18n.F(req.lang, i18n.NotesLine, inv.Notes))
	}
	return text(strings.TrimSpace(b.String())), nil
}

func (d *Dispatcher) updateInvestmentCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) < 2 {
		return d.usage(req, i18n.UsageUpdateInvestment), nil
	}
	f, err := command.ExtractValueUpdate(req.args)
	if err != nil {
		return Reply{}, err
	}
	return d.updateInvestment(ctx, req, f)
}

func (d *Dispatcher) updateInvestment(ctx context.Context, req *request, f command.ValueUpdateFields) (Reply, error) {
	inv, err := findAs[types.Investment](ctx, d, req, types.EntityInvestment, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	inv, err = d.store.Investments().UpdateCurrentValue(ctx, req.userID(), inv.InvestmentID, f.Value)
	if err != nil {
		return Reply{}, fmt.Errorf("update investment: %w", err)
	}
	req.log.Info("investment updated", zap.Int64("id", inv.InvestmentID), zap.String("value", f.Value.String()))
	return text(i18n.F(req.lang, i18n.InvestmentUpdated,
		inv.Name, money(req.lang, inv.Value()), money(req.lang, inv.Return()), percent(req.lang, inv.ReturnPercent()))), nil
}

func (d *Dispatcher) contributeCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) < 2 {
		return d.usage(req, i18n.UsageContribute), nil
	}
	f, err := command.ExtractContribution(req.args, req.today)
	if err != nil {
		return Reply{}, err
	}
	return d.contribute(ctx, req, f)
}

// contribute adds money to an investment, raising its invested amount.
func (d *Dispatcher) contribute(ctx context.Context, req *request, f command.ContributionFields) (Reply, error) {
	inv, err := findAs[types.Investment](ctx, d, req, types.EntityInvestment, f.Investment)
	if err != nil {
		return Reply{}, err
	}
	c, inv, err := d.store.Investments().AddContribution(ctx, req.userID(), types.Contribution{
		InvestmentID: inv.InvestmentID,
		Amount:       f.Amount,
		Date:         f.Date,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("add contribution: %w", err)
	}
	req.log.Info("contribution added",
		zap.Int64("id", c.ContributionID),
		zap.Int64("investment_id", inv.InvestmentID),
		zap.String("amount", c.Amount.String()))
	return text(i18n.F(req.lang, i18n.ContributionAdded,
		inv.Name, money(req.lang, c.Amount), date(c.Date), money(req.lang, inv.Amount))), nil
}

func (d *Dispatcher) listContributions(ctx context.Context, req *request, identifier string) (Reply, error) {
	if identifier == "" {
		return Reply{}, &command.ExtractionError{Reason: command.ReasonMissingIdentifier}
	}
	inv, err := findAs[types.Investment](ctx, d, req, types.EntityInvestment, identifier)
	if err != nil {
		return Reply{}, err
	}
	cs, err := d.store.Investments().Contributions(ctx, req.userID(), inv.InvestmentID)
	if err != nil {
		return Reply{}, fmt.Errorf("list contributions: %w", err)
	}
	if len(cs) == 0 {
		return text(i18n.F(req.lang, i18n.NoContributions, inv.Name)), nil
	}
	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.ContributionsHeader, inv.Name))
	for _, c := range cs {
		writeContribution(&b, req.lang, c)
	}
	return text(b.String()), nil
}

func writeContribution(b *strings.Builder, lang types.Language, c types.Contribution) {
	b.WriteString(i18n.F(lang, i18n.ContributionLine, c.ContributionID, date(c.Date), money(lang, c.Amount)))
}

func (d *Dispatcher) viewContribution(ctx context.Context, req *request, identifier string) (Reply, error) {
	c, err := findAs[types.Contribution](ctx, d, req, types.EntityContribution, identifier)
	if err != nil {
		return Reply{}, err
	}
	var b strings.Builder
	writeContribution(&b, req.lang, c)
	return text(strings.TrimSpace(b.String())), nil
}
