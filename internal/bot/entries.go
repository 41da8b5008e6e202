package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/ai"
	"github.com/mesh-intelligence/diindiin/internal/command"
	"github.com/mesh-intelligence/diindiin/internal/i18n"
	"github.com/mesh-intelligence/diindiin/internal/report"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// addEntry stores an expense or income dated today, categorized by the AI
// service.
func (d *Dispatcher) addEntry(ctx context.Context, req *request, kind types.EntityType, f command.EntryFields) (Reply, error) {
	category := d.ai.Categorize(ctx, kind, f.Description)
	e, err := d.store.Entries().Create(ctx, types.Entry{
		UserID:      req.userID(),
		Kind:        kind,
		Amount:      f.Amount,
		Description: f.Description,
		Category:    category,
		Date:        req.today,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("create %s: %w", kind, err)
	}
	req.log.Info("entry added",
		zap.Stringer("kind", kind),
		zap.Int64("id", e.EntryID),
		zap.String("amount", e.Amount.String()),
		zap.String("category", e.Category))

	key := i18n.ExpenseAdded
	if kind == types.EntityIncome {
		key = i18n.IncomeAdded
	}
	return text(i18n.F(req.lang, key, money(req.lang, e.Amount), e.Description, e.Category)), nil
}

// income handles /income <amount> <description>.
func (d *Dispatcher) income(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return d.usage(req, i18n.UsageIncome), nil
	}
	f, err := command.ExtractShorthand(req.args)
	if isReason(err, command.ReasonMissingNameOrType) {
		return d.usage(req, i18n.UsageIncome), nil
	}
	if err != nil {
		return Reply{}, err
	}
	return d.addEntry(ctx, req, types.EntityIncome, f)
}

// listEntries lists this month's entries of kind with their IDs.
func (d *Dispatcher) listEntries(ctx context.Context, req *request, kind types.EntityType) (Reply, error) {
	year, month := req.today.Year(), req.today.Month()
	entries, err := d.store.Entries().ListByMonth(ctx, kind, req.userID(), year, month)
	if err != nil {
		return Reply{}, fmt.Errorf("list %s: %w", kind, err)
	}

	header, empty := i18n.ExpensesHeader, i18n.NoExpenses
	if kind == types.EntityIncome {
		header, empty = i18n.IncomesHeader, i18n.NoIncomes
	}
	if len(entries) == 0 {
		return d.usage(req, empty), nil
	}

	var b strings.Builder
	b.WriteString(i18n.F(req.lang, header, i18n.MonthYear(req.lang, year, month)))
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
		b.WriteString(i18n.F(req.lang, i18n.EntryLine,
			e.EntryID, date(e.Date), money(req.lang, e.Amount), e.Description, e.Category))
	}
	b.WriteString(i18n.F(req.lang, i18n.TotalLine, money(req.lang, total), len(entries)))
	return text(b.String()), nil
}

func (d *Dispatcher) viewEntry(ctx context.Context, req *request, kind types.EntityType, identifier string) (Reply, error) {
	e, err := findAs[types.Entry](ctx, d, req, kind, identifier)
	if err != nil {
		return Reply{}, err
	}
	return text(i18n.F(req.lang, i18n.EntryDetail,
		i18n.EntityTitle(kind, req.lang), e.EntryID,
		money(req.lang, e.Amount), e.Description, e.Category, date(e.Date))), nil
}

func (d *Dispatcher) updateEntryAmount(ctx context.Context, req *request, kind types.EntityType, f command.ValueUpdateFields) (Reply, error) {
	if !f.Value.IsPositive() {
		return Reply{}, &command.ExtractionError{Reason: command.ReasonInvalidAmount, Token: f.Value.String()}
	}
	e, err := findAs[types.Entry](ctx, d, req, kind, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	e, err = d.store.Entries().UpdateAmount(ctx, kind, req.userID(), e.EntryID, f.Value)
	if err != nil {
		return Reply{}, fmt.Errorf("update %s amount: %w", kind, err)
	}
	return d.entryUpdated(req, e), nil
}

func (d *Dispatcher) updateEntryDescription(ctx context.Context, req *request, kind types.EntityType, f command.TextUpdateFields) (Reply, error) {
	e, err := findAs[types.Entry](ctx, d, req, kind, f.Identifier)
	if err != nil {
		return Reply{}, err
	}
	e, err = d.store.Entries().UpdateDescription(ctx, kind, req.userID(), e.EntryID, f.Text)
	if err != nil {
		return Reply{}, fmt.Errorf("update %s description: %w", kind, err)
	}
	return d.entryUpdated(req, e), nil
}

func (d *Dispatcher) entryUpdated(req *request, e types.Entry) Reply {
	req.log.Info("entry updated", zap.Stringer("kind", e.Kind), zap.Int64("id", e.EntryID))
	return text(i18n.F(req.lang, i18n.EntryUpdated,
		i18n.EntityTitle(e.Kind, req.lang), e.EntryID, money(req.lang, e.Amount), e.Description))
}

// report summarizes this month's expenses by category and appends an AI
// insight when one is available.
func (d *Dispatcher) report(ctx context.Context, req *request) (Reply, error) {
	year, month := req.today.Year(), req.today.Month()
	cats, err := d.store.Entries().TotalsByCategory(ctx, types.EntityExpense, req.userID(), year, month)
	if err != nil {
		return Reply{}, fmt.Errorf("expense totals: %w", err)
	}
	if len(cats) == 0 {
		return d.usage(req, i18n.NoExpenses), nil
	}

	total, count := decimal.Zero, 0
	for _, c := range cats {
		total = total.Add(c.Total)
		count += c.Count
	}

	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.ReportHeader,
		i18n.MonthYear(req.lang, year, month), money(req.lang, total), count))
	for _, c := range cats {
		b.WriteString(i18n.F(req.lang, i18n.CategoryShare,
			c.Category, money(req.lang, c.Total), percent(req.lang, share(c.Total, total))))
	}
	insight, ok := d.ai.Insight(ctx, ai.Spending{Total: total, ByCategory: cats, Language: req.lang})
	if ok {
		b.WriteString(i18n.F(req.lang, i18n.Insight, insight))
	}
	return text(b.String()), nil
}

// reportCSV exports this month's incomes and expenses as a CSV document.
func (d *Dispatcher) reportCSV(ctx context.Context, req *request) (Reply, error) {
	m, err := report.Build(ctx, d.store.Entries(), req.userID(), req.today.Year(), req.today.Month())
	if err != nil {
		return Reply{}, err
	}
	if m.Empty() {
		return d.usage(req, i18n.NoTransactions), nil
	}
	data, err := m.CSV()
	if err != nil {
		return Reply{}, err
	}
	name := m.FileName()
	req.log.Info("report exported", zap.String("file", name), zap.Int("bytes", len(data)))
	return Reply{
		Text:     i18n.F(req.lang, i18n.ReportCSV, name),
		Document: &Document{Name: name, Data: data},
	}, nil
}

func (d *Dispatcher) categories(ctx context.Context, req *request) (Reply, error) {
	year, month := req.today.Year(), req.today.Month()
	cats, err := d.store.Entries().TotalsByCategory(ctx, types.EntityExpense, req.userID(), year, month)
	if err != nil {
		return Reply{}, fmt.Errorf("expense totals: %w", err)
	}
	if len(cats) == 0 {
		return d.usage(req, i18n.NoExpenses), nil
	}
	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.CategoriesHeader, i18n.MonthYear(req.lang, year, month)))
	for _, c := range cats {
		b.WriteString(i18n.F(req.lang, i18n.CategoryCount, c.Category, money(req.lang, c.Total), c.Count))
	}
	return text(b.String()), nil
}

// incomes summarizes this month's incomes by category.
func (d *Dispatcher) incomes(ctx context.Context, req *request) (Reply, error) {
	year, month := req.today.Year(), req.today.Month()
	cats, err := d.store.Entries().TotalsByCategory(ctx, types.EntityIncome, req.userID(), year, month)
	if err != nil {
		return Reply{}, fmt.Errorf("income totals: %w", err)
	}
	if len(cats) == 0 {
		return d.usage(req, i18n.NoIncomes), nil
	}
	total, count := decimal.Zero, 0
	for _, c := range cats {
		total = total.Add(c.Total)
		count += c.Count
	}
	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.IncomesReport,
		i18n.MonthYear(req.lang, year, month), money(req.lang, total), count))
	for _, c := range cats {
		b.WriteString(i18n.F(req.lang, i18n.CategoryShare,
			c.Category, money(req.lang, c.Total), percent(req.lang, share(c.Total, total))))
	}
	return text(b.String()), nil
}
