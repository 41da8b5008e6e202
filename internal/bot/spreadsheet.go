package bot

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/i18n"
	"github.com/mesh-intelligence/diindiin/internal/report"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// ownerName is the name printed on a user's spreadsheet.
func ownerName(u types.User) string {
	switch {
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	}
	return "User"
}

// spreadsheet exports this year's OKRs, habits, incomes, expenses, and
// investments as one CSV document.
func (d *Dispatcher) spreadsheet(ctx context.Context, req *request) (Reply, error) {
	y, err := report.BuildYearly(ctx, d.store, req.userID(), ownerName(req.user), req.today.Year())
	if err != nil {
		return Reply{}, err
	}
	data, err := y.CSV()
	if err != nil {
		return Reply{}, err
	}
	name := y.FileName()
	req.log.Info("spreadsheet exported", zap.String("file", name), zap.Int("bytes", len(data)))
	return Reply{
		Text:     i18n.F(req.lang, i18n.SpreadsheetGenerated, name),
		Document: &Document{Name: name, Data: data},
	}, nil
}

// viewSpreadsheet previews the spreadsheet as text: the OKR tree, this
// month's balance, the investment totals, and the habit review.
func (d *Dispatcher) viewSpreadsheet(ctx context.Context, req *request) (Reply, error) {
	year, month := req.today.Year(), req.today.Month()
	y, err := report.BuildYearly(ctx, d.store, req.userID(), ownerName(req.user), year)
	if err != nil {
		return Reply{}, err
	}
	income, err := d.store.Entries().TotalByMonth(ctx, types.EntityIncome, req.userID(), year, month)
	if err != nil {
		return Reply{}, fmt.Errorf("income total: %w", err)
	}
	expenses, err := d.store.Entries().TotalByMonth(ctx, types.EntityExpense, req.userID(), year, month)
	if err != nil {
		return Reply{}, fmt.Errorf("expense total: %w", err)
	}

	lang := req.lang
	var b strings.Builder
	b.WriteString(i18n.F(lang, i18n.SpreadsheetHeader, y.Owner))
	if len(y.OKRs) > 0 {
		b.WriteString(i18n.T(lang, i18n.SpreadsheetOKRs))
		for _, o := range y.OKRs {
			b.WriteString(i18n.F(lang, i18n.SpreadsheetObjective, o.Objective.Title))
			for _, kr := range o.KeyResults {
				b.WriteString(i18n.F(lang, i18n.SpreadsheetKeyResult, kr.KeyResult.Title))
				for _, a := range kr.Actions {
					b.WriteString(i18n.F(lang, i18n.SpreadsheetAction, a.Description))
					if a.Progress != "" {
						b.WriteString(i18n.F(lang, i18n.ProgressSuffix, a.Progress))
					}
					b.WriteString("\n")
				}
			}
		}
	}
	b.WriteString(i18n.F(lang, i18n.SpreadsheetFinancial,
		money(lang, income),
		money(lang, expenses),
		money(lang, income.Sub(expenses)),
		money(lang, y.Totals.Invested),
		money(lang, y.Totals.Value)))
	if len(y.Habits) > 0 {
		b.WriteString(i18n.F(lang, i18n.SpreadsheetHabits, year))
		for _, h := range y.Habits {
			b.WriteString(i18n.F(lang, i18n.SpreadsheetHabitLine, h.Habit.Name, h.Count))
		}
	}
	return text(b.String()), nil
}
