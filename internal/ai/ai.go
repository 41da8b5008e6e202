// Package ai categorizes transactions and writes spending insights. Every
// failure degrades to a fallback: category "Other" and no insight.
package ai

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// FallbackCategory is used whenever categorization fails.
const FallbackCategory = "Other"

var (
	expenseCategories = []string{
		"Food", "Transport", "Shopping", "Bills", "Entertainment",
		"Health", "Education", "Travel", FallbackCategory,
	}
	incomeCategories = []string{
		"Salary", "Freelance", "Investments", "Gift", "Refund", FallbackCategory,
	}
)

// Service is the AI collaborator used by the bot.
type Service interface {
	// Categorize returns a member of Categories(kind), never an error.
	Categorize(ctx context.Context, kind types.EntityType, description string) string
	// Insight returns a short comment on the spending, or false when none
	// could be produced.
	Insight(ctx context.Context, s Spending) (string, bool)
}

// Spending summarizes a month of expenses for Insight.
type Spending struct {
	Total      decimal.Decimal
	ByCategory []types.CategoryTotal
	Language   types.Language
}

// Categories returns the closed category set for an entry kind.
func Categories(kind types.EntityType) []string {
	var src []string
	if kind == types.EntityIncome {
		src = incomeCategories
	} else {
		src = expenseCategories
	}
	return append([]string(nil), src...)
}

// normalizeCategory maps a model answer onto the closed set, ignoring case
// and surrounding punctuation, or returns FallbackCategory.
func normalizeCategory(kind types.EntityType, answer string) string {
	answer = strings.Trim(strings.TrimSpace(answer), ".\"'`")
	for _, c := range Categories(kind) {
		if strings.EqualFold(c, answer) {
			return c
		}
	}
	return FallbackCategory
}

// Static is the Service used without an API key.
type Static struct{}

var _ Service = Static{}

func (Static) Categorize(context.Context, types.EntityType, string) string { return FallbackCategory }

func (Static) Insight(context.Context, Spending) (string, bool) { return "", false }
