// Package i18n holds the bot's reply texts in Portuguese and English.
//
// Texts are format strings indexed by Key and Language. Both languages of a
// key take the same arguments in the same order.
package i18n

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// Key identifies one reply text.
type Key uint16

// T returns the text for key in lang.
func T(lang types.Language, key Key) string {
	if key >= keyCount || lang >= types.LanguageCount {
		return ""
	}
	return catalog[key][lang]
}

// F formats the text for key in lang with args.
func F(lang types.Language, key Key, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

var entityNames = [types.EntityTypeCount][types.LanguageCount]string{
	types.EntityNone:         {types.English: "item", types.Portuguese: "item"},
	types.EntityExpense:      {types.English: "expense", types.Portuguese: "despesa"},
	types.EntityIncome:       {types.English: "income", types.Portuguese: "receita"},
	types.EntityInvestment:   {types.English: "investment", types.Portuguese: "investimento"},
	types.EntityHabit:        {types.English: "habit", types.Portuguese: "hábito"},
	types.EntityObjective:    {types.English: "objective", types.Portuguese: "objetivo"},
	types.EntityKeyResult:    {types.English: "key result", types.Portuguese: "resultado-chave"},
	types.EntityAction:       {types.English: "action", types.Portuguese: "ação"},
	types.EntityContribution: {types.English: "contribution", types.Portuguese: "contribuição"},
}

// EntityName returns the lower-case noun for entity.
func EntityName(entity types.EntityType, lang types.Language) string {
	if entity >= types.EntityTypeCount || lang >= types.LanguageCount {
		return entityNames[types.EntityNone][types.English]
	}
	return entityNames[entity][lang]
}

// EntityTitle returns EntityName with its first letter upper-cased.
func EntityTitle(entity types.EntityType, lang types.Language) string {
	name := EntityName(entity, lang)
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// listTargets is what follows the list alias to show each entity's IDs.
var listTargets = [types.EntityTypeCount][types.LanguageCount]string{
	types.EntityNone:         {types.English: "", types.Portuguese: ""},
	types.EntityExpense:      {types.English: "expense", types.Portuguese: "despesa"},
	types.EntityIncome:       {types.English: "income", types.Portuguese: "receita"},
	types.EntityInvestment:   {types.English: "investment", types.Portuguese: "investimento"},
	types.EntityHabit:        {types.English: "habit", types.Portuguese: "hábito"},
	types.EntityObjective:    {types.English: "okr", types.Portuguese: "okr"},
	types.EntityKeyResult:    {types.English: "okr", types.Portuguese: "okr"},
	types.EntityAction:       {types.English: "okr", types.Portuguese: "okr"},
	types.EntityContribution: {types.English: "contribution <investment>", types.Portuguese: "contribuição <investimento>"},
}

// ListCommand returns the command that lists entity with IDs, e.g.
// "/list okr".
func ListCommand(entity types.EntityType, lang types.Language) string {
	alias := "/list"
	if lang == types.Portuguese {
		alias = "/listar"
	}
	if entity >= types.EntityTypeCount || lang >= types.LanguageCount {
		return alias
	}
	return alias + " " + listTargets[entity][lang]
}

var ptMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthYear names a month, e.g. "March 2025" or "março de 2025".
func MonthYear(lang types.Language, year int, month time.Month) string {
	if lang == types.Portuguese && month >= time.January && month <= time.December {
		return fmt.Sprintf("%s de %d", ptMonths[month-1], year)
	}
	return fmt.Sprintf("%s %d", month, year)
}

// LanguageName names lang in lang itself.
func LanguageName(lang types.Language) string {
	if lang == types.English {
		return "English (en)"
	}
	return "Português (pt)"
}
