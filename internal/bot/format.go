package bot

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

const displayDate = "02/01/2006"

// money renders d as Brazilian reais with two decimals. Portuguese uses a
// decimal comma.
func money(lang types.Language, d decimal.Decimal) string {
	return "R$ " + localize(lang, d.StringFixed(2))
}

// number renders d without trailing zeros.
func number(lang types.Language, d decimal.Decimal) string {
	return localize(lang, d.String())
}

// percent renders d with one decimal place and no sign.
func percent(lang types.Language, d decimal.Decimal) string {
	return localize(lang, d.StringFixed(1))
}

func localize(lang types.Language, s string) string {
	if lang == types.Portuguese {
		return strings.Replace(s, ".", ",", 1)
	}
	return s
}

func date(t time.Time) string {
	return t.Format(displayDate)
}

// share returns part as a percentage of whole.
func share(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).Div(whole)
}

var habitEmoji = []struct {
	word  string
	emoji string
}{
	{"treino", "🏋️"},
	{"treinar", "🏋️"},
	{"ler", "📚"},
	{"leitura", "📚"},
	{"agua", "💧"},
	{"água", "💧"},
	{"sono", "😴"},
	{"sleep", "😴"},
}

// emojiFor picks an emoji for a habit by the first known word its name
// contains.
func emojiFor(name string) string {
	lower := strings.ToLower(name)
	for _, e := range habitEmoji {
		if strings.Contains(lower, e.word) {
			return e.emoji
		}
	}
	return "✅"
}
