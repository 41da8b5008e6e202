package types

import "strings"

// Language is a natural language the bot speaks.
// Values index per-language tables, so they are dense and start at zero.
type Language uint8

// Supported languages. Portuguese is the zero value and the default.
const (
	Portuguese Language = iota
	English

	// LanguageCount is the number of supported languages. It sizes the
	// keyword and message tables.
	LanguageCount
)

// Languages lists every supported language in table order.
var Languages = []Language{Portuguese, English}

// String returns the two-letter code persisted for the language.
func (l Language) String() string {
	switch l {
	case English:
		return "en"
	default:
		return "pt"
	}
}

// ParseLanguage returns the language for an exact two-letter code.
func ParseLanguage(code string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "pt":
		return Portuguese, true
	case "en":
		return English, true
	}
	return Portuguese, false
}

// NormalizeLanguage maps a client language tag such as "pt-BR" or "en-US"
// to a supported language. Anything that is not English is Portuguese.
func NormalizeLanguage(tag string) Language {
	if tag == "" {
		return Portuguese
	}
	base, _, _ := strings.Cut(strings.ToLower(tag), "-")
	if base == "en" {
		return English
	}
	return Portuguese
}
