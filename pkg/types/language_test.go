package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		tag  string
		want Language
	}{
		{"", Portuguese},
		{"pt", Portuguese},
		{"pt-BR", Portuguese},
		{"en", English},
		{"en-US", English},
		{"EN-gb", English},
		{"es-ES", Portuguese},
		{"fr", Portuguese},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLanguage(tt.tag))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	lang, ok := ParseLanguage("EN")
	assert.True(t, ok)
	assert.Equal(t, English, lang)

	lang, ok = ParseLanguage("pt")
	assert.True(t, ok)
	assert.Equal(t, Portuguese, lang)

	_, ok = ParseLanguage("es")
	assert.False(t, ok)
}

func TestLanguageString(t *testing.T) {
	assert.Equal(t, "pt", Portuguese.String())
	assert.Equal(t, "en", English.String())
	assert.Len(t, Languages, int(LanguageCount))
}

func TestEntityTypeString(t *testing.T) {
	assert.Equal(t, "keyResult", EntityKeyResult.String())
	assert.Equal(t, "none", EntityNone.String())
	assert.Equal(t, "unknown", EntityTypeCount.String())
}
