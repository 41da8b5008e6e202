package i18n

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var verbPattern = regexp.MustCompile(`%%|%[-+# 0-9.]*[a-zA-Z]`)

func verbs(s string) []string {
	var out []string
	for _, v := range verbPattern.FindAllString(s, -1) {
		if v != "%%" {
			out = append(out, v)
		}
	}
	return out
}

func TestCatalogComplete(t *testing.T) {
	for key := Key(0); key < keyCount; key++ {
		en := T(types.English, key)
		pt := T(types.Portuguese, key)
		require.NotEmpty(t, en, "key %d has no English text", key)
		require.NotEmpty(t, pt, "key %d has no Portuguese text", key)
		assert.Equal(t, verbs(en), verbs(pt), "key %d takes different arguments per language", key)
	}
}

func TestTOutOfRange(t *testing.T) {
	assert.Empty(t, T(types.English, keyCount))
	assert.Empty(t, T(types.LanguageCount, PleaseStart))
}

func TestF(t *testing.T) {
	assert.Equal(t, "✅ Language set to English (en)", F(types.English, LanguageSet, LanguageName(types.English)))
	assert.Equal(t, "  • Food: R$ 10.00 (50.0%)\n", F(types.English, CategoryShare, "Food", "R$ 10.00", "50.0"))
	assert.Equal(t,
		"❌ Resultado-chave \"peso\" não encontrado(a). Use /listar okr para ver os IDs.",
		F(types.Portuguese, NotFound, EntityTitle(types.EntityKeyResult, types.Portuguese), "peso", ListCommand(types.EntityKeyResult, types.Portuguese)))
}

func TestEntityNames(t *testing.T) {
	for _, lang := range types.Languages {
		for e := types.EntityType(0); e < types.EntityTypeCount; e++ {
			assert.NotEmpty(t, EntityName(e, lang))
		}
	}
	assert.Equal(t, "Ação", EntityTitle(types.EntityAction, types.Portuguese))
	assert.Equal(t, "Key result", EntityTitle(types.EntityKeyResult, types.English))
	assert.Equal(t, "item", EntityName(types.EntityTypeCount, types.English))
}

func TestListCommand(t *testing.T) {
	assert.Equal(t, "/list okr", ListCommand(types.EntityKeyResult, types.English))
	assert.Equal(t, "/listar okr", ListCommand(types.EntityAction, types.Portuguese))
	assert.Equal(t, "/list expense", ListCommand(types.EntityExpense, types.English))
	assert.Equal(t, "/listar hábito", ListCommand(types.EntityHabit, types.Portuguese))
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "March 2025", MonthYear(types.English, 2025, time.March))
	assert.Equal(t, "março de 2025", MonthYear(types.Portuguese, 2025, time.March))
	assert.Equal(t, "dezembro de 2024", MonthYear(types.Portuguese, 2024, time.December))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English (en)", LanguageName(types.English))
	assert.Equal(t, "Português (pt)", LanguageName(types.Portuguese))
}
