package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		lang         types.Language
		wantVerb     Verb
		wantEntity   types.EntityType
		wantArgs     []Token
		wantInferred bool
	}{
		{
			name:       "empty input",
			text:       "",
			lang:       types.English,
			wantVerb:   VerbUnknown,
			wantEntity: types.EntityNone,
		},
		{
			name:       "verb entity and identifier",
			text:       "delete kr peso",
			lang:       types.English,
			wantVerb:   VerbDelete,
			wantEntity: types.EntityKeyResult,
			wantArgs:   []Token{{2, "peso"}},
		},
		{
			name:       "portuguese verb entity and identifier",
			text:       "deletar rc peso",
			lang:       types.Portuguese,
			wantVerb:   VerbDelete,
			wantEntity: types.EntityKeyResult,
			wantArgs:   []Token{{2, "peso"}},
		},
		{
			name:       "bare entity defaults to list",
			text:       "despesas",
			lang:       types.Portuguese,
			wantVerb:   VerbList,
			wantEntity: types.EntityExpense,
		},
		{
			name:         "bare amount is an inferred expense",
			text:         "50 uber",
			lang:         types.Portuguese,
			wantVerb:     VerbList,
			wantEntity:   types.EntityExpense,
			wantArgs:     []Token{{0, "50"}, {1, "uber"}},
			wantInferred: true,
		},
		{
			name:         "verb then bare amount",
			text:         "adicionar 50,90 café",
			lang:         types.Portuguese,
			wantVerb:     VerbAdd,
			wantEntity:   types.EntityExpense,
			wantArgs:     []Token{{1, "50,90"}, {2, "café"}},
			wantInferred: true,
		},
		{
			name:       "quoted investment",
			text:       `add investment "reserva de emergencia" CDB 84203,72`,
			lang:       types.English,
			wantVerb:   VerbAdd,
			wantEntity: types.EntityInvestment,
			wantArgs:   []Token{{2, "reserva de emergencia"}, {3, "CDB"}, {4, "84203,72"}},
		},
		{
			name:       "no keyword keeps everything",
			text:       "uber eats",
			lang:       types.English,
			wantVerb:   VerbList,
			wantEntity: types.EntityNone,
			wantArgs:   []Token{{0, "uber"}, {1, "eats"}},
		},
		{
			name:       "currency symbol is not an amount",
			text:       "R$50 lunch",
			lang:       types.English,
			wantVerb:   VerbList,
			wantEntity: types.EntityNone,
			wantArgs:   []Token{{0, "R$50"}, {1, "lunch"}},
		},
		{
			name:       "zero is not an amount",
			text:       "0 lunch",
			lang:       types.English,
			wantVerb:   VerbList,
			wantEntity: types.EntityNone,
			wantArgs:   []Token{{0, "0"}, {1, "lunch"}},
		},
		{
			name:     "verb only",
			text:     "list",
			lang:     types.English,
			wantVerb: VerbList,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.text, tt.lang)
			assert.Equal(t, tt.wantVerb, cmd.Verb)
			assert.Equal(t, tt.wantEntity, cmd.Entity)
			if tt.wantArgs == nil {
				assert.Empty(t, cmd.Args)
			} else {
				assert.Equal(t, tt.wantArgs, cmd.Args)
			}
			assert.Equal(t, tt.wantInferred, cmd.Inferred)
			assert.Equal(t, tt.text, cmd.Original)
		})
	}
}

func TestClassifyMarksDefaultedVerb(t *testing.T) {
	cmd := Parse("50 uber", types.Portuguese)
	assert.Equal(t, VerbList, cmd.Verb)
	assert.True(t, cmd.VerbDefaulted)
	assert.True(t, cmd.Inferred)

	cmd = Parse("listar 50 uber", types.Portuguese)
	assert.Equal(t, VerbList, cmd.Verb)
	assert.False(t, cmd.VerbDefaulted)

	cmd = ParseAs(VerbList, "50 uber", types.Portuguese)
	assert.False(t, cmd.VerbDefaulted)

	assert.False(t, Parse("", types.English).VerbDefaulted)
}

func TestClassifyTokens(t *testing.T) {
	cmd := Classify([]string{"add", "reserva de emergencia"}, types.English)
	assert.Equal(t, VerbAdd, cmd.Verb)
	assert.Equal(t, types.EntityNone, cmd.Entity)
	assert.Equal(t, []string{"reserva de emergencia"}, cmd.ArgValues())
	assert.Equal(t, `add "reserva de emergencia"`, cmd.Original)

	empty := Classify(nil, types.Portuguese)
	assert.Equal(t, VerbUnknown, empty.Verb)
	assert.Equal(t, types.EntityNone, empty.Entity)
}

func TestParseAsKeepsVerb(t *testing.T) {
	cmd := ParseAs(VerbAdd, "despesa mercado 50", types.Portuguese)
	assert.Equal(t, VerbAdd, cmd.Verb)
	assert.Equal(t, types.EntityExpense, cmd.Entity)
	assert.Equal(t, []string{"mercado", "50"}, cmd.ArgValues())

	// A verb word after the alias is an argument, not a second verb.
	cmd = ParseAs(VerbDelete, "add", types.English)
	assert.Equal(t, VerbDelete, cmd.Verb)
	assert.Equal(t, []string{"add"}, cmd.ArgValues())

	cmd = ParseAs(VerbList, "", types.English)
	assert.Equal(t, VerbList, cmd.Verb)
	assert.Empty(t, cmd.Args)
}
