package command

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

var today = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireReason(t *testing.T, err error, want Reason) {
	t.Helper()
	var xe *ExtractionError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, want, xe.Reason)
}

func TestExtractEntryAcceptsBothSeparators(t *testing.T) {
	for _, raw := range []string{"50,00", "50.00"} {
		t.Run(raw, func(t *testing.T) {
			f, err := ExtractEntry([]string{raw})
			require.NoError(t, err)
			assert.True(t, f.Amount.Equal(dec("50")), "got %s", f.Amount)
			assert.Empty(t, f.Description)
		})
	}
}

func TestExtractEntry(t *testing.T) {
	f, err := ExtractEntry([]string{"uber", "eats", "25,5"})
	require.NoError(t, err)
	assert.Equal(t, "uber eats", f.Description)
	assert.True(t, f.Amount.Equal(dec("25.5")))

	f, err = ExtractEntry([]string{"1234.56"})
	require.NoError(t, err)
	assert.True(t, f.Amount.Equal(dec("1234.56")))

	f, err = ExtractEntry([]string{"1234,56"})
	require.NoError(t, err)
	assert.True(t, f.Amount.Equal(dec("1234.56")))
}

func TestExtractEntryRejectsBadAmounts(t *testing.T) {
	tests := [][]string{
		nil,
		{"uber", "0"},
		{"uber", "0,00"},
		{"uber", "-5"},
		{"uber", "R$50"},
		{"uber", "1.234,56"},
		{"uber", "fifty"},
		{"50", "uber"},
	}
	for _, args := range tests {
		t.Run(Join(args), func(t *testing.T) {
			_, err := ExtractEntry(args)
			requireReason(t, err, ReasonInvalidAmount)
		})
	}
}

func TestExtractShorthand(t *testing.T) {
	f, err := ExtractShorthand([]string{"50,00", "Coffee", "at", "Starbucks"})
	require.NoError(t, err)
	assert.True(t, f.Amount.Equal(dec("50")))
	assert.Equal(t, "Coffee at Starbucks", f.Description)

	_, err = ExtractShorthand([]string{"R$50", "lunch"})
	requireReason(t, err, ReasonInvalidAmount)

	_, err = ExtractShorthand([]string{"0", "lunch"})
	requireReason(t, err, ReasonInvalidAmount)

	_, err = ExtractShorthand([]string{"lunch", "50"})
	requireReason(t, err, ReasonInvalidAmount)

	_, err = ExtractShorthand([]string{"50"})
	requireReason(t, err, ReasonMissingNameOrType)
}

func TestExtractInvestment(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantName    string
		wantType    string
		wantAmount  string
		wantCurrent string
		wantDate    string
		wantHasDate bool
		wantNotes   string
	}{
		{
			name:       "name type amount",
			args:       []string{"reserva", "de", "emergencia", "CDB", "1000"},
			wantName:   "reserva de emergencia",
			wantType:   "CDB",
			wantAmount: "1000",
			wantDate:   "2025-03-10",
		},
		{
			name:        "two numbers scan from the end",
			args:        []string{"Tesouro", "Direto", "RendaFixa", "1000", "13200"},
			wantName:    "Tesouro Direto",
			wantType:    "RendaFixa",
			wantAmount:  "13200",
			wantCurrent: "1000",
			wantDate:    "2025-03-10",
		},
		{
			name:       "quoted name with comma decimal",
			args:       []string{"reserva de emergencia", "CDB", "84203,72"},
			wantName:   "reserva de emergencia",
			wantType:   "CDB",
			wantAmount: "84203.72",
			wantDate:   "2025-03-10",
		},
		{
			name:        "date and notes",
			args:        []string{"Bitcoin", "Crypto", "1000.00", "2024-01-15", "long", "term"},
			wantName:    "Bitcoin",
			wantType:    "Crypto",
			wantAmount:  "1000",
			wantDate:    "2024-01-15",
			wantHasDate: true,
			wantNotes:   "long term",
		},
		{
			name:       "digits inside the name stop the run",
			args:       []string{"Tesouro", "2029", "IPCA", "500"},
			wantName:   "Tesouro 2029",
			wantType:   "IPCA",
			wantAmount: "500",
			wantDate:   "2025-03-10",
		},
		{
			name:       "currency symbol passes the lenient scan",
			args:       []string{"Fundo", "FII", "R$50"},
			wantName:   "Fundo",
			wantType:   "FII",
			wantAmount: "50",
			wantDate:   "2025-03-10",
		},
		{
			name:       "text after the amount without a date is ignored",
			args:       []string{"Fundo", "FII", "50", "extra"},
			wantName:   "Fundo",
			wantType:   "FII",
			wantAmount: "50",
			wantDate:   "2025-03-10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ExtractInvestment(tt.args, today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, f.Name)
			assert.Equal(t, tt.wantType, f.Type)
			assert.True(t, f.Amount.Equal(dec(tt.wantAmount)), "amount %s", f.Amount)
			if tt.wantCurrent == "" {
				assert.False(t, f.CurrentValue.Valid)
			} else {
				require.True(t, f.CurrentValue.Valid)
				assert.True(t, f.CurrentValue.Decimal.Equal(dec(tt.wantCurrent)))
			}
			assert.Equal(t, tt.wantDate, f.Date.Format(types.DateLayout))
			assert.Equal(t, tt.wantHasDate, f.HasDate)
			assert.Equal(t, tt.wantNotes, f.Notes)
		})
	}
}

func TestExtractInvestmentFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Reason
	}{
		{"no args", nil, ReasonInvalidAmount},
		{"no number", []string{"Bitcoin", "Crypto"}, ReasonInvalidAmount},
		{"zero amount", []string{"x", "CDB", "0"}, ReasonInvalidAmount},
		{"type only", []string{"CDB", "1000"}, ReasonMissingNameOrType},
		{"date before amount", []string{"2024-01-15", "Bitcoin", "Crypto", "1000"}, ReasonInvalidAmount},
		{"impossible date", []string{"Bitcoin", "Crypto", "1000", "2024-02-30"}, ReasonInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractInvestment(tt.args, today)
			requireReason(t, err, tt.want)
		})
	}
}

func TestExtractInvestmentLeapDay(t *testing.T) {
	f, err := ExtractInvestment([]string{"a", "b", "1", "2024-02-29"}, today)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", f.Date.Format(types.DateLayout))

	_, err = ExtractInvestment([]string{"a", "b", "1", "2025-02-29"}, today)
	requireReason(t, err, ReasonInvalidDate)
}

func TestExtractHabit(t *testing.T) {
	f, err := ExtractHabit([]string{"treino", "4x", "por", "semana"})
	require.NoError(t, err)
	assert.Equal(t, "treino", f.Name)
	assert.Equal(t, types.FrequencyWeekly, f.FrequencyType)
	assert.Equal(t, 4, f.FrequencyValue)

	f, err = ExtractHabit([]string{"agua", "diário"})
	require.NoError(t, err)
	assert.Equal(t, types.FrequencyDaily, f.FrequencyType)
	assert.Zero(t, f.FrequencyValue)

	f, err = ExtractHabit([]string{"read", "3", "times", "a", "WEEK"})
	require.NoError(t, err)
	assert.Equal(t, types.FrequencyWeekly, f.FrequencyType)
	assert.Equal(t, 3, f.FrequencyValue)

	_, err = ExtractHabit(nil)
	requireReason(t, err, ReasonMissingNameOrType)
}

func TestExtractHabitLog(t *testing.T) {
	f, err := ExtractHabitLog([]string{"agua", "2L"}, today)
	require.NoError(t, err)
	assert.Equal(t, "agua", f.Name)
	require.True(t, f.Value.Valid)
	assert.True(t, f.Value.Decimal.Equal(dec("2")))
	assert.Equal(t, "2025-03-10", f.Date.Format(types.DateLayout))
	assert.False(t, f.HasDate)

	f, err = ExtractHabitLog([]string{"treino", "2024-01-15"}, today)
	require.NoError(t, err)
	assert.False(t, f.Value.Valid)
	assert.Equal(t, "2024-01-15", f.Date.Format(types.DateLayout))
	assert.True(t, f.HasDate)

	f, err = ExtractHabitLog([]string{"agua", "2,5L", "2024-01-15"}, today)
	require.NoError(t, err)
	assert.True(t, f.Value.Decimal.Equal(dec("2.5")))
	assert.True(t, f.HasDate)

	f, err = ExtractHabitLog([]string{"treino", "bom"}, today)
	require.NoError(t, err)
	assert.False(t, f.Value.Valid)

	_, err = ExtractHabitLog([]string{"treino", "2024-13-01"}, today)
	requireReason(t, err, ReasonInvalidDate)

	_, err = ExtractHabitLog(nil, today)
	requireReason(t, err, ReasonMissingIdentifier)
}

func TestExtractKeyResult(t *testing.T) {
	f, err := ExtractKeyResult([]string{"1", "Metas", "planilha", "42"})
	require.NoError(t, err)
	assert.Equal(t, "1", f.Objective)
	assert.Equal(t, "Metas planilha", f.Title)
	require.True(t, f.Target.Valid)
	assert.True(t, f.Target.Decimal.Equal(dec("42")))

	f, err = ExtractKeyResult([]string{"saúde", "Ler livros"})
	require.NoError(t, err)
	assert.Equal(t, "saúde", f.Objective)
	assert.Equal(t, "Ler livros", f.Title)
	assert.False(t, f.Target.Valid)

	f, err = ExtractKeyResult([]string{"1", "42"})
	require.NoError(t, err)
	assert.Equal(t, "42", f.Title)
	assert.False(t, f.Target.Valid)

	_, err = ExtractKeyResult([]string{"1"})
	requireReason(t, err, ReasonMissingNameOrType)

	_, err = ExtractKeyResult(nil)
	requireReason(t, err, ReasonMissingIdentifier)
}

func TestExtractContribution(t *testing.T) {
	f, err := ExtractContribution([]string{"Tesouro", "Direto", "500"}, today)
	require.NoError(t, err)
	assert.Equal(t, "Tesouro Direto", f.Investment)
	assert.True(t, f.Amount.Equal(dec("500")))
	assert.Equal(t, "2025-03-10", f.Date.Format(types.DateLayout))

	f, err = ExtractContribution([]string{"7", "500,50", "2024-03-01"}, today)
	require.NoError(t, err)
	assert.Equal(t, "7", f.Investment)
	assert.True(t, f.Amount.Equal(dec("500.5")))
	assert.True(t, f.HasDate)

	_, err = ExtractContribution([]string{"500"}, today)
	requireReason(t, err, ReasonMissingIdentifier)

	_, err = ExtractContribution([]string{"x", "abc"}, today)
	requireReason(t, err, ReasonInvalidAmount)

	_, err = ExtractContribution([]string{"x", "-3"}, today)
	requireReason(t, err, ReasonInvalidAmount)
}

func TestExtractValueUpdate(t *testing.T) {
	f, err := ExtractValueUpdate([]string{"1", "1200.00"})
	require.NoError(t, err)
	assert.Equal(t, "1", f.Identifier)
	assert.True(t, f.Value.Equal(dec("1200")))

	f, err = ExtractValueUpdate([]string{"reserva", "de", "emergencia", "0"})
	require.NoError(t, err)
	assert.Equal(t, "reserva de emergencia", f.Identifier)
	assert.True(t, f.Value.IsZero())

	_, err = ExtractValueUpdate([]string{"1", "-1"})
	requireReason(t, err, ReasonInvalidValue)

	_, err = ExtractValueUpdate([]string{"1200"})
	requireReason(t, err, ReasonMissingIdentifier)
}

func TestExtractTextUpdateAndLink(t *testing.T) {
	f, err := ExtractTextUpdate([]string{"3", "2/52"})
	require.NoError(t, err)
	assert.Equal(t, TextUpdateFields{Identifier: "3", Text: "2/52"}, f)

	_, err = ExtractTextUpdate([]string{"3"})
	requireReason(t, err, ReasonMissingNameOrType)

	l, err := ExtractLink([]string{"treino", "Treinar", "4x"})
	require.NoError(t, err)
	assert.Equal(t, LinkFields{Habit: "treino", Action: "Treinar 4x"}, l)

	_, err = ExtractLink([]string{"treino"})
	requireReason(t, err, ReasonMissingIdentifier)

	_, err = ExtractTitle([]string{})
	requireReason(t, err, ReasonMissingNameOrType)
}

func TestExtractFollowsClassification(t *testing.T) {
	fields, err := Extract(Parse("50 coffee beans", types.English), today)
	require.NoError(t, err)
	entry := fields.(EntryFields)
	assert.Equal(t, "coffee beans", entry.Description)
	assert.True(t, entry.Amount.Equal(dec("50")))

	fields, err = Extract(Parse("add expense uber 25", types.English), today)
	require.NoError(t, err)
	entry = fields.(EntryFields)
	assert.Equal(t, "uber", entry.Description)
	assert.True(t, entry.Amount.Equal(dec("25")))

	fields, err = Extract(Parse(`add investment "reserva de emergencia" CDB 84203,72`, types.English), today)
	require.NoError(t, err)
	inv := fields.(InvestmentFields)
	assert.Equal(t, "reserva de emergencia", inv.Name)
	assert.Equal(t, "CDB", inv.Type)
	assert.True(t, inv.Amount.Equal(dec("84203.72")))
	assert.False(t, inv.CurrentValue.Valid)
	assert.Equal(t, "2025-03-10", inv.Date.Format(types.DateLayout))

	_, err = Extract(Parse("add uber", types.English), today)
	requireReason(t, err, ReasonMissingNameOrType)
}

func TestExtractionErrorIs(t *testing.T) {
	err := extractErr(ReasonInvalidAmount, "R$50")
	assert.ErrorIs(t, err, &ExtractionError{Reason: ReasonInvalidAmount})
	assert.NotErrorIs(t, err, &ExtractionError{Reason: ReasonInvalidDate})
	assert.Contains(t, err.Error(), "invalidAmount")
}
