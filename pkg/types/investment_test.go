package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvestmentValue(t *testing.T) {
	inv := Investment{Amount: decimal.RequireFromString("1000")}
	assert.True(t, inv.Value().Equal(decimal.RequireFromString("1000")))
	assert.True(t, inv.Return().IsZero())

	inv.CurrentValue = decimal.NewNullDecimal(decimal.RequireFromString("1100"))
	assert.True(t, inv.Value().Equal(decimal.RequireFromString("1100")))
	assert.Equal(t, "100", inv.Return().String())
	assert.Equal(t, "10", inv.ReturnPercent().String())
}

func TestInvestmentTotalsReturnPercent(t *testing.T) {
	totals := InvestmentTotals{
		Invested: decimal.RequireFromString("300"),
		Value:    decimal.RequireFromString("290"),
	}
	assert.Equal(t, "-10", totals.Return().String())
	assert.Equal(t, "-3.33", totals.ReturnPercent().String())

	assert.True(t, InvestmentTotals{}.ReturnPercent().IsZero())
}

func TestKeyResultPercent(t *testing.T) {
	kr := KeyResult{TargetValue: decimal.NewNullDecimal(decimal.NewFromInt(52))}
	_, ok := kr.Percent()
	assert.False(t, ok)

	kr.CurrentValue = decimal.NewNullDecimal(decimal.NewFromInt(13))
	pct, ok := kr.Percent()
	assert.True(t, ok)
	assert.Equal(t, "25", pct.String())
}
