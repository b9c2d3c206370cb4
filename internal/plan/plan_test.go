package plan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/payoff/internal/downpayment"
	"github.com/cleared-dev/payoff/internal/model"
)

var now = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func TestCompute_ReferenceWithExtra(t *testing.T) {
	res := Compute(model.LoanParameters{
		Principal:           300000,
		AnnualRatePercent:   6.85,
		TermYears:           30,
		ExtraMonthlyPayment: 500,
	}, now)

	require.False(t, res.Insufficient())
	assert.True(t, res.HasSavings())
	assert.Less(t, res.Comparison.Accelerated.PayoffMonths, 360)
	assert.Len(t, res.Comparison.Series, 30)
	assert.Equal(t, 360-res.Comparison.Accelerated.PayoffMonths, res.Savings.MonthsSaved)
}

func TestCompute_NoExtra(t *testing.T) {
	res := Compute(model.LoanParameters{Principal: 300000, AnnualRatePercent: 6.85, TermYears: 30}, now)

	assert.False(t, res.HasSavings())
	assert.Zero(t, res.Savings.MonthsSaved)
	assert.Equal(t, res.Comparison.Standard, res.Comparison.Accelerated)
}

func TestCompute_Insufficient(t *testing.T) {
	res := Compute(model.LoanParameters{Principal: 300000, TermYears: 30}, now)

	assert.True(t, res.Insufficient())
	assert.False(t, res.HasSavings())
	assert.Empty(t, res.Comparison.Series)
}

func TestCompute_OutOfRangeTerm(t *testing.T) {
	for _, years := range []float64{20000, 1e300} {
		params := model.LoanParameters{Principal: 300000, AnnualRatePercent: 6.85, TermYears: years, ExtraMonthlyPayment: 500}

		var res Result
		require.NotPanics(t, func() { res = Compute(params, now) }, "years=%v", years)
		assert.True(t, res.Insufficient(), "years=%v", years)
		assert.Zero(t, res.Comparison.Standard.MonthlyPayment)
		assert.Empty(t, res.Comparison.Accelerated.Ledger)
		assert.False(t, res.HasSavings())
	}
}

func TestCompute_LongestTerm(t *testing.T) {
	res := Compute(model.LoanParameters{Principal: 300000, AnnualRatePercent: 6.85, TermYears: model.MaxTermYears}, now)

	require.False(t, res.Insufficient())
	assert.Equal(t, model.MaxTermYears*12, res.Comparison.Standard.PayoffMonths)
	require.Len(t, res.Comparison.Series, model.MaxTermYears)
	assert.Zero(t, res.Comparison.Series[model.MaxTermYears-1].StandardBalance)
}

func TestCompute_IsPure(t *testing.T) {
	params := model.LoanParameters{Principal: 180000, AnnualRatePercent: 5.1, TermYears: 20, ExtraMonthlyPayment: 120}
	assert.Equal(t, Compute(params, now), Compute(params, now))
}

func TestFromPurchase(t *testing.T) {
	p := downpayment.NewPurchase(decimal.NewFromInt(375000), decimal.NewFromInt(20))
	res := FromPurchase(p, 6.85, 30, 0, now)

	assert.InDelta(t, 300000, res.Params.Principal, 1e-9)
	assert.InDelta(t, 1966.01, res.Comparison.Standard.MonthlyPayment, 1.0)
}
