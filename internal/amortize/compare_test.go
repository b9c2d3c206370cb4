package amortize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/payoff/internal/model"
)

func TestCompare_RowsFollowStandardSeries(t *testing.T) {
	cmp := Compare(model.LoanParameters{
		Principal:           300000,
		AnnualRatePercent:   6.85,
		TermYears:           30,
		ExtraMonthlyPayment: 500,
	})

	require.Len(t, cmp.Series, len(cmp.Standard.YearlySeries))
	require.Len(t, cmp.Series, 30)

	for i, row := range cmp.Series {
		assert.Equal(t, cmp.Standard.YearlySeries[i].YearLabel, row.YearLabel)
		assert.Equal(t, cmp.Standard.YearlySeries[i].RemainingBalance, row.StandardBalance)
		assert.LessOrEqual(t, row.AcceleratedBalance, row.StandardBalance, "year %v", row.YearLabel)
	}

	// Accelerated schedule ends early; later years read as paid off.
	payoffYear := (cmp.Accelerated.PayoffMonths + 11) / 12
	for _, row := range cmp.Series {
		if int(row.YearLabel) >= payoffYear {
			assert.Zero(t, row.AcceleratedBalance, "year %v", row.YearLabel)
		}
	}
	assert.Greater(t, cmp.Series[0].AcceleratedBalance, 0.0)
}

func TestCompare_ZeroExtraIsIdentity(t *testing.T) {
	cmp := Compare(model.LoanParameters{
		Principal:         300000,
		AnnualRatePercent: 6.85,
		TermYears:         30,
	})

	assert.Equal(t, cmp.Standard, cmp.Accelerated)
	for _, row := range cmp.Series {
		assert.Equal(t, row.StandardBalance, row.AcceleratedBalance)
	}
}

func TestCompare_Insufficient(t *testing.T) {
	cmp := Compare(model.LoanParameters{Principal: 200000, TermYears: 30, ExtraMonthlyPayment: 100})

	assert.True(t, cmp.Standard.IsZero())
	assert.True(t, cmp.Accelerated.IsZero())
	assert.Empty(t, cmp.Series)
}

func TestAlignSeries(t *testing.T) {
	standard := []model.AmortizationPoint{
		{YearLabel: 1, Month: 12, RemainingBalance: 900},
		{YearLabel: 2, Month: 24, RemainingBalance: 800},
		{YearLabel: 3, Month: 36, RemainingBalance: 700},
		{YearLabel: 4, Month: 48, RemainingBalance: 0},
	}
	accelerated := []model.AmortizationPoint{
		{YearLabel: 1, Month: 12, RemainingBalance: 600},
		{YearLabel: 1.5, Month: 18, RemainingBalance: 0},
	}

	got := AlignSeries(standard, accelerated)
	want := model.ComparisonSeries{
		{YearLabel: 1, StandardBalance: 900, AcceleratedBalance: 600},
		{YearLabel: 2, StandardBalance: 800, AcceleratedBalance: 0},
		{YearLabel: 3, StandardBalance: 700, AcceleratedBalance: 0},
		{YearLabel: 4, StandardBalance: 0, AcceleratedBalance: 0},
	}
	assert.Equal(t, want, got)
}

func TestAlignSeries_EmptyAccelerated(t *testing.T) {
	standard := []model.AmortizationPoint{
		{YearLabel: 1, Month: 12, RemainingBalance: 500},
	}
	got := AlignSeries(standard, nil)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].AcceleratedBalance)
}
