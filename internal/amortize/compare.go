package amortize

import "github.com/cleared-dev/payoff/internal/model"

// Compare simulates params without and with the extra monthly payment and
// aligns the two yearly series for joint charting.
func Compare(params model.LoanParameters) model.Comparison {
	standard := Simulate(params.Principal, params.AnnualRatePercent, params.TermYears, 0)
	accelerated := Simulate(params.Principal, params.AnnualRatePercent, params.TermYears, params.ExtraMonthlyPayment)

	return model.Comparison{
		Standard:    standard,
		Accelerated: accelerated,
		Series:      AlignSeries(standard.YearlySeries, accelerated.YearlySeries),
	}
}

// AlignSeries returns one row per standard point. The accelerated balance is
// taken from the point in the same year; once the accelerated schedule has
// ended its balance is 0.
func AlignSeries(standard, accelerated []model.AmortizationPoint) model.ComparisonSeries {
	byYear := make(map[int]float64, len(accelerated))
	for _, p := range accelerated {
		byYear[p.YearIndex()] = p.RemainingBalance
	}

	series := make(model.ComparisonSeries, 0, len(standard))
	for _, p := range standard {
		series = append(series, model.ComparisonRow{
			YearLabel:          p.YearLabel,
			StandardBalance:    p.RemainingBalance,
			AcceleratedBalance: byYear[p.YearIndex()],
		})
	}
	return series
}
