// Package amortize simulates fixed-rate loan payoff under a standard and an
// accelerated (extra principal) schedule.
package amortize

import (
	"math"

	"github.com/cleared-dev/payoff/internal/model"
)

// MonthlyPayment returns the fixed monthly payment of a fully amortizing loan
// over model.TermMonths(termYears) payments.
//
// A non-positive principal, rate or term yields 0. Zero-interest loans are
// not modeled and also yield 0, as does any input whose payment is not a
// finite number.
func MonthlyPayment(principal, annualRatePercent, termYears float64) float64 {
	n := model.TermMonths(termYears)
	if principal <= 0 || annualRatePercent <= 0 || n == 0 {
		return 0
	}
	rate := monthlyRate(annualRatePercent)
	factor := math.Pow(1+rate, float64(n))
	payment := principal * rate * factor / (factor - 1)
	if !finite(factor) || !finite(payment) || payment <= 0 {
		return 0
	}
	return payment
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
