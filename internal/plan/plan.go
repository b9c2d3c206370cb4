// Package plan runs the complete payoff pipeline for one set of inputs.
package plan

import (
	"time"

	"github.com/cleared-dev/payoff/internal/amortize"
	"github.com/cleared-dev/payoff/internal/downpayment"
	"github.com/cleared-dev/payoff/internal/model"
)

// Result bundles everything the chart, report and export consumers need.
type Result struct {
	Params     model.LoanParameters
	Comparison model.Comparison
	Savings    model.SavingsSummary
}

// Compute runs payment, both simulations, alignment and savings from scratch.
func Compute(params model.LoanParameters, now time.Time) Result {
	cmp := amortize.Compare(params)
	return Result{
		Params:     params,
		Comparison: cmp,
		Savings: amortize.ComputeSavings(cmp.Standard, cmp.Accelerated,
			params.TermYears, params.ExtraMonthlyPayment, now),
	}
}

// FromPurchase computes a result whose principal comes from p.
func FromPurchase(p *downpayment.Purchase, annualRatePercent, termYears, extraMonthlyPayment float64, now time.Time) Result {
	return Compute(model.LoanParameters{
		Principal:           p.Principal(),
		AnnualRatePercent:   annualRatePercent,
		TermYears:           termYears,
		ExtraMonthlyPayment: extraMonthlyPayment,
	}, now)
}

// Insufficient reports whether the inputs were too incomplete to build a
// schedule. This is not an error; the result is simply all zeros.
func (r Result) Insufficient() bool {
	return r.Comparison.Standard.IsZero()
}

// HasSavings reports whether the accelerated schedule saves any interest.
// Consumers omit the savings section otherwise.
func (r Result) HasSavings() bool {
	return r.Savings.InterestSaved > 0
}
