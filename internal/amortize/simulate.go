package amortize

import (
	"math"

	"github.com/cleared-dev/payoff/internal/model"
)

// paidOffTolerance is the fraction of the original principal below which a
// balance counts as repaid. It absorbs floating-point residue on the last
// scheduled month of an uncapped schedule.
const paidOffTolerance = 1e-9

// Simulate walks the loan month by month and returns the schedule.
//
// Each month the scheduled payment covers interest first and the remainder
// reduces principal; extraMonthlyPayment goes to principal in full unless the
// balance plus interest is already below the desired outlay, in which case
// the month pays off exactly the remaining balance. The last scheduled month
// always clears the balance. A yearly point is
// sampled every 12 months and at payoff.
func Simulate(principal, annualRatePercent, termYears, extraMonthlyPayment float64) model.ScheduleResult {
	payment := MonthlyPayment(principal, annualRatePercent, termYears)
	if payment == 0 {
		return model.ScheduleResult{}
	}
	if !(extraMonthlyPayment > 0) || !finite(extraMonthlyPayment) {
		extraMonthlyPayment = 0
	}

	rate := monthlyRate(annualRatePercent)
	months := model.TermMonths(termYears)

	result := model.ScheduleResult{
		MonthlyPayment: payment,
		YearlySeries:   make([]model.AmortizationPoint, 0, months/12+1),
		Ledger:         make([]model.LedgerEntry, 0, months),
	}

	paidOff := principal * paidOffTolerance
	balance := principal
	var cumInterest, cumPrincipal float64
	for i := 1; i <= months; i++ {
		if balance <= 0 {
			break
		}

		interest := balance * rate
		scheduled := payment - interest
		portion := scheduled
		if i == months || balance+interest < payment+extraMonthlyPayment {
			// Final payment: pay what remains and no more.
			portion = balance
		} else {
			portion += extraMonthlyPayment
		}

		balance -= portion
		if balance < paidOff {
			balance = 0
		}

		cumInterest += interest
		cumPrincipal += portion
		result.PayoffMonths++

		result.Ledger = append(result.Ledger, model.LedgerEntry{
			Month:     i,
			Payment:   interest + portion,
			Interest:  interest,
			Principal: portion,
			Extra:     math.Max(0, portion-scheduled),
			Balance:   balance,
		})

		if i%12 == 0 || balance == 0 {
			result.YearlySeries = append(result.YearlySeries, model.AmortizationPoint{
				YearLabel:               float64(i) / 12,
				Month:                   i,
				RemainingBalance:        balance,
				CumulativeInterest:      cumInterest,
				CumulativePrincipalPaid: cumPrincipal,
			})
		}
	}

	result.TotalInterestPaid = cumInterest
	return result
}
