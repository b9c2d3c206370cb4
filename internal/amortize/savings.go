package amortize

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/payoff/internal/model"
)

var decimalTwelve = decimal.NewFromInt(12)

// ComputeSavings derives interest and time saved by the accelerated schedule.
// now anchors the projected payoff date.
func ComputeSavings(standard, accelerated model.ScheduleResult, termYears, extraMonthlyPayment float64, now time.Time) model.SavingsSummary {
	termMonths := model.TermMonths(termYears)

	if !(extraMonthlyPayment > 0) || standard.PayoffMonths == 0 {
		return model.SavingsSummary{
			YearsSavedDisplay:   YearsDisplay(0),
			ProjectedPayoffDate: now.AddDate(0, termMonths, 0),
		}
	}

	monthsSaved := termMonths - accelerated.PayoffMonths
	return model.SavingsSummary{
		InterestSaved:       math.Max(0, standard.TotalInterestPaid-accelerated.TotalInterestPaid),
		MonthsSaved:         monthsSaved,
		YearsSavedDisplay:   YearsDisplay(monthsSaved),
		ProjectedPayoffDate: now.AddDate(0, accelerated.PayoffMonths, 0),
	}
}

// YearsDisplay formats a month count as years with one decimal.
func YearsDisplay(months int) string {
	return decimal.NewFromInt(int64(months)).Div(decimalTwelve).StringFixed(1)
}
