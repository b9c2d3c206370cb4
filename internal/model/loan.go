package model

import (
	"math"
	"time"
)

// LoanParameters are the inputs to a single payoff computation.
// All fields are non-negative.
type LoanParameters struct {
	Principal           float64
	AnnualRatePercent   float64
	TermYears           float64
	ExtraMonthlyPayment float64
}

// TermMonths returns the number of scheduled payments (whole months).
func (p LoanParameters) TermMonths() int {
	return TermMonths(p.TermYears)
}

// MaxTermYears is the longest term that is simulated. Longer terms, like
// non-positive ones, have no schedule.
const MaxTermYears = 100

// TermMonths converts a term in years to whole scheduled months. Terms that
// are not positive, not finite or above MaxTermYears give 0.
func TermMonths(termYears float64) int {
	if !(termYears > 0) || termYears > MaxTermYears {
		return 0
	}
	return int(math.Floor(termYears*12 + 1e-9))
}

// AmortizationPoint is one yearly sample of a schedule.
type AmortizationPoint struct {
	YearLabel               float64 // Month / 12
	Month                   int
	RemainingBalance        float64
	CumulativeInterest      float64
	CumulativePrincipalPaid float64
}

// YearIndex returns the integer year the sample falls in.
// Month 12 -> 1, month 270 -> 23.
func (p AmortizationPoint) YearIndex() int {
	return (p.Month + 11) / 12
}

// LedgerEntry is one simulated month.
type LedgerEntry struct {
	Month     int
	Payment   float64 // total outlay this month, extra included
	Interest  float64
	Principal float64 // extra included
	Extra     float64 // portion of Principal above the scheduled payment
	Balance   float64
}

// ScheduleResult is the outcome of simulating one scenario.
// A zero value means the inputs were insufficient to build a schedule.
type ScheduleResult struct {
	MonthlyPayment    float64
	TotalInterestPaid float64
	PayoffMonths      int
	YearlySeries      []AmortizationPoint
	Ledger            []LedgerEntry
}

// IsZero reports whether the schedule carries no payments.
func (r ScheduleResult) IsZero() bool {
	return r.MonthlyPayment == 0 && r.PayoffMonths == 0 && len(r.YearlySeries) == 0
}

// ComparisonRow pairs the standard and accelerated balance for one year.
type ComparisonRow struct {
	YearLabel          float64
	StandardBalance    float64
	AcceleratedBalance float64
}

// ComparisonSeries is ordered by YearLabel ascending and has exactly one
// row per point of the standard schedule.
type ComparisonSeries []ComparisonRow

// Comparison holds both scenarios of one computation.
type Comparison struct {
	Standard    ScheduleResult
	Accelerated ScheduleResult
	Series      ComparisonSeries
}

// SavingsSummary describes what the extra payment buys.
type SavingsSummary struct {
	InterestSaved       float64
	MonthsSaved         int
	YearsSavedDisplay   string // one decimal, e.g. "7.5"
	ProjectedPayoffDate time.Time
}
