package schedule

import (
	"io"
	"strconv"

	"github.com/cleared-dev/payoff/internal/plan"
)

// SummaryHeader is the CSV header of a batch summary, one row per scenario.
const SummaryHeader = "name,principal,monthly_payment,total_interest,payoff_months," +
	"accelerated_interest,accelerated_months,interest_saved,months_saved,years_saved,payoff_date"

const (
	sumNumFields          = 11
	sumColName            = 0
	sumColPrincipal       = 1
	sumColPayment         = 2
	sumColInterest        = 3
	sumColMonths          = 4
	sumColAccInterest     = 5
	sumColAccMonths       = 6
	sumColInterestSaved   = 7
	sumColMonthsSaved     = 8
	sumColYearsSaved      = 9
	sumColProjectedPayoff = 10
)

// NamedResult is a computed scenario.
type NamedResult struct {
	Name   string
	Result plan.Result
}

// WriteSummaries writes one summary row per result (including header).
func WriteSummaries(w io.Writer, results []NamedResult) error {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = MarshalSummary(r.Name, r.Result)
	}
	return writeAll(w, SummaryHeader, rows)
}

// MarshalSummary converts a result to a summary CSV row. The payoff date
// column is year-month.
func MarshalSummary(name string, res plan.Result) []string {
	std := res.Comparison.Standard
	acc := res.Comparison.Accelerated

	row := make([]string, sumNumFields)
	row[sumColName] = name
	row[sumColPrincipal] = FormatMoney(res.Params.Principal)
	row[sumColPayment] = FormatMoney(std.MonthlyPayment)
	row[sumColInterest] = FormatMoney(std.TotalInterestPaid)
	row[sumColMonths] = strconv.Itoa(std.PayoffMonths)
	row[sumColAccInterest] = FormatMoney(acc.TotalInterestPaid)
	row[sumColAccMonths] = strconv.Itoa(acc.PayoffMonths)
	row[sumColInterestSaved] = FormatMoney(res.Savings.InterestSaved)
	row[sumColMonthsSaved] = strconv.Itoa(res.Savings.MonthsSaved)
	row[sumColYearsSaved] = res.Savings.YearsSavedDisplay
	row[sumColProjectedPayoff] = res.Savings.ProjectedPayoffDate.Format("2006-01")
	return row
}
