// Package schedule exports payoff schedules as CSV and reads batch scenario
// files.
package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/payoff/internal/model"
)

// SeriesHeader is the CSV header for a yearly series.
const SeriesHeader = "year,month,remaining_balance,cumulative_interest,cumulative_principal"

// ComparisonHeader is the CSV header for an aligned comparison series.
const ComparisonHeader = "year,standard_balance,accelerated_balance"

// LedgerHeader is the CSV header for the monthly ledger.
const LedgerHeader = "month,payment,interest,principal,extra,balance"

const (
	seriesNumFields   = 5
	seriesColYear     = 0
	seriesColMonth    = 1
	seriesColBalance  = 2
	seriesColInterest = 3
	seriesColPrinc    = 4

	cmpNumFields      = 3
	cmpColYear        = 0
	cmpColStandard    = 1
	cmpColAccelerated = 2

	ledgerNumFields   = 6
	ledgerColMonth    = 0
	ledgerColPayment  = 1
	ledgerColInterest = 2
	ledgerColPrinc    = 3
	ledgerColExtra    = 4
	ledgerColBalance  = 5
)

// WriteSeries writes a yearly series (including header).
func WriteSeries(w io.Writer, points []model.AmortizationPoint) error {
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = MarshalPoint(p)
	}
	return writeAll(w, SeriesHeader, rows)
}

// WriteComparison writes an aligned comparison series (including header).
func WriteComparison(w io.Writer, series model.ComparisonSeries) error {
	rows := make([][]string, len(series))
	for i, r := range series {
		rows[i] = MarshalComparisonRow(r)
	}
	return writeAll(w, ComparisonHeader, rows)
}

// WriteLedger writes the monthly ledger (including header).
func WriteLedger(w io.Writer, entries []model.LedgerEntry) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = MarshalLedgerEntry(e)
	}
	return writeAll(w, LedgerHeader, rows)
}

// MarshalPoint converts an AmortizationPoint to a CSV row.
func MarshalPoint(p model.AmortizationPoint) []string {
	row := make([]string, seriesNumFields)
	row[seriesColYear] = FormatYear(p.YearLabel)
	row[seriesColMonth] = strconv.Itoa(p.Month)
	row[seriesColBalance] = FormatMoney(p.RemainingBalance)
	row[seriesColInterest] = FormatMoney(p.CumulativeInterest)
	row[seriesColPrinc] = FormatMoney(p.CumulativePrincipalPaid)
	return row
}

// MarshalComparisonRow converts a ComparisonRow to a CSV row.
func MarshalComparisonRow(r model.ComparisonRow) []string {
	row := make([]string, cmpNumFields)
	row[cmpColYear] = FormatYear(r.YearLabel)
	row[cmpColStandard] = FormatMoney(r.StandardBalance)
	row[cmpColAccelerated] = FormatMoney(r.AcceleratedBalance)
	return row
}

// MarshalLedgerEntry converts a LedgerEntry to a CSV row.
func MarshalLedgerEntry(e model.LedgerEntry) []string {
	row := make([]string, ledgerNumFields)
	row[ledgerColMonth] = strconv.Itoa(e.Month)
	row[ledgerColPayment] = FormatMoney(e.Payment)
	row[ledgerColInterest] = FormatMoney(e.Interest)
	row[ledgerColPrinc] = FormatMoney(e.Principal)
	row[ledgerColExtra] = FormatMoney(e.Extra)
	row[ledgerColBalance] = FormatMoney(e.Balance)
	return row
}

// FormatMoney renders an amount with two decimals.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatYear renders a year label with at most two decimals: 5, 17.42.
func FormatYear(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

func writeAll(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
