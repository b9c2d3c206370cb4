package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cleared-dev/payoff/internal/model"
	"github.com/cleared-dev/payoff/internal/schedule"
)

var comparisonHeaders = []string{"Year", "Standard", "Accelerated", "Difference"}

// Table writes the yearly comparison as a padded text table.
func Table(w io.Writer, series model.ComparisonSeries) error {
	rows := make([][]string, 0, len(series))
	for _, r := range series {
		rows = append(rows, []string{
			schedule.FormatYear(r.YearLabel),
			schedule.FormatMoney(r.StandardBalance),
			schedule.FormatMoney(r.AcceleratedBalance),
			schedule.FormatMoney(r.StandardBalance - r.AcceleratedBalance),
		})
	}
	for _, line := range formatTable(comparisonHeaders, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatTable left-aligns the first column and right-aligns the rest.
func formatTable(headers []string, rows [][]string) []string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, formatRow(headers, widths))
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	lines = append(lines, strings.Join(rule, "  "))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}
	return lines
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i == 0 {
			cells[i] = runewidth.FillRight(cell, w)
		} else {
			cells[i] = runewidth.FillLeft(cell, w)
		}
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
