package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cleared-dev/payoff/internal/plan"
	"github.com/cleared-dev/payoff/internal/schedule"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	savingsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// InsufficientMessage is shown instead of a summary when no schedule exists.
const InsufficientMessage = "Enter a home price, interest rate and term to see a payoff schedule."

type summaryLine struct {
	label string
	value string
	good  bool
}

func summaryLines(res plan.Result) []summaryLine {
	std := res.Comparison.Standard
	acc := res.Comparison.Accelerated

	lines := []summaryLine{
		{label: "Loan amount", value: schedule.FormatMoney(res.Params.Principal)},
		{label: "Monthly payment", value: schedule.FormatMoney(std.MonthlyPayment)},
		{label: "Total interest", value: schedule.FormatMoney(std.TotalInterestPaid)},
		{label: "Payoff", value: months(std.PayoffMonths)},
	}
	if res.Params.ExtraMonthlyPayment > 0 {
		lines = append(lines,
			summaryLine{label: "Extra each month", value: schedule.FormatMoney(res.Params.ExtraMonthlyPayment)},
			summaryLine{label: "Total interest with extra", value: schedule.FormatMoney(acc.TotalInterestPaid)},
			summaryLine{label: "Payoff with extra", value: months(acc.PayoffMonths)},
		)
	}
	if res.HasSavings() {
		lines = append(lines,
			summaryLine{label: "Interest saved", value: schedule.FormatMoney(res.Savings.InterestSaved), good: true},
			summaryLine{label: "Time saved", value: res.Savings.YearsSavedDisplay + " years", good: true},
		)
	}
	lines = append(lines, summaryLine{label: "Projected payoff", value: res.Savings.ProjectedPayoffDate.Format("January 2006")})
	return lines
}

// SummaryCard renders the summary card as a string.
func SummaryCard(res plan.Result) string {
	if res.Insufficient() {
		return cardStyle.Render(mutedStyle.Render(InsufficientMessage))
	}

	lines := summaryLines(res)
	labelWidth := 0
	for _, l := range lines {
		labelWidth = max(labelWidth, len(l.label))
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		value := cardValueStyle.Render(l.value)
		if l.good {
			value = savingsStyle.Render(l.value)
		}
		b.WriteString(cardTitleStyle.Render(fmt.Sprintf("%-*s", labelWidth, l.label)))
		b.WriteString("  ")
		b.WriteString(value)
	}
	return cardStyle.Render(b.String())
}

// Summary writes the summary card to w.
func Summary(w io.Writer, res plan.Result) error {
	_, err := fmt.Fprintln(w, SummaryCard(res))
	return err
}

func months(n int) string {
	return fmt.Sprintf("%d months (%s years)", n, schedule.FormatYear(float64(n)/12))
}
