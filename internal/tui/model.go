// Package tui provides the interactive Bubble Tea payoff form.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cleared-dev/payoff/internal/config"
	"github.com/cleared-dev/payoff/internal/downpayment"
	"github.com/cleared-dev/payoff/internal/input"
	"github.com/cleared-dev/payoff/internal/plan"
	"github.com/cleared-dev/payoff/internal/render"
)

const (
	fieldHomePrice = iota
	fieldDownPaymentAmount
	fieldDownPaymentPercent
	fieldRate
	fieldTerm
	fieldExtra
	fieldCount
)

const (
	defaultChartWidth = 60
	chartLabelWidth   = 6
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Options configures a Model.
type Options struct {
	Loan  config.LoanConfig
	Chart config.ChartConfig
	Color bool
	Now   func() time.Time
}

// Model implements the Bubble Tea payoff form.
type Model struct {
	inputs   []textinput.Model
	focus    int
	purchase *downpayment.Purchase
	result   plan.Result

	chart config.ChartConfig
	color bool
	now   func() time.Time

	width  int
	height int
}

// NewModel constructs a form seeded from opts.Loan and computes the first
// result.
func NewModel(opts Options) *Model {
	m := &Model{
		chart: opts.Chart,
		color: opts.Color,
		now:   opts.Now,
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.inputs = []textinput.Model{
		newFieldInput("Home price          "),
		newFieldInput("Down payment        "),
		newFieldInput("Down payment %      "),
		newFieldInput("Interest rate %     "),
		newFieldInput("Term (years)        "),
		newFieldInput("Extra each month    "),
	}
	m.setValue(fieldHomePrice, opts.Loan.HomePrice)
	m.setValue(fieldDownPaymentAmount, opts.Loan.DownPaymentAmount)
	m.setValue(fieldDownPaymentPercent, opts.Loan.DownPaymentPercent)
	m.setValue(fieldRate, opts.Loan.AnnualRatePercent)
	m.setValue(fieldTerm, opts.Loan.TermYears)
	m.setValue(fieldExtra, opts.Loan.ExtraMonthlyPayment)

	m.purchase = m.fields().Purchase()
	m.mirrorAmount()
	m.mirrorPercent()
	m.inputs[m.focus].Focus()
	m.recompute()
	return m
}

func newFieldInput(prompt string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.CharLimit = 20
	in.Cursor.SetMode(cursor.CursorBlink)
	return in
}

// Result returns the most recent computation.
func (m *Model) Result() plan.Result {
	return m.result
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}
		before := m.inputs[m.focus].Value()
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			m.applyEdit(m.focus)
			m.recompute()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// applyEdit feeds a single-field change into the purchase and mirrors the
// derived field back into its input.
func (m *Model) applyEdit(field int) {
	value := input.Decimal(m.inputs[field].Value())
	switch field {
	case fieldHomePrice:
		m.purchase.SetHomePrice(value)
		m.mirrorAmount()
	case fieldDownPaymentAmount:
		m.purchase.SetDownPaymentAmount(value)
		m.mirrorPercent()
	case fieldDownPaymentPercent:
		m.purchase.SetDownPaymentPercent(value)
		m.mirrorAmount()
	}
}

func (m *Model) mirrorAmount() {
	m.setValue(fieldDownPaymentAmount, m.purchase.DownPaymentAmount().String())
}

func (m *Model) mirrorPercent() {
	m.setValue(fieldDownPaymentPercent, m.purchase.DownPaymentPercent().Round(2).String())
}

func (m *Model) setValue(field int, v string) {
	m.inputs[field].SetValue(strings.TrimSpace(v))
	m.inputs[field].CursorEnd()
}

func (m *Model) fields() input.Fields {
	return input.Fields{
		HomePrice:           m.inputs[fieldHomePrice].Value(),
		DownPaymentAmount:   m.inputs[fieldDownPaymentAmount].Value(),
		DownPaymentPercent:  m.inputs[fieldDownPaymentPercent].Value(),
		AnnualRatePercent:   m.inputs[fieldRate].Value(),
		TermYears:           m.inputs[fieldTerm].Value(),
		ExtraMonthlyPayment: m.inputs[fieldExtra].Value(),
	}
}

func (m *Model) recompute() {
	f := m.fields()
	m.result = plan.FromPurchase(m.purchase,
		input.Amount(f.AnnualRatePercent),
		input.Amount(f.TermYears),
		input.Amount(f.ExtraMonthlyPayment),
		m.now())
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mortgage payoff"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(render.SummaryCard(m.result))
	b.WriteString("\n")

	if !m.result.Insufficient() {
		b.WriteString("\n")
		if err := render.PlotComparison(&b, m.result.Comparison.Series, m.chartWidth(), m.chart.Height, m.color); err != nil {
			b.WriteString(errorStyle.Render(err.Error()))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: next field  esc: quit"))
	return b.String()
}

func (m *Model) chartWidth() int {
	if m.chart.Width > 0 {
		return m.chart.Width
	}
	if m.width <= 0 {
		return defaultChartWidth
	}
	return render.PlotWidthFor(m.width, chartLabelWidth)
}
