// Package report renders a payoff result as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/cleared-dev/payoff/internal/model"
	"github.com/cleared-dev/payoff/internal/plan"
	"github.com/cleared-dev/payoff/internal/schedule"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	chartHeight  = 70.0
	labelWidth   = 70.0
)

// Section titles, in document order.
const (
	SectionLoan     = "Loan Terms"
	SectionResults  = "Results"
	SectionSavings  = "Savings"
	SectionChart    = "Remaining Balance"
	SectionSchedule = "Yearly Schedule"
)

type rgb struct{ r, g, b int }

var (
	navy      = rgb{0, 51, 102}
	orange    = rgb{214, 118, 23}
	textGrey  = rgb{50, 50, 50}
	ruleGrey  = rgb{200, 200, 200}
	greenText = rgb{0, 128, 0}
)

// Options controls document metadata.
type Options struct {
	Title       string
	Author      string
	GeneratedAt time.Time
}

type document struct {
	pdf  *fpdf.Fpdf
	opts Options
	res  plan.Result
}

// Generate renders res as an A4 PDF. The savings section is omitted when
// the accelerated schedule saves no interest.
func Generate(opts Options, res plan.Result) ([]byte, error) {
	doc := build(opts, res)

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func build(opts Options, res plan.Result) *document {
	if opts.Title == "" {
		opts.Title = "Mortgage Payoff Report"
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	doc := &document{
		pdf:  fpdf.New("P", "mm", "A4", ""),
		opts: opts,
		res:  res,
	}
	doc.pdf.SetMargins(marginLeft, marginTop, marginRight)
	doc.pdf.SetAutoPageBreak(true, marginBottom)
	doc.pdf.SetTitle(opts.Title, false)
	if opts.Author != "" {
		doc.pdf.SetAuthor(opts.Author, false)
	}
	doc.pdf.SetCreationDate(opts.GeneratedAt)

	doc.pdf.AddPage()
	doc.addTitle()
	if res.Insufficient() {
		doc.addNote("Not enough input to build a schedule: a home price, interest rate and term are required.")
		return doc
	}
	doc.addLoanTerms()
	doc.addResults()
	if res.HasSavings() {
		doc.addSavings()
	}
	doc.addChart()
	doc.addSchedule()
	return doc
}

func (d *document) addTitle() {
	d.pdf.SetFont("Arial", "B", 22)
	d.setText(navy)
	d.pdf.CellFormat(contentWidth, 12, d.opts.Title, "", 1, "L", false, 0, "")

	d.pdf.SetFont("Arial", "I", 10)
	d.setText(textGrey)
	d.pdf.CellFormat(contentWidth, 6, "Generated "+d.opts.GeneratedAt.Format("2 January 2006"), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) addLoanTerms() {
	p := d.res.Params
	d.drawSectionHeader(SectionLoan)
	d.drawPair("Loan amount", schedule.FormatMoney(p.Principal))
	d.drawPair("Annual interest rate", fmt.Sprintf("%s%%", schedule.FormatYear(p.AnnualRatePercent)))
	d.drawPair("Term", fmt.Sprintf("%s years (%d payments)", schedule.FormatYear(p.TermYears), p.TermMonths()))
	d.drawPair("Extra monthly payment", schedule.FormatMoney(p.ExtraMonthlyPayment))
	d.pdf.Ln(4)
}

func (d *document) addResults() {
	std := d.res.Comparison.Standard
	acc := d.res.Comparison.Accelerated

	d.drawSectionHeader(SectionResults)
	d.drawPair("Monthly payment", schedule.FormatMoney(std.MonthlyPayment))
	d.drawPair("Total interest", schedule.FormatMoney(std.TotalInterestPaid))
	d.drawPair("Payoff", fmt.Sprintf("%d months", std.PayoffMonths))
	if d.res.Params.ExtraMonthlyPayment > 0 {
		d.drawPair("Total interest with extra", schedule.FormatMoney(acc.TotalInterestPaid))
		d.drawPair("Payoff with extra", fmt.Sprintf("%d months", acc.PayoffMonths))
	}
	d.drawPair("Projected payoff date", d.res.Savings.ProjectedPayoffDate.Format("January 2006"))
	d.pdf.Ln(4)
}

func (d *document) addSavings() {
	s := d.res.Savings
	d.drawSectionHeader(SectionSavings)
	d.pdf.SetFont("Arial", "B", 12)
	d.setText(greenText)
	text := fmt.Sprintf("Paying %s extra each month saves %s in interest and %s years (%d months).",
		schedule.FormatMoney(d.res.Params.ExtraMonthlyPayment),
		schedule.FormatMoney(s.InterestSaved), s.YearsSavedDisplay, s.MonthsSaved)
	d.pdf.MultiCell(contentWidth, 6, text, "", "L", false)
	d.pdf.Ln(4)
}

func (d *document) addChart() {
	series := d.res.Comparison.Series
	if len(series) == 0 {
		return
	}
	d.drawSectionHeader(SectionChart)

	_, pageHeight := d.pdf.GetPageSize()
	if d.pdf.GetY()+chartHeight+12 > pageHeight-marginBottom {
		d.pdf.AddPage()
	}

	top := d.pdf.GetY()
	left := marginLeft + 18
	width := contentWidth - 18
	bottom := top + chartHeight

	maxVal := 0.0
	for _, r := range series {
		maxVal = math.Max(maxVal, math.Max(r.StandardBalance, r.AcceleratedBalance))
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	d.setDraw(ruleGrey)
	d.pdf.SetLineWidth(0.2)
	d.pdf.Rect(left, top, width, chartHeight, "D")

	d.pdf.SetFont("Arial", "", 7)
	d.setText(textGrey)
	for _, frac := range []float64{0, 0.5, 1} {
		y := bottom - frac*chartHeight
		d.pdf.SetXY(marginLeft, y-2)
		d.pdf.CellFormat(16, 4, schedule.FormatMoney(maxVal*frac), "", 0, "R", false, 0, "")
	}

	x := func(i int) float64 {
		if len(series) == 1 {
			return left
		}
		return left + float64(i)*width/float64(len(series)-1)
	}
	y := func(v float64) float64 { return bottom - v/maxVal*chartHeight }

	d.pdf.SetLineWidth(0.6)
	d.setDraw(navy)
	for i := 1; i < len(series); i++ {
		d.pdf.Line(x(i-1), y(series[i-1].StandardBalance), x(i), y(series[i].StandardBalance))
	}
	d.setDraw(orange)
	for i := 1; i < len(series); i++ {
		d.pdf.Line(x(i-1), y(series[i-1].AcceleratedBalance), x(i), y(series[i].AcceleratedBalance))
	}
	d.pdf.SetLineWidth(0.2)

	d.pdf.SetXY(left, bottom+1)
	d.pdf.CellFormat(width/2, 4, "Year "+schedule.FormatYear(series[0].YearLabel), "", 0, "L", false, 0, "")
	d.pdf.CellFormat(width/2, 4, "Year "+schedule.FormatYear(series[len(series)-1].YearLabel), "", 1, "R", false, 0, "")

	d.pdf.SetX(left)
	d.setText(navy)
	d.pdf.CellFormat(40, 5, "Standard", "", 0, "L", false, 0, "")
	d.setText(orange)
	d.pdf.CellFormat(40, 5, "With extra payment", "", 1, "L", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) addSchedule() {
	d.drawSectionHeader(SectionSchedule)

	headers := []string{"Year", "Balance", "Balance with extra", "Interest to date", "Interest with extra"}
	widths := []float64{20, 40, 40, 40, 40}
	d.drawTableHeader(headers, widths)

	for _, row := range scheduleRows(d.res.Comparison) {
		d.drawTableRow(row, widths)
	}
}

// scheduleRows lines up cumulative interest of both scenarios by year. After
// the accelerated payoff its cumulative interest stays at the final total.
func scheduleRows(cmp model.Comparison) [][]string {
	accInterest := make(map[int]float64, len(cmp.Accelerated.YearlySeries))
	for _, p := range cmp.Accelerated.YearlySeries {
		accInterest[p.YearIndex()] = p.CumulativeInterest
	}

	rows := make([][]string, 0, len(cmp.Series))
	for i, r := range cmp.Series {
		std := cmp.Standard.YearlySeries[i]
		interest, ok := accInterest[std.YearIndex()]
		if !ok {
			interest = cmp.Accelerated.TotalInterestPaid
		}
		rows = append(rows, []string{
			schedule.FormatYear(r.YearLabel),
			schedule.FormatMoney(r.StandardBalance),
			schedule.FormatMoney(r.AcceleratedBalance),
			schedule.FormatMoney(std.CumulativeInterest),
			schedule.FormatMoney(interest),
		})
	}
	return rows
}

func (d *document) addNote(text string) {
	d.pdf.SetFont("Arial", "", 11)
	d.setText(textGrey)
	d.pdf.MultiCell(contentWidth, 6, text, "", "L", false)
}

func (d *document) drawSectionHeader(title string) {
	d.pdf.SetFont("Arial", "B", 14)
	d.setText(navy)
	d.pdf.CellFormat(contentWidth, 9, title, "", 1, "L", false, 0, "")
	d.setDraw(navy)
	d.pdf.Line(marginLeft, d.pdf.GetY(), marginLeft+contentWidth, d.pdf.GetY())
	d.pdf.Ln(3)
}

func (d *document) drawPair(label, value string) {
	d.pdf.SetFont("Arial", "", 11)
	d.setText(textGrey)
	d.pdf.CellFormat(labelWidth, 6, label, "", 0, "L", false, 0, "")
	d.pdf.SetFont("Arial", "B", 11)
	d.pdf.CellFormat(contentWidth-labelWidth, 6, value, "", 1, "L", false, 0, "")
}

func (d *document) drawTableHeader(headers []string, widths []float64) {
	d.pdf.SetFillColor(navy.r, navy.g, navy.b)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		d.pdf.CellFormat(widths[i], 6, h, "1", 0, align(i), true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) drawTableRow(cells []string, widths []float64) {
	d.pdf.SetFillColor(250, 250, 250)
	d.setText(textGrey)
	d.pdf.SetFont("Arial", "", 9)
	for i, c := range cells {
		d.pdf.CellFormat(widths[i], 5, c, "1", 0, align(i), true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) setText(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }
func (d *document) setDraw(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}
