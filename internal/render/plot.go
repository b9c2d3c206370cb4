// Package render writes payoff results to a terminal: a summary card, a
// yearly table and a braille balance chart.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/cleared-dev/payoff/internal/model"
)

const (
	defaultPlotHeight   = 12
	minPlotWidth        = 10
	axisSeparator       = " ┤"
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
	brailleBase         = 0x2800
)

type lineStyle struct {
	name  string
	color string
	// period/on describe a dash pattern along x; period 1 is solid.
	period int
	on     int
}

var (
	standardStyle    = lineStyle{name: "standard", color: "\x1b[36m", period: 1, on: 1}
	acceleratedStyle = lineStyle{name: "accelerated", color: "\x1b[33m", period: 4, on: 2}
)

// brailleBits[dy][dx] is the dot bit for a sub-cell position.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// PlotComparison draws the standard and accelerated balance curves on a
// shared axis running from 0 to the largest standard balance. width and
// height are in terminal cells; width <= 0 fits the terminal. An empty
// series writes nothing.
func PlotComparison(w io.Writer, series model.ComparisonSeries, width, height int, color bool) error {
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}

	maxVal := 0.0
	for _, r := range series {
		maxVal = math.Max(maxVal, math.Max(r.StandardBalance, r.AcceleratedBalance))
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	labels := axisLabels(maxVal, height)
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, utf8.RuneCountInString(l))
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth(), labelWidth)
	}
	width = max(width, minPlotWidth)

	standard := newCanvas(width, height)
	accelerated := newCanvas(width, height)
	prevX, prevStd, prevAcc := -1, 0, 0
	for i, r := range series {
		x := columnFor(i, len(series), standard.pxWidth())
		ys := standard.rowFor(r.StandardBalance, maxVal)
		ya := accelerated.rowFor(r.AcceleratedBalance, maxVal)
		if prevX < 0 {
			standard.plot(x, ys, standardStyle)
			accelerated.plot(x, ya, acceleratedStyle)
		} else {
			standard.line(prevX, prevStd, x, ys, standardStyle)
			accelerated.line(prevX, prevAcc, x, ya, acceleratedStyle)
		}
		prevX, prevStd, prevAcc = x, ys, ya
	}

	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", labelWidth, labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			std, acc := standard.cells[y][x], accelerated.cells[y][x]
			mask := std | acc
			if mask == 0 {
				row.WriteRune(brailleBase)
				continue
			}
			ch := rune(brailleBase) + mask
			switch {
			case !color:
				row.WriteRune(ch)
			case std != 0:
				row.WriteString(standardStyle.color + string(ch) + colorReset)
			default:
				row.WriteString(acceleratedStyle.color + string(ch) + colorReset)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	first := series[0].YearLabel
	last := series[len(series)-1].YearLabel
	axis := fmt.Sprintf("%*s  year %s", labelWidth, "", trimYear(first))
	end := "year " + trimYear(last)
	if pad := labelWidth + 2 + width - utf8.RuneCountInString(axis) - utf8.RuneCountInString(end); pad > 0 {
		axis += strings.Repeat(" ", pad) + end
	}
	if _, err := fmt.Fprintln(w, axis); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, legend(color))
	return err
}

// PlotWidthFor returns the number of chart columns that fit in totalWidth
// next to a y-axis label of labelWidth runes.
func PlotWidthFor(totalWidth, labelWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	return max(totalWidth-labelWidth-utf8.RuneCountInString(axisSeparator), minPlotWidth)
}

// ColorEnabled reports whether ANSI color should be written to w.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func axisLabels(maxVal float64, height int) []string {
	labels := make([]string, height)
	labels[0] = compact(maxVal)
	if height > 2 {
		labels[height/2] = compact(maxVal * float64(height-1-height/2) / float64(height-1))
	}
	if height > 1 {
		labels[height-1] = "0"
	}
	return labels
}

// compact renders a balance as 412k or 1.2M.
func compact(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case v >= 1e6:
		return d.Div(decimal.NewFromInt(1e6)).Round(1).String() + "M"
	case v >= 1e3:
		return d.Div(decimal.NewFromInt(1e3)).Round(0).String() + "k"
	default:
		return d.Round(0).String()
	}
}

func trimYear(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String()
}

func legend(color bool) string {
	sample := func(s lineStyle, glyph string) string {
		if color {
			return s.color + glyph + colorReset + " " + s.name
		}
		return glyph + " " + s.name
	}
	return sample(standardStyle, "⠒⠒⠒") + "   " + sample(acceleratedStyle, "⠒ ⠒")
}

func columnFor(i, n, pxWidth int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(pxWidth-1) / float64(n-1)))
}

type canvas struct {
	cells [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
	}
	return &canvas{cells: cells}
}

func (c *canvas) pxWidth() int  { return len(c.cells[0]) * 2 }
func (c *canvas) pxHeight() int { return len(c.cells) * 4 }

func (c *canvas) rowFor(v, maxVal float64) int {
	h := c.pxHeight()
	pos := math.Max(0, math.Min(1, v/maxVal))
	return int(math.Round((1 - pos) * float64(h-1)))
}

func (c *canvas) plot(px, py int, style lineStyle) {
	if style.period > 1 && px%style.period >= style.on {
		return
	}
	if px < 0 || py < 0 || px >= c.pxWidth() || py >= c.pxHeight() {
		return
	}
	c.cells[py/4][px/2] |= brailleBits[py%4][px%2]
}

// line draws from (x0,y0) to (x1,y1) with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int, style lineStyle) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.plot(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
