package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalc_Principal(t *testing.T) {
	out, err := runPayoff(t, t.TempDir(), "calc",
		"--principal", "300000", "--rate", "6.85", "--term", "30", "--extra", "500")
	require.NoError(t, err, out)

	assert.Contains(t, out, "1965.78")
	assert.Contains(t, out, "407679.95")
	assert.Contains(t, out, "360 months (30 years)")
	assert.Contains(t, out, "209 months")
	assert.Contains(t, out, "Interest saved")
}

func TestCalc_UsesProjectConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayoff(t, dir, "init", dir)
	require.NoError(t, err)

	// Default config: 375000 with 20% down.
	out, err := runPayoff(t, dir, "calc")
	require.NoError(t, err, out)
	assert.Contains(t, out, "300000.00")
	assert.Contains(t, out, "1965.78")
	assert.NotContains(t, out, "Interest saved")
}

func TestCalc_DownPaymentOverridesConfigPercent(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayoff(t, dir, "init", dir)
	require.NoError(t, err)

	out, err := runPayoff(t, dir, "calc", "--down-payment", "$125,000")
	require.NoError(t, err, out)
	assert.Contains(t, out, "250000.00")
}

func TestCalc_ExplicitTOMLConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loan.toml")
	toml := `[loan]
home_price = "500000"
down_payment_percent = "10"
annual_rate_percent = "5"
term_years = "15"
extra_monthly_payment = "0"
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	out, err := runPayoff(t, dir, "calc", "--config", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "450000.00")
	assert.Contains(t, out, "180 months (15 years)")
}

func TestCalc_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runPayoff(t, dir, "calc", "--config", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "reading config")
}

func TestCalc_Insufficient(t *testing.T) {
	out, err := runPayoff(t, t.TempDir(), "calc", "--principal", "300000", "--rate", "0", "--term", "30")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Enter a home price")
	assert.Contains(t, out, "warning: nothing to export")
}

func TestCalc_Exports(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cmp.csv")
	seriesPath := filepath.Join(dir, "series.csv")
	ledgerPath := filepath.Join(dir, "ledger.csv")
	pdfPath := filepath.Join(dir, "report.pdf")

	out, err := runPayoff(t, dir, "calc",
		"--principal", "300000", "--rate", "6.85", "--term", "30", "--extra", "500",
		"--csv", csvPath, "--series", seriesPath, "--ledger", ledgerPath, "--pdf", pdfPath)
	require.NoError(t, err, out)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "year,standard_balance,accelerated_balance", lines[0])
	assert.Len(t, lines, 31)
	assert.True(t, strings.HasPrefix(lines[30], "30,0.00,0.00"))

	data, err = os.ReadFile(seriesPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "year,month,remaining_balance"))

	data, err = os.ReadFile(ledgerPath)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 210)

	data, err = os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCalc_ChartAndTable(t *testing.T) {
	out, err := runPayoff(t, t.TempDir(), "calc",
		"--principal", "300000", "--rate", "6.85", "--term", "30", "--extra", "500",
		"--chart", "--table", "--no-color")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Accelerated")
	assert.Contains(t, out, "year 30")
	assert.NotContains(t, out, "\x1b[")
}

func TestVersion(t *testing.T) {
	out, err := runPayoff(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "payoff version dev")
}
