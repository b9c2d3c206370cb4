// Package input parses the free-text numeric fields of the payoff form.
//
// Parsing is permissive: empty, unparsable or negative text reads as 0 and
// never produces an error.
package input

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/payoff/internal/downpayment"
	"github.com/cleared-dev/payoff/internal/model"
	"github.com/cleared-dev/payoff/internal/plan"
)

var stripper = strings.NewReplacer("$", "", ",", "", "_", "", " ", "")

// Decimal parses s as a non-negative decimal. "$1,250.50" reads as 1250.50,
// "6.5%" as 6.5. Values too large for a float64 read as 0.
func Decimal(s string) decimal.Decimal {
	s = stripper.Replace(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero
	}
	return d
}

// Amount parses s like Decimal and returns a float64.
func Amount(s string) float64 {
	return Decimal(s).InexactFloat64()
}

// Fields holds the raw text of every form field.
type Fields struct {
	HomePrice           string
	DownPaymentAmount   string
	DownPaymentPercent  string
	AnnualRatePercent   string
	TermYears           string
	ExtraMonthlyPayment string
}

// Purchase applies the purchase fields as successive edits: price, then
// percent, then the amount if one was given. The amount wins over the
// percent when both are present.
func (f Fields) Purchase() *downpayment.Purchase {
	p := downpayment.NewPurchase(Decimal(f.HomePrice), Decimal(f.DownPaymentPercent))
	if strings.TrimSpace(f.DownPaymentAmount) != "" {
		p.SetDownPaymentAmount(Decimal(f.DownPaymentAmount))
	}
	return p
}

// Params returns the loan parameters described by the fields.
func (f Fields) Params() model.LoanParameters {
	return model.LoanParameters{
		Principal:           f.Purchase().Principal(),
		AnnualRatePercent:   Amount(f.AnnualRatePercent),
		TermYears:           Amount(f.TermYears),
		ExtraMonthlyPayment: Amount(f.ExtraMonthlyPayment),
	}
}

// Compute runs the full pipeline for the fields.
func (f Fields) Compute(now time.Time) plan.Result {
	return plan.Compute(f.Params(), now)
}
