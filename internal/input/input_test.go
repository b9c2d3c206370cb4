package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"300000", 300000},
		{" 300000 ", 300000},
		{"$1,250.50", 1250.50},
		{"6.85%", 6.85},
		{"1_000", 1000},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-500", 0},
		{"0.5", 0.5},
		{"1e3", 1000},
		{"1e300", 1e300},
		{"1e400", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Amount(tt.in), 1e-9, "Amount(%q)", tt.in)
	}
}

func TestFields_PercentOnly(t *testing.T) {
	f := Fields{HomePrice: "375,000", DownPaymentPercent: "20", AnnualRatePercent: "6.85", TermYears: "30"}

	p := f.Purchase()
	assert.Equal(t, "75000", p.DownPaymentAmount().String())

	params := f.Params()
	assert.InDelta(t, 300000, params.Principal, 1e-9)
	assert.InDelta(t, 6.85, params.AnnualRatePercent, 1e-12)
	assert.InDelta(t, 30, params.TermYears, 1e-12)
	assert.Zero(t, params.ExtraMonthlyPayment)
}

func TestFields_AmountWinsOverPercent(t *testing.T) {
	f := Fields{HomePrice: "400000", DownPaymentAmount: "100000", DownPaymentPercent: "5"}

	p := f.Purchase()
	assert.Equal(t, "25", p.DownPaymentPercent().String())
	assert.InDelta(t, 300000, f.Params().Principal, 1e-9)
}

func TestFields_GarbageIsZero(t *testing.T) {
	f := Fields{HomePrice: "lots", AnnualRatePercent: "?", TermYears: "thirty"}
	res := f.Compute(time.Now())

	assert.True(t, res.Insufficient())
}

func TestFields_ComputeOutOfRangeTerm(t *testing.T) {
	for _, term := range []string{"20000", "1e300", "1e400"} {
		f := Fields{HomePrice: "375000", DownPaymentPercent: "20", AnnualRatePercent: "6.85", TermYears: term}

		assert.NotPanics(t, func() {
			res := f.Compute(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
			assert.True(t, res.Insufficient(), "term %s", term)
		})
	}
}
