package downpayment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// requireInvariant checks amount == round(price * percent / 100) within a
// currency unit and that the principal is never negative.
func requireInvariant(t *testing.T, p *Purchase) {
	t.Helper()
	want := p.HomePrice().Mul(p.DownPaymentPercent()).Div(dec("100")).Round(0)
	diff := p.DownPaymentAmount().Sub(want).Abs()
	require.True(t, diff.LessThanOrEqual(dec("1")),
		"amount %s vs price %s * %s%%", p.DownPaymentAmount(), p.HomePrice(), p.DownPaymentPercent())
	require.GreaterOrEqual(t, p.Principal(), 0.0)
}

func TestNewPurchase(t *testing.T) {
	p := NewPurchase(dec("375000"), dec("20"))

	assert.True(t, p.DownPaymentAmount().Equal(dec("75000")))
	assert.InDelta(t, 300000, p.Principal(), 1e-9)
	requireInvariant(t, p)
}

func TestSetHomePrice_HoldsPercent(t *testing.T) {
	p := NewPurchase(dec("400000"), dec("10"))
	p.SetHomePrice(dec("500000"))

	assert.True(t, p.DownPaymentPercent().Equal(dec("10")))
	assert.True(t, p.DownPaymentAmount().Equal(dec("50000")))
	assert.InDelta(t, 450000, p.Principal(), 1e-9)
}

func TestSetDownPaymentAmount_RecomputesPercent(t *testing.T) {
	p := NewPurchase(dec("300000"), dec("20"))
	p.SetDownPaymentAmount(dec("12345"))

	assert.True(t, p.DownPaymentAmount().Equal(dec("12345")))
	assert.InDelta(t, 4.115, p.DownPaymentPercent().InexactFloat64(), 1e-9)
	requireInvariant(t, p)
}

func TestSetDownPaymentAmount_ZeroPrice(t *testing.T) {
	p := NewPurchase(decimal.Zero, dec("20"))
	p.SetDownPaymentAmount(dec("5000"))

	assert.True(t, p.DownPaymentPercent().IsZero())
	assert.Zero(t, p.Principal())
}

func TestSetDownPaymentPercent_RoundsAmount(t *testing.T) {
	p := NewPurchase(dec("333333"), dec("0"))
	p.SetDownPaymentPercent(dec("15"))

	// 49999.95 rounds to 50000.
	assert.True(t, p.DownPaymentAmount().Equal(dec("50000")))
	requireInvariant(t, p)
}

func TestPrincipal_NeverNegative(t *testing.T) {
	p := NewPurchase(dec("200000"), dec("150"))

	assert.True(t, p.DownPaymentAmount().Equal(dec("300000")))
	assert.Zero(t, p.Principal())

	p.SetDownPaymentAmount(dec("999999"))
	assert.Zero(t, p.Principal())
}

func TestNegativeEditsClampToZero(t *testing.T) {
	p := NewPurchase(dec("-5"), dec("-10"))
	assert.True(t, p.HomePrice().IsZero())
	assert.True(t, p.DownPaymentPercent().IsZero())

	p.SetHomePrice(dec("100000"))
	p.SetDownPaymentAmount(dec("-1"))
	assert.True(t, p.DownPaymentAmount().IsZero())
	assert.InDelta(t, 100000, p.Principal(), 1e-9)
}

func TestEditSequence_KeepsInvariant(t *testing.T) {
	p := NewPurchase(dec("350000"), dec("20"))

	edits := []func(){
		func() { p.SetHomePrice(dec("410000")) },
		func() { p.SetDownPaymentAmount(dec("61500")) },
		func() { p.SetDownPaymentPercent(dec("7.5")) },
		func() { p.SetHomePrice(dec("0")) },
		func() { p.SetHomePrice(dec("289999")) },
		func() { p.SetDownPaymentAmount(dec("33333")) },
		func() { p.SetHomePrice(dec("512345")) },
		func() { p.SetDownPaymentPercent(dec("120")) },
		func() { p.SetDownPaymentAmount(dec("1")) },
		func() { p.SetHomePrice(dec("777777")) },
	}
	for i, edit := range edits {
		edit()
		t.Logf("after edit %d: price=%s amount=%s percent=%s", i, p.HomePrice(), p.DownPaymentAmount(), p.DownPaymentPercent())
		requireInvariant(t, p)

		want := p.HomePrice().Sub(p.DownPaymentAmount()).InexactFloat64()
		if want < 0 {
			want = 0
		}
		assert.InDelta(t, want, p.Principal(), 1e-6)
	}
}
