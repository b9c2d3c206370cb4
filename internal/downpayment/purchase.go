// Package downpayment keeps home price, down-payment amount and down-payment
// percentage consistent and derives the loan principal from them.
package downpayment

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Purchase holds the three mutually derived purchase fields. After any single
// edit DownPaymentAmount == round(HomePrice * DownPaymentPercent / 100),
// rounded to whole currency units.
type Purchase struct {
	homePrice decimal.Decimal
	amount    decimal.Decimal
	percent   decimal.Decimal
}

// NewPurchase builds a Purchase from a price and a down-payment percentage.
func NewPurchase(homePrice, downPaymentPercent decimal.Decimal) *Purchase {
	p := &Purchase{}
	p.homePrice = nonNegative(homePrice)
	p.SetDownPaymentPercent(downPaymentPercent)
	return p
}

// HomePrice returns the purchase price.
func (p *Purchase) HomePrice() decimal.Decimal { return p.homePrice }

// DownPaymentAmount returns the down payment in currency units.
func (p *Purchase) DownPaymentAmount() decimal.Decimal { return p.amount }

// DownPaymentPercent returns the down payment as a percentage of the price.
func (p *Purchase) DownPaymentPercent() decimal.Decimal { return p.percent }

// SetHomePrice changes the price and recomputes the amount, holding the
// percentage fixed.
func (p *Purchase) SetHomePrice(v decimal.Decimal) {
	p.homePrice = nonNegative(v)
	p.amount = amountFor(p.homePrice, p.percent)
}

// SetDownPaymentAmount changes the amount and recomputes the percentage.
// A zero price yields a zero percentage.
func (p *Purchase) SetDownPaymentAmount(v decimal.Decimal) {
	p.amount = nonNegative(v)
	if p.homePrice.IsZero() {
		p.percent = decimal.Zero
		return
	}
	p.percent = p.amount.Div(p.homePrice).Mul(hundred)
}

// SetDownPaymentPercent changes the percentage and recomputes the amount.
// Percentages above 100 are accepted; Principal never goes negative.
func (p *Purchase) SetDownPaymentPercent(v decimal.Decimal) {
	p.percent = nonNegative(v)
	p.amount = amountFor(p.homePrice, p.percent)
}

// Principal returns max(0, price - down payment).
func (p *Purchase) Principal() float64 {
	loan := p.homePrice.Sub(p.amount)
	if loan.IsNegative() {
		return 0
	}
	return loan.InexactFloat64()
}

func amountFor(price, percent decimal.Decimal) decimal.Decimal {
	return price.Mul(percent).Div(hundred).Round(0)
}

func nonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
