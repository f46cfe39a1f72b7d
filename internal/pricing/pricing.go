// Package pricing computes the price shown to customers for a product and
// its optional discount badge.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidArgument = errors.New("invalid argument")

var hundred = decimal.NewFromInt(100)

// MaxPrice is the largest base price accepted, one quadrillion dong. Amounts
// up to it stay exact as float64 and int64.
var MaxPrice = decimal.New(1, 15)

// CurrencyFormatter renders a money amount for display, e.g. "10,000 ₫".
type CurrencyFormatter interface {
	Currency(amount decimal.Decimal) string
}

// Display is the derived view of a discounted price. It is never stored.
type Display struct {
	OriginalPrice   decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountedPrice decimal.Decimal
	// BadgeText is empty when no discount applies.
	BadgeText string
	// Discounted reports whether the original price is shown struck through.
	Discounted bool
}

func (d Display) HasBadge() bool {
	return d.BadgeText != ""
}

// ComputeDisplay applies discount to basePrice.
//
// A zero discount value yields the base price with no badge regardless of
// the discount kind. Percent rates above 100 and fixed values above the base
// price are rejected so the displayed price never goes negative.
func ComputeDisplay(basePrice decimal.Decimal, discount Discount, f CurrencyFormatter) (Display, error) {
	if f == nil {
		return Display{}, fmt.Errorf("%w: currency formatter is required", ErrInvalidArgument)
	}
	amount, err := DiscountAmount(basePrice, discount)
	if err != nil {
		return Display{}, err
	}

	d := Display{
		OriginalPrice:   basePrice,
		DiscountAmount:  amount,
		DiscountedPrice: basePrice.Sub(amount),
	}
	if discount.Amount().IsZero() {
		return d, nil
	}

	d.Discounted = true
	switch v := discount.(type) {
	case Percent:
		d.BadgeText = "-" + v.Rate.String() + "%"
	case Fixed:
		d.BadgeText = "-" + f.Currency(v.Value)
	}

	return d, nil
}

// DiscountAmount returns how much discount takes off basePrice.
func DiscountAmount(basePrice decimal.Decimal, discount Discount) (decimal.Decimal, error) {
	if basePrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: base price %s is negative", ErrInvalidArgument, basePrice)
	}
	if basePrice.GreaterThan(MaxPrice) {
		return decimal.Zero, fmt.Errorf("%w: base price %s exceeds %s", ErrInvalidArgument, basePrice, MaxPrice)
	}
	if discount == nil {
		return decimal.Zero, fmt.Errorf("%w: discount is required", ErrInvalidArgument)
	}
	if discount.Amount().IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: discount value %s is negative", ErrInvalidArgument, discount.Amount())
	}

	switch v := discount.(type) {
	case Percent:
		if v.Rate.GreaterThan(hundred) {
			return decimal.Zero, fmt.Errorf("%w: percent discount %s exceeds 100", ErrInvalidArgument, v.Rate)
		}
		return basePrice.Mul(v.Rate).Div(hundred), nil
	case Fixed:
		if v.Value.GreaterThan(basePrice) {
			return decimal.Zero, fmt.Errorf("%w: fixed discount %s exceeds price %s", ErrInvalidArgument, v.Value, basePrice)
		}
		return v.Value, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported discount %T", ErrInvalidArgument, discount)
	}
}

// MaxValue is the upper bound the editor accepts for a discount of kind k.
func MaxValue(k Kind, basePrice decimal.Decimal) decimal.Decimal {
	if k == KindPercent {
		return hundred
	}
	return basePrice
}
