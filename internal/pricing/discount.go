package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind is the wire name of a discount variant.
type Kind string

const (
	KindPercent Kind = "percent"
	KindFixed   Kind = "fixed"
)

// Discount is either Percent or Fixed. The unexported method keeps the set closed.
type Discount interface {
	Kind() Kind
	Amount() decimal.Decimal
	discount()
}

// Percent takes Rate percent (0-100) off the base price.
type Percent struct {
	Rate decimal.Decimal
}

// Fixed takes a fixed money Value off the base price.
type Fixed struct {
	Value decimal.Decimal
}

func (Percent) Kind() Kind                { return KindPercent }
func (p Percent) Amount() decimal.Decimal { return p.Rate }
func (Percent) discount()                 {}

func (Fixed) Kind() Kind                { return KindFixed }
func (f Fixed) Amount() decimal.Decimal { return f.Value }
func (Fixed) discount()                 {}

// NoDiscount is a zero percent discount, the editor's initial state.
var NoDiscount Discount = Percent{Rate: decimal.Zero}

// ParseDiscount builds a Discount from its wire representation.
func ParseDiscount(kind string, value float64) (Discount, error) {
	v := decimal.NewFromFloat(value)
	switch Kind(kind) {
	case KindPercent:
		return Percent{Rate: v}, nil
	case KindFixed:
		return Fixed{Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidArgument, kind)
	}
}
