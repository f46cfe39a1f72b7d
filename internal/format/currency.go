package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency renders money with locale grouping, the unit's standard scale and a symbol suffix.
type Currency struct {
	printer *message.Printer
	scale   int
	symbol  string
}

func NewCurrency(tag language.Tag, unit currency.Unit, symbol string) *Currency {
	scale, _ := currency.Standard.Rounding(unit)
	return &Currency{
		printer: message.NewPrinter(tag),
		scale:   scale,
		symbol:  symbol,
	}
}

// NewVND is the shop's default: Vietnamese dong, no fraction digits, "₫" suffix.
func NewVND(tag language.Tag) *Currency {
	return NewCurrency(tag, currency.MustParseISO("VND"), "₫")
}

func (c *Currency) Currency(amount decimal.Decimal) string {
	s := c.Number(amount)
	if c.symbol == "" {
		return s
	}
	return s + " " + c.symbol
}

// Number is the grouped amount without the symbol.
func (c *Currency) Number(amount decimal.Decimal) string {
	v := amount.Round(int32(c.scale)).InexactFloat64()
	return c.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(c.scale),
		number.MaxFractionDigits(c.scale),
	))
}

// Grouping renders plain numbers with thousands separators, as the editor's
// number inputs do.
type Grouping struct {
	printer *message.Printer
}

func NewGrouping(tag language.Tag) *Grouping {
	return &Grouping{printer: message.NewPrinter(tag)}
}

func (g *Grouping) Currency(amount decimal.Decimal) string {
	return g.printer.Sprintf("%v", number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(2)))
}
