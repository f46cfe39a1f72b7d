package service

import (
	"github.com/shopspring/decimal"

	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/model"
	"github.com/sacvietnam/storefront/internal/pricing"
)

type PriceView struct {
	OriginalPrice       float64 `json:"original_price"`
	DiscountedPrice     float64 `json:"discounted_price"`
	DiscountAmount      float64 `json:"discount_amount"`
	Badge               string  `json:"badge,omitempty"`
	Discounted          bool    `json:"discounted"`
	OriginalPriceText   string  `json:"original_price_text"`
	DiscountedPriceText string  `json:"discounted_price_text"`
	DiscountAmountText  string  `json:"discount_amount_text"`
	PriceReading        string  `json:"price_reading"`
}

type PricingService struct {
	formatters map[format.Lang]*format.Currency
}

func NewPricingService() *PricingService {
	return &PricingService{
		formatters: map[format.Lang]*format.Currency{
			format.English:    format.NewVND(format.English.Tag()),
			format.Vietnamese: format.NewVND(format.Vietnamese.Tag()),
		},
	}
}

func (s *PricingService) formatter(lang format.Lang) *format.Currency {
	if f, ok := s.formatters[lang]; ok {
		return f
	}
	return s.formatters[format.Vietnamese]
}

// Preview prices a product the way the storefront shows it.
func (s *PricingService) Preview(price float64, spec model.DiscountSpec, lang format.Lang) (*PriceView, error) {
	if spec.Type == "" {
		spec.Type = string(pricing.KindPercent)
	}
	discount, err := pricing.ParseDiscount(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}

	f := s.formatter(lang)
	base := decimal.NewFromFloat(price)
	d, err := pricing.ComputeDisplay(base, discount, f)
	if err != nil {
		return nil, err
	}

	return &PriceView{
		OriginalPrice:       d.OriginalPrice.InexactFloat64(),
		DiscountedPrice:     d.DiscountedPrice.InexactFloat64(),
		DiscountAmount:      d.DiscountAmount.InexactFloat64(),
		Badge:               d.BadgeText,
		Discounted:          d.Discounted,
		OriginalPriceText:   f.Currency(d.OriginalPrice),
		DiscountedPriceText: f.Currency(d.DiscountedPrice),
		DiscountAmountText:  f.Currency(d.DiscountAmount),
		PriceReading:        priceReading(base),
	}, nil
}

// priceReading spells price in words, or returns "" when it is out of range.
func priceReading(price decimal.Decimal) string {
	if price.IsNegative() || price.GreaterThan(pricing.MaxPrice) {
		return ""
	}
	return format.PronounceVND(price.Round(0).IntPart())
}
