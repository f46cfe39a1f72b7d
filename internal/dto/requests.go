package dto

import (
	"github.com/sacvietnam/storefront/internal/model"
	"github.com/sacvietnam/storefront/internal/service"
)

type DiscountRequest struct {
	Type  string  `json:"type" binding:"omitempty,oneof=percent fixed"`
	Value float64 `json:"value"`
}

// ProductRequest is the editor form. Field-level rules live in the editor
// service so their messages can be localized.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Discount    DiscountRequest `json:"discount"`
	Images      []string        `json:"images"`
	Inventory   int             `json:"inventory"`
}

func (r ProductRequest) Form() service.ProductForm {
	return service.ProductForm{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		DiscountType:  r.Discount.Type,
		DiscountValue: r.Discount.Value,
		Images:        r.Images,
		Inventory:     r.Inventory,
	}
}

type PricingPreviewRequest struct {
	Price    float64         `json:"price" binding:"gte=0"`
	Discount DiscountRequest `json:"discount"`
}

func (r PricingPreviewRequest) Spec() model.DiscountSpec {
	return model.DiscountSpec{Type: r.Discount.Type, Value: r.Discount.Value}
}
