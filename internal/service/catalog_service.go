package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/metrics"
	"github.com/sacvietnam/storefront/internal/model"
	"github.com/sacvietnam/storefront/internal/pricing"
)

type productReader interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

type productCache interface {
	Get(ctx context.Context, id string) (*model.Product, error)
	Set(ctx context.Context, p *model.Product) error
}

type ProductView struct {
	Product *model.Product `json:"product"`
	Pricing *PriceView     `json:"pricing"`
	Cached  bool           `json:"-"`
}

type CatalogService struct {
	api     productReader
	cache   productCache
	pricing *PricingService
	metrics *metrics.ServerMetrics
}

func NewCatalogService(api productReader, cache productCache, pricing *PricingService, m *metrics.ServerMetrics) *CatalogService {
	return &CatalogService{api: api, cache: cache, pricing: pricing, metrics: m}
}

func (s *CatalogService) Product(ctx context.Context, id string, lang format.Lang) (*ProductView, error) {
	p, cached := s.fromCache(ctx, id)
	if p == nil {
		var err error
		p, err = s.api.GetProduct(ctx, id)
		if err != nil {
			s.metrics.RemoteFailed("get")
			return nil, &RemoteError{Message: "failed to load product", Err: err}
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, p); err != nil {
				log.Warn().Err(err).Str("product_id", id).Msg("failed to cache product")
			}
		}
	}

	view, err := s.pricing.Preview(p.Price, p.Discount, lang)
	if errors.Is(err, pricing.ErrInvalidArgument) {
		// the editor keeps a discount when the price is lowered later
		log.Warn().Err(err).Str("product_id", p.ID).Msg("stored discount out of range, showing base price")
		view, err = s.pricing.Preview(p.Price, model.DiscountSpec{Type: string(pricing.KindPercent)}, lang)
	}
	if err != nil {
		return nil, &RemoteError{Message: "product has invalid pricing", Err: err}
	}

	return &ProductView{Product: p, Pricing: view, Cached: cached}, nil
}

func (s *CatalogService) fromCache(ctx context.Context, id string) (*model.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	p, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
		return nil, false
	}
	return p, p != nil
}
