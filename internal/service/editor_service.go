package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/metrics"
	"github.com/sacvietnam/storefront/internal/model"
	"github.com/sacvietnam/storefront/internal/pricing"
)

type productAPI interface {
	CreateProduct(ctx context.Context, p *model.ProductPayload) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, p *model.ProductPayload) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

type submissionStore interface {
	// Claim records s as PENDING. It reports false when the key is already
	// held by another submission that has not failed in the same way.
	Claim(ctx context.Context, s *model.Submission) (bool, error)
	Complete(ctx context.Context, s *model.Submission) error
	FindByKey(ctx context.Context, key string) (*model.Submission, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]model.Submission, error)
	CountByProduct(ctx context.Context, productID string) (int, error)
}

type productEvicter interface {
	Delete(ctx context.Context, id string) error
}

var (
	msgNameRequired        = format.Text{En: "Please input Product Name", Vi: "Hãy nhập Tên Sản Phẩm"}
	msgDescriptionRequired = format.Text{En: "Please input Product Description", Vi: "Hãy nhập Mô Tả Sản Phẩm"}
	msgPriceInvalid        = format.Text{En: "Please input Product Price", Vi: "Hãy nhập Giá Sản Phẩm"}
	msgPriceTooLarge       = format.Text{En: "Price must not exceed %s", Vi: "Giá không được vượt quá %s"}
	msgInventoryInvalid    = format.Text{En: "Inventory must not be negative", Vi: "Số lượng tồn kho không được âm"}
	msgDiscountType        = format.Text{En: "Discount type must be percent or fixed", Vi: "Loại giảm giá phải là phần trăm hoặc cố định"}
	msgDiscountRange       = format.Text{En: "Discount must be between 0 and %s", Vi: "Giảm giá phải nằm trong khoảng 0 đến %s"}

	msgCreated      = format.Text{En: "Create product successfully", Vi: "Tạo sản phẩm thành công"}
	msgUpdated      = format.Text{En: "Update product successfully", Vi: "Cập nhật sản phẩm thành công"}
	msgSubmitFailed = format.Text{En: "Failed to create product", Vi: "Tạo sản phẩm thất bại"}
)

// ProductForm is what the product editor submits.
type ProductForm struct {
	Name          string
	Description   string
	Price         float64
	DiscountType  string
	DiscountValue float64
	Images        []string
	Inventory     int
}

type SubmitResult struct {
	Product  *model.Product `json:"product"`
	Message  string         `json:"message"`
	Replayed bool           `json:"replayed,omitempty"`
}

type ImageRef struct {
	FilePath string `json:"filepath"`
	UIDTemp  string `json:"uid_temp"`
}

// EditorState pre-fills the editor for an existing product.
type EditorState struct {
	Product       *model.Product `json:"product"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	DiscountType  string         `json:"discount_type"`
	DiscountValue float64        `json:"discount_value"`
	Inventory     int            `json:"inventory"`
	Images        []ImageRef     `json:"images"`
	PriceReading  string         `json:"price_reading"`
}

type EditorService struct {
	api     productAPI
	store   submissionStore
	cache   productEvicter
	metrics *metrics.ServerMetrics
}

func NewEditorService(api productAPI, store submissionStore, cache productEvicter, m *metrics.ServerMetrics) *EditorService {
	return &EditorService{api: api, store: store, cache: cache, metrics: m}
}

func (s *EditorService) Create(ctx context.Context, form ProductForm, idemKey string, lang format.Lang) (*SubmitResult, error) {
	return s.submit(ctx, model.ActionCreate, "", form, idemKey, lang)
}

func (s *EditorService) Update(ctx context.Context, id string, form ProductForm, idemKey string, lang format.Lang) (*SubmitResult, error) {
	return s.submit(ctx, model.ActionEdit, id, form, idemKey, lang)
}

func (s *EditorService) submit(ctx context.Context, action, id string, form ProductForm, idemKey string, lang format.Lang) (*SubmitResult, error) {
	payload, verrs := buildPayload(form, lang)
	if len(verrs) > 0 {
		return nil, verrs
	}

	idemKey = strings.TrimSpace(idemKey)
	if idemKey == "" {
		idemKey = uuid.NewString()
	}

	sub := &model.Submission{IdempotencyKey: idemKey, Action: action, ProductID: id, Status: model.SubmissionPending}
	claimed, err := s.store.Claim(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("claim idempotency key: %w", err)
	}
	if !claimed {
		return s.replay(ctx, action, id, idemKey, lang)
	}

	var product *model.Product
	if action == model.ActionEdit {
		product, err = s.api.UpdateProduct(ctx, id, payload)
	} else {
		product, err = s.api.CreateProduct(ctx, payload)
	}

	if err != nil {
		log.Error().Err(err).Str("action", action).Str("product_id", id).Msg("product submission failed")
		s.metrics.RemoteFailed(action)

		sub.Status = model.SubmissionFailed
		sub.ErrorMessage = err.Error()
		s.complete(ctx, sub)

		return nil, &RemoteError{Message: msgSubmitFailed.Pick(lang), Err: err}
	}

	if product.ID == "" {
		product.ID = id
	}
	sub.ProductID = product.ID
	sub.Status = model.SubmissionSucceeded
	s.complete(ctx, sub)

	if action == model.ActionEdit && s.cache != nil {
		if err := s.cache.Delete(ctx, product.ID); err != nil {
			log.Warn().Err(err).Str("product_id", product.ID).Msg("failed to evict cached product")
		}
	}

	log.Info().Str("action", action).Str("product_id", product.ID).Msg("product saved")
	return &SubmitResult{Product: product, Message: successMessage(action).Pick(lang)}, nil
}

// replay answers a request whose key is already held by an earlier submission.
func (s *EditorService) replay(ctx context.Context, action, id, idemKey string, lang format.Lang) (*SubmitResult, error) {
	prev, err := s.store.FindByKey(ctx, idemKey)
	if err != nil {
		return nil, fmt.Errorf("check idempotency key: %w", err)
	}
	if prev == nil {
		return nil, ErrSubmissionInFlight
	}
	if prev.Action != action || (action == model.ActionEdit && prev.ProductID != id) {
		return nil, fmt.Errorf("%w: key %q belongs to %s of product %q", ErrIdempotencyConflict, idemKey, prev.Action, prev.ProductID)
	}
	if prev.Status != model.SubmissionSucceeded {
		return nil, ErrSubmissionInFlight
	}

	log.Info().Str("key", idemKey).Str("product_id", prev.ProductID).Msg("replaying product submission")

	product, err := s.api.GetProduct(ctx, prev.ProductID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", prev.ProductID).Msg("replayed product could not be fetched, returning id only")
		product = &model.Product{ID: prev.ProductID}
	}

	return &SubmitResult{Product: product, Message: successMessage(action).Pick(lang), Replayed: true}, nil
}

func (s *EditorService) complete(ctx context.Context, sub *model.Submission) {
	if err := s.store.Complete(ctx, sub); err != nil {
		log.Warn().Err(err).Str("key", sub.IdempotencyKey).Msg("failed to record product submission")
	}
}

// Load returns the editor's initial values for product id.
func (s *EditorService) Load(ctx context.Context, id string) (*EditorState, error) {
	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		s.metrics.RemoteFailed("get")
		return nil, &RemoteError{Message: "failed to load product", Err: err}
	}

	images := make([]ImageRef, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageRef{FilePath: img})
	}

	discountType := p.Discount.Type
	if discountType == "" {
		discountType = string(pricing.KindPercent)
	}

	return &EditorState{
		Product:       p,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DiscountType:  discountType,
		DiscountValue: p.Discount.Value,
		Inventory:     p.Inventory,
		Images:        images,
		PriceReading:  priceReading(decimal.NewFromFloat(p.Price)),
	}, nil
}

// History lists the recorded submissions for a product, newest first.
func (s *EditorService) History(ctx context.Context, productID string, limit, offset int) ([]model.Submission, int, error) {
	total, err := s.store.CountByProduct(ctx, productID)
	if err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}
	subs, err := s.store.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return subs, total, nil
}

func successMessage(action string) format.Text {
	if action == model.ActionEdit {
		return msgUpdated
	}
	return msgCreated
}

func buildPayload(form ProductForm, lang format.Lang) (*model.ProductPayload, ValidationErrors) {
	var errs ValidationErrors

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: msgNameRequired.Pick(lang)})
	}
	description := strings.TrimSpace(form.Description)
	if description == "" {
		errs = append(errs, ValidationError{Field: "description", Message: msgDescriptionRequired.Pick(lang)})
	}
	price := decimal.NewFromFloat(form.Price)
	if form.Price < 0 {
		errs = append(errs, ValidationError{Field: "price", Message: msgPriceInvalid.Pick(lang)})
	} else if price.GreaterThan(pricing.MaxPrice) {
		errs = append(errs, ValidationError{
			Field:   "price",
			Message: fmt.Sprintf(msgPriceTooLarge.Pick(lang), pricing.MaxPrice.String()),
		})
	}
	if form.Inventory < 0 {
		errs = append(errs, ValidationError{Field: "inventory", Message: msgInventoryInvalid.Pick(lang)})
	}

	kind := pricing.Kind(form.DiscountType)
	if kind == "" {
		kind = pricing.KindPercent
	}
	value := form.DiscountValue
	// the discount input is disabled while the price is zero
	if form.Price == 0 {
		value = 0
	}

	switch kind {
	case pricing.KindPercent, pricing.KindFixed:
		if form.Price >= 0 {
			limit := pricing.MaxValue(kind, price)
			v := decimal.NewFromFloat(value)
			if v.IsNegative() || v.GreaterThan(limit) {
				errs = append(errs, ValidationError{
					Field:   "discount.value",
					Message: fmt.Sprintf(msgDiscountRange.Pick(lang), limit.String()),
				})
			}
		}
	default:
		errs = append(errs, ValidationError{Field: "discount.type", Message: msgDiscountType.Pick(lang)})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	images := make([]string, 0, len(form.Images))
	for _, img := range form.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	return &model.ProductPayload{
		Name:        name,
		Description: description,
		Price:       form.Price,
		Discount:    model.DiscountSpec{Type: string(kind), Value: value},
		Images:      images,
		Inventory:   form.Inventory,
	}, nil
}
