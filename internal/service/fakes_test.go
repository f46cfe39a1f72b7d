package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/sacvietnam/storefront/internal/model"
)

type fakeAPI struct {
	mu       sync.Mutex
	products map[string]*model.Product
	created  []*model.ProductPayload
	updated  map[string]*model.ProductPayload
	failWith error
	nextID   string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{products: map[string]*model.Product{}, updated: map[string]*model.ProductPayload{}, nextID: "p-new"}
}

func (f *fakeAPI) CreateProduct(_ context.Context, p *model.ProductPayload) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.created = append(f.created, p)
	prod := toProduct(f.nextID, p)
	f.products[prod.ID] = prod
	return prod, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, id string, p *model.ProductPayload) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.updated[id] = p
	prod := toProduct(id, p)
	f.products[id] = prod
	return prod, nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func toProduct(id string, p *model.ProductPayload) *model.Product {
	return &model.Product{
		ID: id, Name: p.Name, Description: p.Description, Price: p.Price,
		Discount: p.Discount, Images: p.Images, Inventory: p.Inventory,
	}
}

type fakeStore struct {
	mu   sync.Mutex
	subs map[string]*model.Submission
}

func newFakeStore() *fakeStore {
	return &fakeStore{subs: map[string]*model.Submission{}}
}

func (s *fakeStore) Claim(_ context.Context, sub *model.Submission) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.subs[sub.IdempotencyKey]; ok {
		if prev.Status != model.SubmissionFailed || prev.Action != sub.Action || prev.ProductID != sub.ProductID {
			return false, nil
		}
	}
	cp := *sub
	cp.Status = model.SubmissionPending
	cp.ErrorMessage = ""
	s.subs[sub.IdempotencyKey] = &cp
	return true, nil
}

func (s *fakeStore) Complete(_ context.Context, sub *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.subs[sub.IdempotencyKey]
	if !ok || prev.Status != model.SubmissionPending {
		return errors.New("no pending submission")
	}
	if sub.ProductID != "" {
		prev.ProductID = sub.ProductID
	}
	prev.Status = sub.Status
	prev.ErrorMessage = sub.ErrorMessage
	s.subs[sub.IdempotencyKey] = prev
	return nil
}

func (s *fakeStore) FindByKey(_ context.Context, key string) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[key]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (s *fakeStore) ListByProduct(_ context.Context, productID string, limit, offset int) ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []model.Submission
	for _, sub := range s.subs {
		if sub.ProductID == productID {
			all = append(all, *sub)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].IdempotencyKey < all[j].IdempotencyKey })
	if offset >= len(all) {
		return []model.Submission{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (s *fakeStore) CountByProduct(_ context.Context, productID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sub := range s.subs {
		if sub.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type fakeCache struct {
	mu      sync.Mutex
	items   map[string]*model.Product
	evicted []string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]*model.Product{}}
}

func (c *fakeCache) Get(_ context.Context, id string) (*model.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[id], nil
}

func (c *fakeCache) Set(_ context.Context, p *model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.items[p.ID] = p
	return nil
}

func (c *fakeCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evicted = append(c.evicted, id)
	delete(c.items, id)
	return nil
}

type fakeUploader struct {
	fail map[string]bool
}

func (u *fakeUploader) UploadTemp(_ context.Context, filename string, r io.Reader, folder string) (string, error) {
	if u.fail[filename] {
		return "", errors.New("storage unavailable")
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	return "/temp/" + folder + "/" + filename, nil
}

type fakeReleases struct {
	rel *model.AppRelease
}

func (r *fakeReleases) Latest(_ context.Context, platform string) (*model.AppRelease, error) {
	if r.rel == nil || r.rel.Platform != platform {
		return nil, pgx.ErrNoRows
	}
	return r.rel, nil
}
