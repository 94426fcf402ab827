package biz

import (
	"context"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/internal/storefront/store"
)

// ProductService handles product business logic.
type ProductService struct {
	store store.Factory
}

// NewProductService creates a new ProductService.
func NewProductService(store store.Factory) *ProductService {
	return &ProductService{store: store}
}

// Create creates a new product. Referential integrity of storeId is
// left to the storage engine.
func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	return s.store.Products().Create(ctx, p)
}

// Get retrieves a product by id.
func (s *ProductService) Get(ctx context.Context, id uint64) (*model.Product, error) {
	return s.store.Products().Get(ctx, id)
}

// List returns every product with its store and the store's owning
// user inlined.
func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	return s.store.Products().List(ctx, true)
}

// Update replaces the fields of an existing product.
func (s *ProductService) Update(ctx context.Context, id uint64, fields *model.Product) (*model.Product, error) {
	p, err := s.store.Products().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = fields.Name
	p.Price = fields.Price
	p.StoreID = fields.StoreID

	if err := s.store.Products().Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a product and returns the deleted record.
func (s *ProductService) Delete(ctx context.Context, id uint64) (*model.Product, error) {
	return s.store.Products().Delete(ctx, id)
}
