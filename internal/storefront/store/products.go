package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/kart-io/storefront/internal/model"
)

type products struct {
	db *gorm.DB
}

// Create inserts a new product. A storeId referencing a missing store
// fails with a constraint violation from the storage engine.
func (p *products) Create(ctx context.Context, product *model.Product) error {
	if err := ready(p.db); err != nil {
		return err
	}
	return translate(p.db.WithContext(ctx).Create(product).Error)
}

// Get retrieves a product by id.
func (p *products) Get(ctx context.Context, id uint64) (*model.Product, error) {
	if err := ready(p.db); err != nil {
		return nil, err
	}

	var product model.Product
	if err := p.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// List returns every product, optionally with each product's store and
// that store's owning user inlined.
func (p *products) List(ctx context.Context, withRelated bool) ([]*model.Product, error) {
	if err := ready(p.db); err != nil {
		return nil, err
	}

	tx := p.db.WithContext(ctx)
	if withRelated {
		tx = tx.Preload("Store.User")
	}

	products := []*model.Product{}
	if err := tx.Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

// Update saves the full set of fields on an existing product.
func (p *products) Update(ctx context.Context, product *model.Product) error {
	if err := ready(p.db); err != nil {
		return err
	}
	return translate(p.db.WithContext(ctx).Save(product).Error)
}

// Delete removes a product by id and returns the deleted record.
func (p *products) Delete(ctx context.Context, id uint64) (*model.Product, error) {
	if err := ready(p.db); err != nil {
		return nil, err
	}

	var product model.Product
	if err := p.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := p.db.WithContext(ctx).Delete(&model.Product{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}
