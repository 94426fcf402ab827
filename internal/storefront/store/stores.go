package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/kart-io/storefront/internal/model"
)

type stores struct {
	db *gorm.DB
}

// Create inserts a new store. A userId referencing a missing user fails
// with a constraint violation from the storage engine.
func (s *stores) Create(ctx context.Context, store *model.Store) error {
	if err := ready(s.db); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Create(store).Error)
}

// Get retrieves a store by id, optionally with its owning user and
// products inlined.
func (s *stores) Get(ctx context.Context, id uint64, withRelated bool) (*model.Store, error) {
	if err := ready(s.db); err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx)
	if withRelated {
		tx = tx.Preload("User").Preload("Products")
	}

	var store model.Store
	if err := tx.First(&store, id).Error; err != nil {
		return nil, translate(err)
	}
	return &store, nil
}

// List returns every store.
func (s *stores) List(ctx context.Context) ([]*model.Store, error) {
	if err := ready(s.db); err != nil {
		return nil, err
	}

	stores := []*model.Store{}
	if err := s.db.WithContext(ctx).Find(&stores).Error; err != nil {
		return nil, translate(err)
	}
	return stores, nil
}

// Update saves the full set of fields on an existing store.
func (s *stores) Update(ctx context.Context, store *model.Store) error {
	if err := ready(s.db); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Save(store).Error)
}

// Delete removes a store by id and returns the deleted record.
// Stores that still have products are rejected by the FK constraint.
func (s *stores) Delete(ctx context.Context, id uint64) (*model.Store, error) {
	if err := ready(s.db); err != nil {
		return nil, err
	}

	var store model.Store
	if err := s.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.WithContext(ctx).Delete(&model.Store{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &store, nil
}
