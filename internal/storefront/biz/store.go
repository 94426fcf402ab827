package biz

import (
	"context"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/internal/storefront/store"
)

// StoreService handles store business logic.
type StoreService struct {
	store store.Factory
}

// NewStoreService creates a new StoreService.
func NewStoreService(store store.Factory) *StoreService {
	return &StoreService{store: store}
}

// Create creates a new store. Referential integrity of userId is left
// to the storage engine.
func (s *StoreService) Create(ctx context.Context, st *model.Store) error {
	return s.store.Stores().Create(ctx, st)
}

// Get retrieves a store with its owning user and products inlined.
func (s *StoreService) Get(ctx context.Context, id uint64) (*model.Store, error) {
	return s.store.Stores().Get(ctx, id, true)
}

// List returns every store.
func (s *StoreService) List(ctx context.Context) ([]*model.Store, error) {
	return s.store.Stores().List(ctx)
}

// Update replaces the fields of an existing store.
func (s *StoreService) Update(ctx context.Context, id uint64, fields *model.Store) (*model.Store, error) {
	st, err := s.store.Stores().Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	st.Name = fields.Name
	st.UserID = fields.UserID

	if err := s.store.Stores().Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete removes a store and returns the deleted record.
func (s *StoreService) Delete(ctx context.Context, id uint64) (*model.Store, error) {
	return s.store.Stores().Delete(ctx, id)
}
