// Package store implements the persistence gateway for the storefront
// entities. It is the only component that touches the database; all
// operations translate driver failures into the errno taxonomy.
package store

import (
	"context"

	"github.com/kart-io/storefront/internal/model"
)

// Factory defines the factory interface for creating entity stores.
//
// A Factory is constructed once from a database handle and passed
// explicitly into the router, so tests can substitute their own.
type Factory interface {
	Users() UserStore
	Stores() StoreStore
	Products() ProductStore
	AutoMigrate() error
	Close() error
}

// UserStore defines the user storage interface.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uint64, withStores bool) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint64) (*model.User, error)
}

// StoreStore defines the store storage interface.
type StoreStore interface {
	Create(ctx context.Context, store *model.Store) error
	Get(ctx context.Context, id uint64, withRelated bool) (*model.Store, error)
	List(ctx context.Context) ([]*model.Store, error)
	Update(ctx context.Context, store *model.Store) error
	Delete(ctx context.Context, id uint64) (*model.Store, error)
}

// ProductStore defines the product storage interface.
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	Get(ctx context.Context, id uint64) (*model.Product, error)
	List(ctx context.Context, withRelated bool) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint64) (*model.Product, error)
}
