package store

import (
	"gorm.io/gorm"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/pkg/errno"
)

// datastore implements the Factory interface over a gorm handle.
type datastore struct {
	db *gorm.DB
}

// New creates a Factory backed by the given database handle.
//
// db may be nil when the connection could not be established at startup;
// the server starts anyway and every operation then fails with a
// connection error at call time.
func New(db *gorm.DB) Factory {
	return &datastore{db: db}
}

// Users returns the user store.
func (ds *datastore) Users() UserStore {
	return &users{db: ds.db}
}

// Stores returns the store store.
func (ds *datastore) Stores() StoreStore {
	return &stores{db: ds.db}
}

// Products returns the product store.
func (ds *datastore) Products() ProductStore {
	return &products{db: ds.db}
}

// AutoMigrate migrates the database schema.
func (ds *datastore) AutoMigrate() error {
	if ds.db == nil {
		return errno.ErrConnection
	}
	return ds.db.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Product{},
	)
}

// Close closes the underlying connection.
func (ds *datastore) Close() error {
	if ds.db == nil {
		return nil
	}
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ready guards operations against a gateway that never connected.
func ready(db *gorm.DB) error {
	if db == nil {
		return errno.ErrConnection
	}
	return nil
}
