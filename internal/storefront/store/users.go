package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/kart-io/storefront/internal/model"
)

type users struct {
	db *gorm.DB
}

// Create inserts a new user.
func (u *users) Create(ctx context.Context, user *model.User) error {
	if err := ready(u.db); err != nil {
		return err
	}
	return translate(u.db.WithContext(ctx).Create(user).Error)
}

// Get retrieves a user by id, optionally with its stores inlined.
func (u *users) Get(ctx context.Context, id uint64, withStores bool) (*model.User, error) {
	if err := ready(u.db); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx)
	if withStores {
		tx = tx.Preload("Stores")
	}

	var user model.User
	if err := tx.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// List returns every user.
func (u *users) List(ctx context.Context) ([]*model.User, error) {
	if err := ready(u.db); err != nil {
		return nil, err
	}

	users := []*model.User{}
	if err := u.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// Update saves the full set of fields on an existing user.
func (u *users) Update(ctx context.Context, user *model.User) error {
	if err := ready(u.db); err != nil {
		return err
	}
	return translate(u.db.WithContext(ctx).Save(user).Error)
}

// Delete removes a user by id and returns the deleted record.
// Users that still own stores are rejected by the FK constraint.
func (u *users) Delete(ctx context.Context, id uint64) (*model.User, error) {
	if err := ready(u.db); err != nil {
		return nil, err
	}

	var user model.User
	if err := u.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := u.db.WithContext(ctx).Delete(&model.User{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
