// Package biz implements the business services sitting between the HTTP
// handlers and the persistence gateway.
package biz

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/internal/storefront/store"
	"github.com/kart-io/storefront/pkg/errno"
)

// UserService handles user business logic.
//
// Passwords cross this boundary in plain text exactly once: they are
// bcrypt-hashed here before reaching the gateway.
type UserService struct {
	store store.Factory
}

// NewUserService creates a new UserService.
func NewUserService(store store.Factory) *UserService {
	return &UserService{store: store}
}

// Create creates a new user, hashing the password when one is supplied.
func (s *UserService) Create(ctx context.Context, user *model.User) error {
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return errno.ErrStorage.WithCause(err)
		}
		user.Password = string(hashed)
	}
	return s.store.Users().Create(ctx, user)
}

// Get retrieves a user with its stores inlined.
func (s *UserService) Get(ctx context.Context, id uint64) (*model.User, error) {
	return s.store.Users().Get(ctx, id, true)
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.store.Users().List(ctx)
}

// Update replaces the fields of an existing user. The update never
// creates a row: a missing id fails with not-found.
func (s *UserService) Update(ctx context.Context, id uint64, fields *model.User) (*model.User, error) {
	user, err := s.store.Users().Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	user.Name = fields.Name
	user.Email = fields.Email
	if fields.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(fields.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errno.ErrStorage.WithCause(err)
		}
		user.Password = string(hashed)
	}

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and returns the deleted record.
func (s *UserService) Delete(ctx context.Context, id uint64) (*model.User, error) {
	return s.store.Users().Delete(ctx, id)
}
