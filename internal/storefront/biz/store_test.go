package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/pkg/errno"
)

func TestStoreService_UpdateMissingStore(t *testing.T) {
	svc := NewStoreService(newTestFactory(t))

	_, err := svc.Update(context.Background(), 42, &model.Store{Name: "Nowhere", UserID: 1})
	assert.True(t, errors.Is(err, errno.ErrNotFound))
}

func TestStoreService_CreateRequiresExistingUser(t *testing.T) {
	svc := NewStoreService(newTestFactory(t))

	err := svc.Create(context.Background(), &model.Store{Name: "Ghost", UserID: 999})
	assert.True(t, errors.Is(err, errno.ErrConstraint), "got %v", err)
}

func TestStoreService_GetInlinesUserAndProducts(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewStoreService(factory)
	ctx := context.Background()

	user := &model.User{Name: "Ana"}
	require.NoError(t, factory.Users().Create(ctx, user))

	st := &model.Store{Name: "Corner Shop", UserID: user.ID}
	require.NoError(t, svc.Create(ctx, st))
	require.NoError(t, factory.Products().Create(ctx, &model.Product{Name: "Widget", Price: 9.99, StoreID: st.ID}))

	got, err := svc.Get(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "Ana", got.User.Name)
	require.Len(t, got.Products, 1)
}

func TestProductService_UpdateMissingProduct(t *testing.T) {
	svc := NewProductService(newTestFactory(t))

	_, err := svc.Update(context.Background(), 42, &model.Product{Name: "Nothing", Price: 1, StoreID: 1})
	assert.True(t, errors.Is(err, errno.ErrNotFound))
}

func TestProductService_ListInlinesStoreAndOwner(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewProductService(factory)
	ctx := context.Background()

	user := &model.User{Name: "Ana"}
	require.NoError(t, factory.Users().Create(ctx, user))
	st := &model.Store{Name: "Corner Shop", UserID: user.ID}
	require.NoError(t, factory.Stores().Create(ctx, st))
	require.NoError(t, svc.Create(ctx, &model.Product{Name: "Widget", Price: 9.99, StoreID: st.ID}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Store)
	require.NotNil(t, list[0].Store.User)
	assert.Equal(t, "Ana", list[0].Store.User.Name)
}
