package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/pkg/db"
	"github.com/kart-io/storefront/pkg/errno"
)

// newTestFactory opens an in-memory sqlite database with foreign key
// enforcement and migrates the schema. The pool is pinned to a single
// connection so the memory database survives across queries.
func newTestFactory(t *testing.T) Factory {
	t.Helper()

	gdb, err := db.New(&db.Options{
		Driver:             db.DriverSQLite,
		Path:               "file::memory:",
		MaxIdleConnections: 1,
		MaxOpenConnections: 1,
		LogLevel:           1,
	})
	require.NoError(t, err)

	factory := New(gdb)
	require.NoError(t, factory.AutoMigrate())
	t.Cleanup(func() { _ = factory.Close() })

	return factory
}

func seedUser(t *testing.T, factory Factory, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name}
	require.NoError(t, factory.Users().Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func seedStore(t *testing.T, factory Factory, name string, userID uint64) *model.Store {
	t.Helper()
	st := &model.Store{Name: name, UserID: userID}
	require.NoError(t, factory.Stores().Create(context.Background(), st))
	return st
}

func TestUserStore_CRUD(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	email := "ana@example.com"
	user := &model.User{Name: "Ana", Email: &email, Password: "hashed"}
	require.NoError(t, factory.Users().Create(ctx, user))

	got, err := factory.Users().Get(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)

	got.Name = "Ana Maria"
	require.NoError(t, factory.Users().Update(ctx, got))

	list, err := factory.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Maria", list[0].Name)

	deleted, err := factory.Users().Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", deleted.Name)

	_, err = factory.Users().Get(ctx, user.ID, false)
	assert.True(t, errors.Is(err, errno.ErrNotFound))
}

func TestUserStore_GetMissing(t *testing.T) {
	factory := newTestFactory(t)

	_, err := factory.Users().Get(context.Background(), 42, false)
	assert.True(t, errors.Is(err, errno.ErrNotFound))
}

func TestUserStore_DeleteMissing(t *testing.T) {
	factory := newTestFactory(t)

	_, err := factory.Users().Delete(context.Background(), 42)
	assert.True(t, errors.Is(err, errno.ErrNotFound))
}

func TestUserStore_GetWithStores(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	user := seedUser(t, factory, "Ana")
	seedStore(t, factory, "Corner Shop", user.ID)
	seedStore(t, factory, "Main Street", user.ID)

	got, err := factory.Users().Get(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Len(t, got.Stores, 2)

	// Without the flag the relation stays empty.
	got, err = factory.Users().Get(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, got.Stores)
}

func TestStoreStore_OrphanUserRejected(t *testing.T) {
	factory := newTestFactory(t)

	err := factory.Stores().Create(context.Background(), &model.Store{Name: "Ghost", UserID: 999})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrConstraint), "got %v", err)
}

func TestUserStore_DeleteWithStoresRejected(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	user := seedUser(t, factory, "Ana")
	seedStore(t, factory, "Corner Shop", user.ID)

	_, err := factory.Users().Delete(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrConstraint), "got %v", err)

	// The user must survive the rejected delete.
	_, err = factory.Users().Get(ctx, user.ID, false)
	assert.NoError(t, err)
}

func TestStoreStore_GetWithRelated(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	user := seedUser(t, factory, "Ana")
	st := seedStore(t, factory, "Corner Shop", user.ID)

	product := &model.Product{Name: "Widget", Price: 9.99, StoreID: st.ID}
	require.NoError(t, factory.Products().Create(ctx, product))

	got, err := factory.Stores().Get(ctx, st.ID, true)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "Ana", got.User.Name)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Widget", got.Products[0].Name)
}

func TestStoreStore_DeleteWithProductsRejected(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	user := seedUser(t, factory, "Ana")
	st := seedStore(t, factory, "Corner Shop", user.ID)
	require.NoError(t, factory.Products().Create(ctx, &model.Product{Name: "Widget", Price: 1, StoreID: st.ID}))

	_, err := factory.Stores().Delete(ctx, st.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrConstraint), "got %v", err)
}

func TestProductStore_CRUDAndEagerList(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	user := seedUser(t, factory, "Ana")
	st := seedStore(t, factory, "Corner Shop", user.ID)

	product := &model.Product{Name: "Widget", Price: 9.99, StoreID: st.ID}
	require.NoError(t, factory.Products().Create(ctx, product))

	got, err := factory.Products().Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Price)

	list, err := factory.Products().List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Store)
	require.NotNil(t, list[0].Store.User)
	assert.Equal(t, "Ana", list[0].Store.User.Name)

	got.Price = 4.50
	require.NoError(t, factory.Products().Update(ctx, got))

	deleted, err := factory.Products().Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.50, deleted.Price)
}

func TestProductStore_OrphanStoreRejected(t *testing.T) {
	factory := newTestFactory(t)

	err := factory.Products().Create(context.Background(), &model.Product{Name: "Ghost", Price: 1, StoreID: 999})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrConstraint), "got %v", err)
}

func TestUserStore_DuplicateEmailRejected(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	email := "ana@example.com"
	require.NoError(t, factory.Users().Create(ctx, &model.User{Name: "Ana", Email: &email}))

	err := factory.Users().Create(ctx, &model.User{Name: "Other", Email: &email})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrConstraint), "got %v", err)
}

func TestNilHandleFailsWithConnectionError(t *testing.T) {
	factory := New(nil)
	ctx := context.Background()

	assert.True(t, errors.Is(factory.AutoMigrate(), errno.ErrConnection))
	assert.True(t, errors.Is(factory.Users().Create(ctx, &model.User{Name: "x"}), errno.ErrConnection))

	_, err := factory.Users().List(ctx)
	assert.True(t, errors.Is(err, errno.ErrConnection))

	_, err = factory.Stores().Get(ctx, 1, false)
	assert.True(t, errors.Is(err, errno.ErrConnection))

	_, err = factory.Products().Delete(ctx, 1)
	assert.True(t, errors.Is(err, errno.ErrConnection))

	// Closing a factory that never connected is a no-op.
	assert.NoError(t, factory.Close())
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *errno.Errno
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "sqlite fk message", err: errors.New("FOREIGN KEY constraint failed"), want: errno.ErrConstraint},
		{name: "mysql fk message", err: errors.New("Error 1452: a foreign key constraint fails"), want: errno.ErrConstraint},
		{name: "postgres fk message", err: errors.New(`insert violates foreign key constraint "fk_stores_user"`), want: errno.ErrConstraint},
		{name: "mysql duplicate", err: errors.New("Error 1062: Duplicate entry 'a@b.c'"), want: errno.ErrConstraint},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: users.email"), want: errno.ErrConstraint},
		{name: "anything else", err: errors.New("disk I/O error"), want: errno.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestTranslatePreservesErrno(t *testing.T) {
	in := errno.ErrNotFound.WithMessage("user not found")
	out := translate(in)
	assert.Equal(t, in, out)
}
