package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecommerce/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}))
	return db
}

func TestUserRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Name: "A", Address: "1 St", Email: "a@x.com"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "1 St", got.Address)
	assert.Equal(t, "a@x.com", got.Email)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUserRepository_EmailUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Name: "A", Address: "1 St", Email: "a@x.com"}))

	err := repo.Create(ctx, &model.User{Name: "B", Address: "2 St", Email: "a@x.com"})
	assert.Equal(t, gorm.ErrDuplicatedKey, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestOrderRepository_ProductLinks(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()

	user := &model.User{Name: "A", Address: "1 St", Email: "a@x.com"}
	require.NoError(t, users.Create(ctx, user))

	product := &model.Product{ProductName: "Widget", Price: decimal.NewFromFloat(9.99)}
	require.NoError(t, products.Create(ctx, product))

	order := &model.Order{UserID: user.ID}
	require.NoError(t, orders.Create(ctx, order))
	assert.False(t, order.OrderDate.IsZero(), "order date defaults on create")

	linked, err := orders.HasProduct(ctx, order.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, linked)

	require.NoError(t, orders.AddProduct(ctx, order, product))

	linked, err = orders.HasProduct(ctx, order.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, linked)

	count, err := products.CountOrders(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	list, err := orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Widget", list[0].ProductName)

	require.NoError(t, orders.RemoveProduct(ctx, order, product))

	linked, err = orders.HasProduct(ctx, order.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, linked)

	count, err = products.CountOrders(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestOrderRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()

	owner := &model.User{Name: "A", Address: "1 St", Email: "a@x.com"}
	other := &model.User{Name: "B", Address: "2 St", Email: "b@x.com"}
	require.NoError(t, users.Create(ctx, owner))
	require.NoError(t, users.Create(ctx, other))

	require.NoError(t, orders.Create(ctx, &model.Order{UserID: owner.ID}))
	require.NoError(t, orders.Create(ctx, &model.Order{UserID: owner.ID}))
	require.NoError(t, orders.Create(ctx, &model.Order{UserID: other.ID}))

	got, err := orders.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := orders.ListByUser(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &model.Product{ProductName: "Widget", Price: decimal.NewFromFloat(9.99)}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.ProductName)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(9.99)))

	byName, err := repo.FindByName(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, product.ID, byName.ID)

	got.Price = decimal.NewFromFloat(12.00)
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(12.00)))

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = repo.FindByID(ctx, product.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
