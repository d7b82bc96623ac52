package repository

import (
	"context"

	"gorm.io/gorm"

	"ecommerce/internal/model"
)

// OrderRepository defines order persistence operations, including the
// order_product association.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	ListProducts(ctx context.Context, orderID uint) ([]model.Product, error)
	HasProduct(ctx context.Context, orderID, productID uint) (bool, error)
	AddProduct(ctx context.Context, order *model.Order, product *model.Product) error
	RemoveProduct(ctx context.Context, order *model.Order, product *model.Product) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListProducts(ctx context.Context, orderID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Model(&model.Order{ID: orderID}).
		Association("Products").
		Find(&products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// HasProduct checks join-table membership for a single (order, product) pair.
func (r *orderRepository) HasProduct(ctx context.Context, orderID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("order_product").
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *orderRepository) AddProduct(ctx context.Context, order *model.Order, product *model.Product) error {
	return r.db.WithContext(ctx).Model(order).Association("Products").Append(product)
}

func (r *orderRepository) RemoveProduct(ctx context.Context, order *model.Order, product *model.Product) error {
	return r.db.WithContext(ctx).Model(order).Association("Products").Delete(product)
}
