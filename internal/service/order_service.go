package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecommerce/internal/cache"
	"ecommerce/internal/errors"
	"ecommerce/internal/model"
	"ecommerce/internal/repository"
)

const orderProductsCacheTTL = 5 * time.Minute

// OrderService exposes order domain operations, including the product link
// management that carries the duplicate-membership guard.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uint, orderDate *time.Time) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint) ([]model.Order, error)
	ListOrderProducts(ctx context.Context, orderID uint) ([]model.Product, error)
	AddProduct(ctx context.Context, orderID, productID uint) (*model.Order, error)
	RemoveProduct(ctx context.Context, orderID, productID uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cache       *cache.Client
}

// NewOrderService builds an OrderService over the three repositories.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	cache *cache.Client,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

func (s *orderService) productsCacheKey(orderID uint) string {
	return fmt.Sprintf("order:%d:products", orderID)
}

// CreateOrder validates that the referenced user exists, then persists an
// order with an empty product set. A nil orderDate defaults to now.
func (s *orderService) CreateOrder(ctx context.Context, userID uint, orderDate *time.Time) (*model.Order, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	order := &model.Order{UserID: userID}
	if orderDate != nil {
		order.OrderDate = *orderDate
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrdersByUser returns the user's orders. An empty result is reported as
// not found rather than an empty list.
func (s *orderService) ListOrdersByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errors.ErrNoOrdersForUser
	}
	return orders, nil
}

// ListOrderProducts returns the products linked to an order. An existing
// order with zero products is reported as not found, matching the
// list-orders policy.
func (s *orderService) ListOrderProducts(ctx context.Context, orderID uint) ([]model.Product, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, s.productsCacheKey(orderID)); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	products, err := s.orderRepo.ListProducts(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errors.ErrNoProductsInOrder
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, s.productsCacheKey(orderID), payload, orderProductsCacheTTL)
	}
	return products, nil
}

// AddProduct links a product to an order after verifying both exist and the
// pair is not already linked. The composite primary key on order_product is
// the last line of defense under concurrent adds.
func (s *orderService) AddProduct(ctx context.Context, orderID, productID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidOrderID
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidProductID
		}
		return nil, err
	}

	linked, err := s.orderRepo.HasProduct(ctx, orderID, productID)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, errors.ErrDuplicateProduct
	}

	if err := s.orderRepo.AddProduct(ctx, order, product); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, s.productsCacheKey(orderID))

	products, err := s.orderRepo.ListProducts(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Products = products
	return order, nil
}

// RemoveProduct unlinks exactly one (order, product) association.
func (s *orderService) RemoveProduct(ctx context.Context, orderID, productID uint) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrInvalidOrderID
		}
		return err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrInvalidProductID
		}
		return err
	}

	linked, err := s.orderRepo.HasProduct(ctx, orderID, productID)
	if err != nil {
		return err
	}
	if !linked {
		return errors.ErrProductNotInOrder
	}

	if err := s.orderRepo.RemoveProduct(ctx, order, product); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, s.productsCacheKey(orderID))
	return nil
}
