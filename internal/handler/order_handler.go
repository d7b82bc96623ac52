package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/service"
)

// OrderHandler bundles order HTTP handlers.
type OrderHandler struct {
	svc service.OrderService
}

// NewOrderHandler creates a handler layer.
func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// OrderRequest is the serialization contract for order creation. OrderDate
// is optional and defaults to the server time.
type OrderRequest struct {
	UserID    uint       `json:"user_id" validate:"required"`
	OrderDate *time.Time `json:"order_date"`
}

// CreateOrder godoc
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body OrderRequest true "Order payload"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	order, err := h.svc.CreateOrder(c.Request().Context(), req.UserID, req.OrderDate)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

// ListOrdersByUser godoc
// @Summary List orders for a user
// @Tags orders
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/user/{user_id} [get]
func (h *OrderHandler) ListOrdersByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	orders, err := h.svc.ListOrdersByUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// ListOrderProducts godoc
// @Summary List products in an order
// @Tags orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{order_id}/products [get]
func (h *OrderHandler) ListOrderProducts(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}
	products, err := h.svc.ListOrderProducts(c.Request().Context(), orderID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// AddProduct godoc
// @Summary Link a product to an order
// @Description Rejects the link when the pair already exists.
// @Tags orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Router /orders/{order_id}/add_product/{product_id} [put]
func (h *OrderHandler) AddProduct(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "product_id")
	if err != nil {
		return err
	}

	order, err := h.svc.AddProduct(c.Request().Context(), orderID, productID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// RemoveProduct godoc
// @Summary Unlink a product from an order
// @Tags orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{order_id}/remove_product/{product_id} [delete]
func (h *OrderHandler) RemoveProduct(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "product_id")
	if err != nil {
		return err
	}

	if err := h.svc.RemoveProduct(c.Request().Context(), orderID, productID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("product %d removed from order %d", productID, orderID),
	})
}
