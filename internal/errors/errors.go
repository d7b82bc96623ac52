package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when a product lookup misses.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order lookup misses.
	ErrOrderNotFound = errors.New("order not found")
	// ErrEmailTaken is returned when a user email is already registered.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrProductInUse is returned when deleting a product still linked to orders.
	ErrProductInUse = errors.New("cannot delete product because it is associated with orders")
	// ErrDuplicateProduct is returned when linking a product already in the order.
	ErrDuplicateProduct = errors.New("product already exists in the order")
	// ErrProductNotInOrder is returned when unlinking a product the order does not have.
	ErrProductNotInOrder = errors.New("product not found in the order")
	// ErrNoOrdersForUser is returned when a user has no orders.
	ErrNoOrdersForUser = errors.New("no orders found for this user")
	// ErrNoProductsInOrder is returned when an order has no products.
	ErrNoProductsInOrder = errors.New("no products found for this order")
	// ErrInvalidOrderID is returned when a link operation references a missing order.
	ErrInvalidOrderID = errors.New("invalid order ID")
	// ErrInvalidProductID is returned when a link operation references a missing product.
	ErrInvalidProductID = errors.New("invalid product ID")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Missing entities are 404;
// validation and business-rule conflicts are 400. Link operations treat a
// missing order or product as a validation failure on the supplied id, so
// those map to 400 rather than 404.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case ErrNoOrdersForUser:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_ORDERS_FOR_USER")
	case ErrNoProductsInOrder:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_PRODUCTS_IN_ORDER")
	case ErrProductNotInOrder:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_IN_ORDER")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrProductInUse:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PRODUCT_IN_USE")
	case ErrDuplicateProduct:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_PRODUCT")
	case ErrInvalidOrderID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ORDER_ID")
	case ErrInvalidProductID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRODUCT_ID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
