package client

import (
	"errors"
	"fmt"
)

// Errors surfaced by the cart and session, mirroring what the app screens
// show to the user.
var (
	// ErrStockExceeded is returned by Cart.Add when the requested quantity
	// would exceed the item's available stock.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")

	// ErrEmptyCart is returned when an order is submitted with no lines.
	ErrEmptyCart = errors.New("cart has no items")

	// ErrInvalidCredentials is returned by staff login when the name or
	// password is rejected.
	ErrInvalidCredentials = errors.New("invalid name or password")
)

// APIError is a non-2xx response from the backend, carrying the error code
// and message from the response envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
