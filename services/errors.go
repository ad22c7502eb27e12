package services

import "errors"

// Sentinel errors returned by the table and order services. Controllers
// map these to HTTP status codes and error envelope codes.
var (
	ErrTableNotFound        = errors.New("table not found")
	ErrTableAlreadyOccupied = errors.New("table is already occupied")
	ErrTableAlreadyFree     = errors.New("table is already free")
	ErrEmptyCart            = errors.New("order has no items")
	ErrUnknownItem          = errors.New("menu item not found")
)
