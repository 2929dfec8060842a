package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrForbidden          = errors.New("forbidden")
	// ErrOrderLocked is returned when an owner tries to remove an order that left the pending state.
	ErrOrderLocked = errors.New("order is no longer pending")
)
