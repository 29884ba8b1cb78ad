package models

import "errors"

// Common errors used throughout the application
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCartLimit       = errors.New("cart item limit exceeded")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidInput    = errors.New("invalid input")
)
