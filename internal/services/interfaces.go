package services

import "kids-web-store/internal/models"

// CartServiceInterface defines the interface for cart operations
type CartServiceInterface interface {
	AddItem(sessionID, itemID string, quantity int) (*models.Cart, error)
	RemoveItem(sessionID, itemID string, quantity int) (*models.Cart, error)
	ClearCart(sessionID string) error
	GetCart(sessionID string) (*models.Cart, error)
}

// CheckoutServiceInterface defines the interface for checkout operations
type CheckoutServiceInterface interface {
	Checkout(sessionID string) (*models.Order, error)
	GetOrder(orderNumber string) (*models.Order, error)
}
