package services

import (
	"github.com/rs/zerolog/log"

	"kids-web-store/internal/cartstore"
	"kids-web-store/internal/models"
)

// CartService handles cart business logic on top of the cart store
type CartService struct {
	store cartstore.Store
}

// NewCartService creates a new cart service
func NewCartService(store cartstore.Store) *CartService {
	return &CartService{store: store}
}

// AddItem adds the given quantity of an item to the session's cart.
// A quantity of zero defaults to one.
func (s *CartService) AddItem(sessionID, itemID string, quantity int) (*models.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}

	cart, err := s.store.Add(sessionID, itemID, quantity)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("session_id", sessionID).
		Str("item_id", itemID).
		Int("quantity", quantity).
		Int("item_count", cart.ItemCount).
		Msg("added item to cart")
	return cart, nil
}

// RemoveItem removes the given quantity of an item from the session's
// cart. A quantity of zero defaults to one.
func (s *CartService) RemoveItem(sessionID, itemID string, quantity int) (*models.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}

	cart, err := s.store.Remove(sessionID, itemID, quantity)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("session_id", sessionID).
		Str("item_id", itemID).
		Int("quantity", quantity).
		Msg("removed item from cart")
	return cart, nil
}

// ClearCart empties the session's cart. Idempotent.
func (s *CartService) ClearCart(sessionID string) error {
	if err := s.store.Clear(sessionID); err != nil {
		return err
	}
	log.Debug().Str("session_id", sessionID).Msg("cleared cart")
	return nil
}

// GetCart returns the session's current cart snapshot
func (s *CartService) GetCart(sessionID string) (*models.Cart, error) {
	return s.store.Get(sessionID)
}
