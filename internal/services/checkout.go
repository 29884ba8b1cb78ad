package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kids-web-store/internal/cartstore"
	"kids-web-store/internal/models"
)

// CheckoutService finalizes carts into immutable orders. Completed
// orders are archived in memory for the lifetime of the process.
type CheckoutService struct {
	store cartstore.Store

	mu     sync.RWMutex
	orders map[string]*models.Order // keyed by order number
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(store cartstore.Store) *CheckoutService {
	return &CheckoutService{
		store:  store,
		orders: make(map[string]*models.Order),
	}
}

// Checkout finalizes the session's cart into an order and empties the
// cart. The two happen as one logical transaction: on any failure the
// cart is left untouched and no order exists.
func (s *CheckoutService) Checkout(sessionID string) (*models.Order, error) {
	// Take snapshots and clears atomically; prices in the snapshot are
	// already resolved from the catalog.
	cart, err := s.store.Take(sessionID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:          uuid.New().String(),
		OrderNumber: models.GenerateOrderNumber(),
		SessionID:   sessionID,
		Items:       make([]models.OrderItem, 0, len(cart.Items)),
		TotalAmount: cart.TotalAmount,
		ItemCount:   cart.ItemCount,
		CreatedAt:   time.Now(),
	}
	for _, e := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:   e.ItemID,
			Name:     e.Name,
			Price:    e.Price,
			Quantity: e.Quantity,
			Subtotal: e.Subtotal,
		})
	}

	s.mu.Lock()
	s.orders[order.OrderNumber] = order
	s.mu.Unlock()

	log.Info().
		Str("session_id", sessionID).
		Str("order_number", order.OrderNumber).
		Int("item_count", order.ItemCount).
		Int("total_amount", order.TotalAmount).
		Msg("checkout completed")
	return order, nil
}

// GetOrder returns an archived order by order number
func (s *CheckoutService) GetOrder(orderNumber string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderNumber]
	if !exists {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}
