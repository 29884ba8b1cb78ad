// Package cartstore provides session-keyed shopping cart storage.
package cartstore

import "kids-web-store/internal/models"

// Store defines the interface for cart storage operations.
// Mutations on the same session ID are serialized; different sessions
// are independent and may proceed in parallel.
type Store interface {
	// Add increments the quantity of an item in the session's cart,
	// creating the cart and the entry as needed.
	// Returns the updated cart snapshot.
	Add(sessionID, itemID string, quantity int) (*models.Cart, error)

	// Remove decrements the quantity of an item in the session's cart,
	// deleting the entry when the quantity reaches zero.
	// Returns the updated cart snapshot.
	Remove(sessionID, itemID string, quantity int) (*models.Cart, error)

	// Clear removes all entries for the session. Idempotent.
	Clear(sessionID string) error

	// Get returns the current cart snapshot. Side-effect-free: an
	// unseen session yields an empty cart without creating one.
	Get(sessionID string) (*models.Cart, error)

	// Take atomically snapshots and clears a non-empty cart.
	// Returns models.ErrEmptyCart if the cart has no entries; the cart
	// is left untouched in that case.
	Take(sessionID string) (*models.Cart, error)

	// Close shuts down the store and any background processes
	Close() error
}
