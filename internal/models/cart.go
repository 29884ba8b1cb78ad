package models

import "time"

// CartEntry represents one line in a shopping cart. Name and unit price
// are denormalized for rendering; the catalog stays authoritative and
// prices are re-resolved at checkout.
type CartEntry struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"` // unit price in cents
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"` // in cents
}

// Cart is a point-in-time snapshot of a session's cart. Snapshots are
// detached copies: mutating one never affects the store.
type Cart struct {
	SessionID      string      `json:"session_id"`
	Items          []CartEntry `json:"items"`
	TotalAmount    int         `json:"total_amount"` // in cents
	ItemCount      int         `json:"item_count"`
	CreatedAt      time.Time   `json:"created_at"`
	LastModifiedAt time.Time   `json:"last_modified_at"`
}

// IsEmpty returns true if the cart has no entries
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
