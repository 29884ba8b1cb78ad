package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

// OrderItem is an order line with the price resolved at checkout time
type OrderItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"` // unit price in cents at checkout
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"` // in cents
}

// Order is the immutable result of a successful checkout
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	SessionID   string      `json:"session_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount int         `json:"total_amount"` // in cents
	ItemCount   int         `json:"item_count"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Order number format: ORD-YYYYMMDD-XXXXXX (e.g., ORD-20240101-123456)
var orderNumberRegex = regexp.MustCompile(`^ORD-\d{8}-\d{6}$`)

// ValidOrderNumber reports whether s is a well-formed order number
func ValidOrderNumber(s string) bool {
	return orderNumberRegex.MatchString(s)
}

// GenerateOrderNumber generates a unique order number
func GenerateOrderNumber() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	// Generate a 6-digit random number using crypto/rand for better uniqueness
	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		timestamp := now.UnixNano()
		randomPart := timestamp % 1000000
		return fmt.Sprintf("ORD-%s-%06d", dateStr, randomPart)
	}

	return fmt.Sprintf("ORD-%s-%06d", dateStr, randomNum.Int64())
}
