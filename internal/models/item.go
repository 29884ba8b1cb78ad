package models

import "strings"

// FoodCategory classifies menu items
type FoodCategory string

const (
	CategoryJunk    FoodCategory = "junk"
	CategoryHealthy FoodCategory = "healthy"
)

// IsValid returns true if the category is a known value
func (c FoodCategory) IsValid() bool {
	return c == CategoryJunk || c == CategoryHealthy
}

// Item represents a purchasable menu item. Items are built once at
// startup and never mutated afterwards.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       int          `json:"price"` // in cents
	Category    FoodCategory `json:"category"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
}

// Validate checks item fields against catalog constraints
func (i *Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidInput
	}
	if i.Price <= 0 {
		return ErrInvalidInput
	}
	if !i.Category.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
