// Package catalog holds the immutable menu of purchasable items.
// The catalog is built once at startup and is read-only afterwards,
// so lookups need no locking.
package catalog

import (
	"fmt"

	"kids-web-store/internal/models"
)

// Catalog is an immutable collection of menu items
type Catalog struct {
	items map[string]models.Item
	order []string // insertion order, for stable menu rendering
}

// New builds a catalog from the given items. Item IDs must be unique
// and every item must pass validation.
func New(items []models.Item) (*Catalog, error) {
	c := &Catalog{
		items: make(map[string]models.Item, len(items)),
		order: make([]string, 0, len(items)),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog item %q: %w", item.ID, err)
		}
		if _, exists := c.items[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item %q", item.ID)
		}
		c.items[item.ID] = item
		c.order = append(c.order, item.ID)
	}

	return c, nil
}

// Get returns the item with the given ID
func (c *Catalog) Get(id string) (models.Item, error) {
	item, exists := c.items[id]
	if !exists {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

// Items returns all items in menu order
func (c *Catalog) Items() []models.Item {
	result := make([]models.Item, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.items[id])
	}
	return result
}

// ByCategory returns all items in the given category, in menu order
func (c *Catalog) ByCategory(category models.FoodCategory) []models.Item {
	var result []models.Item
	for _, id := range c.order {
		if item := c.items[id]; item.Category == category {
			result = append(result, item)
		}
	}
	return result
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	return len(c.items)
}
