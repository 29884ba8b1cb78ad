package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kids-web-store/internal/cartstore"
	"kids-web-store/internal/catalog"
	"kids-web-store/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	cat, err := catalog.New([]models.Item{
		{ID: "pizza", Name: "Pizza", Price: 500, Category: models.CategoryJunk, Image: "pizza.jpg"},
		{ID: "carrot", Name: "Carrot", Price: 100, Category: models.CategoryHealthy, Image: "carrot.jpg"},
	})
	require.NoError(t, err)
	return cat
}

func setupCartService(t *testing.T) *CartService {
	store := cartstore.NewMemoryStore(testCatalog(t), cartstore.Options{})
	t.Cleanup(func() { store.Close() })
	return NewCartService(store)
}

func TestCartService_AddItemDefaultsQuantity(t *testing.T) {
	svc := setupCartService(t)

	cart, err := svc.AddItem("session-1", "pizza", 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_AddItemRejectsNegativeQuantity(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.AddItem("session-1", "pizza", -2)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestCartService_AddItemUnknown(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.AddItem("session-1", "sushi", 1)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestCartService_RemoveItemDefaultsQuantity(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.AddItem("session-1", "pizza", 3)
	require.NoError(t, err)

	cart, err := svc.RemoveItem("session-1", "pizza", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_ClearThenGet(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.AddItem("session-1", "pizza", 2)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart("session-1"))

	cart, err := svc.GetCart("session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
