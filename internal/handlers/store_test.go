package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kids-web-store/internal/models"
)

func TestStoreHandler_Menu(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.Menu(rec, newRequest(http.MethodGet, "/store/menu", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "pizza", items[0].ID)
	assert.Equal(t, 500, items[0].Price)
}

func TestStoreHandler_AddItem(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.AddItem(rec, newRequest(http.MethodPost, "/store/add-item",
		`{"item_id": "pizza", "quantity": 2}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCartResponse(t, rec)
	assert.Equal(t, 2, resp.ItemCount)
	assert.Equal(t, 1000, resp.TotalAmount)
	assert.Contains(t, resp.Message, "Pizza")
}

func TestStoreHandler_AddItemDefaultsQuantity(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.AddItem(rec, newRequest(http.MethodPost, "/store/add-item",
		`{"item_id": "carrot"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCartResponse(t, rec)
	assert.Equal(t, 1, resp.ItemCount)
}

func TestStoreHandler_AddItemErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "unknown item", body: `{"item_id": "sushi"}`, wantStatus: http.StatusNotFound},
		{name: "negative quantity", body: `{"item_id": "pizza", "quantity": -1}`, wantStatus: http.StatusBadRequest},
		{name: "missing item id", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{not json`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupHandlers(t)

			rec := httptest.NewRecorder()
			env.store.AddItem(rec, newRequest(http.MethodPost, "/store/add-item", tt.body))

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestStoreHandler_Cart(t *testing.T) {
	env := setupHandlers(t)

	_, err := env.carts.AddItem(testSessionID, "pizza", 2)
	require.NoError(t, err)
	_, err = env.carts.AddItem(testSessionID, "carrot", 3)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	env.store.Cart(rec, newRequest(http.MethodGet, "/store/cart", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCartResponse(t, rec)
	assert.Equal(t, 5, resp.ItemCount)
	assert.Equal(t, 1300, resp.TotalAmount)
	require.Len(t, resp.Items, 2)
}

func TestStoreHandler_RemoveItem(t *testing.T) {
	env := setupHandlers(t)

	_, err := env.carts.AddItem(testSessionID, "pizza", 2)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	env.store.RemoveItem(rec, newRequest(http.MethodPost, "/store/remove-item",
		`{"item_id": "pizza"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCartResponse(t, rec)
	assert.Equal(t, 1, resp.ItemCount)
}

func TestStoreHandler_RemoveItemNotInCart(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.RemoveItem(rec, newRequest(http.MethodPost, "/store/remove-item",
		`{"item_id": "pizza"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoreHandler_StorePage(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.StorePage(rec, newRequest(http.MethodGet, "/store/", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Kids Web Store")
	assert.Contains(t, body, "Pizza")
	assert.Contains(t, body, "Carrot")
}

func TestStoreHandler_AddItemForm(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.AddItemForm(rec, newFormRequest("/store/add-item-form", "item_id=pizza"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Added Pizza to cart!")

	cart, err := env.carts.GetCart(testSessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
}

func TestStoreHandler_AddItemFormUnknownItem(t *testing.T) {
	env := setupHandlers(t)

	rec := httptest.NewRecorder()
	env.store.AddItemForm(rec, newFormRequest("/store/add-item-form", "item_id=sushi"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "item not found")
}
