package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kids-web-store/internal/cartstore"
	"kids-web-store/internal/catalog"
	"kids-web-store/internal/middleware"
	"kids-web-store/internal/models"
	"kids-web-store/internal/services"
)

const testSessionID = "test-session"

type testEnv struct {
	store    *StoreHandler
	checkout *CheckoutHandler
	public   *PublicHandler
	carts    *services.CartService
}

func setupHandlers(t *testing.T) *testEnv {
	cat, err := catalog.New([]models.Item{
		{ID: "pizza", Name: "Pizza", Price: 500, Category: models.CategoryJunk, Image: "pizza.jpg"},
		{ID: "carrot", Name: "Carrot", Price: 100, Category: models.CategoryHealthy, Image: "carrot.jpg"},
	})
	require.NoError(t, err)

	store := cartstore.NewMemoryStore(cat, cartstore.Options{})
	t.Cleanup(func() { store.Close() })

	templates, err := LoadTemplates()
	require.NoError(t, err)

	cartService := services.NewCartService(store)
	checkoutService := services.NewCheckoutService(store)

	return &testEnv{
		store:    NewStoreHandler(cartService, cat, templates),
		checkout: NewCheckoutHandler(cartService, checkoutService, templates),
		public:   NewPublicHandler("Kids Web Store", templates),
		carts:    cartService,
	}
}

// newRequest builds a request carrying the test session ID
func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithSessionID(req.Context(), testSessionID))
}

// newFormRequest builds a form-encoded request carrying the test session ID
func newFormRequest(target, form string) *http.Request {
	req := newRequest(http.MethodPost, target, form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeCartResponse(t *testing.T, rec *httptest.ResponseRecorder) models.CartResponse {
	var resp models.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
