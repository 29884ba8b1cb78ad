package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"kids-web-store/internal/catalog"
	"kids-web-store/internal/middleware"
	"kids-web-store/internal/models"
	"kids-web-store/internal/services"
)

// StoreHandler handles menu and cart requests
type StoreHandler struct {
	cartService services.CartServiceInterface
	catalog     *catalog.Catalog
	templates   *Templates
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(cartService services.CartServiceInterface, cat *catalog.Catalog, templates *Templates) *StoreHandler {
	return &StoreHandler{
		cartService: cartService,
		catalog:     cat,
		templates:   templates,
	}
}

// StorePage displays the main store page
func (h *StoreHandler) StorePage(w http.ResponseWriter, r *http.Request) {
	h.renderStorePage(w, r, http.StatusOK, "", "")
}

func (h *StoreHandler) renderStorePage(w http.ResponseWriter, r *http.Request, status int, message, errMsg string) {
	sessionID := middleware.GetSessionID(r.Context())
	cart, err := h.cartService.GetCart(sessionID)
	if err != nil {
		h.templates.Render(w, "error.html", http.StatusInternalServerError, PageData{
			Title: "Error",
			Error: "Failed to load store page",
		})
		return
	}

	h.templates.Render(w, "store.html", status, StorePageData{
		PageData: PageData{
			Title:     "Menu",
			Message:   message,
			Error:     errMsg,
			CartCount: cart.ItemCount,
			CartTotal: cart.TotalAmount,
		},
		JunkItems:    h.catalog.ByCategory(models.CategoryJunk),
		HealthyItems: h.catalog.ByCategory(models.CategoryHealthy),
	})
}

// Menu returns the complete menu as JSON
func (h *StoreHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Items())
}

// Cart returns the current cart contents as JSON
func (h *StoreHandler) Cart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	cart, err := h.cartService.GetCart(sessionID)
	if err != nil {
		writeJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CartResponse{
		Items:       cart.Items,
		TotalAmount: cart.TotalAmount,
		ItemCount:   cart.ItemCount,
		Message:     "Current cart contents",
	})
}

// AddItem adds an item to the cart (JSON API)
func (h *StoreHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, models.ErrInvalidInput)
		return
	}
	if req.ItemID == "" {
		writeJSONError(w, models.ErrInvalidInput)
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	cart, err := h.cartService.AddItem(sessionID, req.ItemID, req.Quantity)
	if err != nil {
		writeJSONError(w, err)
		return
	}

	item, _ := h.catalog.Get(req.ItemID)
	writeJSON(w, http.StatusOK, models.CartResponse{
		Items:       cart.Items,
		TotalAmount: cart.TotalAmount,
		ItemCount:   cart.ItemCount,
		Message:     fmt.Sprintf("Added %s to cart", item.Name),
	})
}

// RemoveItem removes an item from the cart (JSON API)
func (h *StoreHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, models.ErrInvalidInput)
		return
	}
	if req.ItemID == "" {
		writeJSONError(w, models.ErrInvalidInput)
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	cart, err := h.cartService.RemoveItem(sessionID, req.ItemID, req.Quantity)
	if err != nil {
		writeJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CartResponse{
		Items:       cart.Items,
		TotalAmount: cart.TotalAmount,
		ItemCount:   cart.ItemCount,
		Message:     fmt.Sprintf("Removed %s from cart", req.ItemID),
	})
}

// AddItemForm handles form submissions for adding items (HTML forms)
func (h *StoreHandler) AddItemForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStorePage(w, r, http.StatusBadRequest, "", "Invalid form data")
		return
	}

	itemID := r.FormValue("item_id")
	quantity := 1
	if q := r.FormValue("quantity"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			h.renderStorePage(w, r, http.StatusBadRequest, "", "Invalid quantity")
			return
		}
		quantity = parsed
	}

	sessionID := middleware.GetSessionID(r.Context())
	_, err := h.cartService.AddItem(sessionID, itemID, quantity)
	if err != nil {
		h.renderStorePage(w, r, statusForError(err), "", err.Error())
		return
	}

	item, _ := h.catalog.Get(itemID)
	h.renderStorePage(w, r, http.StatusOK, fmt.Sprintf("Added %s to cart!", item.Name), "")
}
