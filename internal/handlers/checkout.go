package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"kids-web-store/internal/middleware"
	"kids-web-store/internal/models"
	"kids-web-store/internal/services"
)

// CheckoutHandler handles checkout and cart management requests
type CheckoutHandler struct {
	cartService     services.CartServiceInterface
	checkoutService services.CheckoutServiceInterface
	templates       *Templates
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	cartService services.CartServiceInterface,
	checkoutService services.CheckoutServiceInterface,
	templates *Templates,
) *CheckoutHandler {
	return &CheckoutHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		templates:       templates,
	}
}

// CheckoutPage displays the checkout page
func (h *CheckoutHandler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	h.renderCheckoutPage(w, r, http.StatusOK, "", "")
}

func (h *CheckoutHandler) renderCheckoutPage(w http.ResponseWriter, r *http.Request, status int, message, errMsg string) {
	sessionID := middleware.GetSessionID(r.Context())
	cart, err := h.cartService.GetCart(sessionID)
	if err != nil {
		h.templates.Render(w, "error.html", http.StatusInternalServerError, PageData{
			Title: "Error",
			Error: "Failed to load checkout page",
		})
		return
	}

	h.templates.Render(w, "checkout.html", status, CheckoutPageData{
		PageData: PageData{
			Title:     "Checkout",
			Message:   message,
			Error:     errMsg,
			CartCount: cart.ItemCount,
			CartTotal: cart.TotalAmount,
		},
		Cart: cart,
	})
}

// CheckoutAction handles checkout form actions
func (h *CheckoutHandler) CheckoutAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCheckoutPage(w, r, http.StatusBadRequest, "", "Invalid form data")
		return
	}

	sessionID := middleware.GetSessionID(r.Context())

	switch r.FormValue("action") {
	case "Reset":
		if err := h.cartService.ClearCart(sessionID); err != nil {
			h.renderCheckoutPage(w, r, http.StatusInternalServerError, "", "Failed to reset cart")
			return
		}
		http.Redirect(w, r, "/store/", http.StatusFound)

	case "Return":
		http.Redirect(w, r, "/store/", http.StatusFound)

	case "Checkout":
		order, err := h.checkoutService.Checkout(sessionID)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCart) {
				h.renderCheckoutPage(w, r, http.StatusBadRequest, "",
					"Cart is empty! Please add some items first.")
				return
			}
			h.renderCheckoutPage(w, r, statusForError(err), "", err.Error())
			return
		}

		h.templates.Render(w, "checkout_success.html", http.StatusOK, OrderPageData{
			PageData: PageData{Title: "Order confirmed"},
			Order:    order,
		})

	default:
		h.renderCheckoutPage(w, r, http.StatusBadRequest, "", "Invalid action")
	}
}

// RemoveItemForm removes one unit of an item from the cart (HTML form)
func (h *CheckoutHandler) RemoveItemForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCheckoutPage(w, r, http.StatusBadRequest, "", "Invalid form data")
		return
	}

	itemID := r.FormValue("item_id")
	sessionID := middleware.GetSessionID(r.Context())

	_, err := h.cartService.RemoveItem(sessionID, itemID, 1)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			h.renderCheckoutPage(w, r, http.StatusOK,
				fmt.Sprintf("Item %s not found in cart", itemID), "")
			return
		}
		h.renderCheckoutPage(w, r, statusForError(err), "", err.Error())
		return
	}

	h.renderCheckoutPage(w, r, http.StatusOK, fmt.Sprintf("Removed %s from cart", itemID), "")
}

// ClearCart clears the shopping cart (JSON API)
func (h *CheckoutHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if err := h.cartService.ClearCart(sessionID); err != nil {
		writeJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CartResponse{
		Items:       []models.CartEntry{},
		TotalAmount: 0,
		ItemCount:   0,
		Message:     "Cart cleared successfully",
	})
}

// Order returns an archived order as JSON
func (h *CheckoutHandler) Order(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.URL.Query().Get("order_number")
	if !models.ValidOrderNumber(orderNumber) {
		writeJSONError(w, models.ErrOrderNotFound)
		return
	}

	order, err := h.checkoutService.GetOrder(orderNumber)
	if err != nil {
		writeJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.OrderResponse{
		OrderNumber: order.OrderNumber,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		ItemCount:   order.ItemCount,
	})
}
