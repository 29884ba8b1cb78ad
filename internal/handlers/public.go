package handlers

import "net/http"

// Version is the application version reported by the info endpoint
const Version = "2.0.0"

// PublicHandler handles the welcome page and service endpoints
type PublicHandler struct {
	appName   string
	templates *Templates
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(appName string, templates *Templates) *PublicHandler {
	return &PublicHandler{appName: appName, templates: templates}
}

// Welcome displays the welcome page
func (h *PublicHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.templates.Render(w, "welcome.html", http.StatusOK, PageData{Title: "Welcome"})
}

// Health is the liveness endpoint
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"app":    h.appName,
	})
}

// APIInfo reports application metadata and the endpoint map
func (h *PublicHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app_name":    h.appName,
		"version":     Version,
		"description": "Kids Web Store API",
		"endpoints": map[string]string{
			"store":    "/store/",
			"menu":     "/store/menu",
			"cart":     "/store/cart",
			"checkout": "/checkout/",
			"health":   "/health",
		},
	})
}
