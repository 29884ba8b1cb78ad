package models

// AddItemRequest is the JSON body for POST /store/add-item
type AddItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity,omitempty"` // defaults to 1
}

// RemoveItemRequest is the JSON body for POST /store/remove-item
type RemoveItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity,omitempty"` // defaults to 1
}

// CartResponse is the JSON representation of a cart returned by the API
type CartResponse struct {
	Items       []CartEntry `json:"items"`
	TotalAmount int         `json:"total_amount"`
	ItemCount   int         `json:"item_count"`
	Message     string      `json:"message,omitempty"`
}

// OrderResponse is the JSON representation of a completed order
type OrderResponse struct {
	OrderNumber string      `json:"order_number"`
	Items       []OrderItem `json:"items"`
	TotalAmount int         `json:"total_amount"`
	ItemCount   int         `json:"item_count"`
}

// ErrorResponse is the JSON error envelope for API requests
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}
