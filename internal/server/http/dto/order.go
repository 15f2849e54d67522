package dto

import "time"

// OrderItemResponse is one snapshotted order line.
type OrderItemResponse struct {
	ProductDetailID int64   `json:"productDetailId"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	PriceAtOrder    float64 `json:"priceAtOrder"`
}

// StatusChangeResponse is one entry of the order status history.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID              int64                  `json:"id"`
	Status          string                 `json:"status"`
	StatusLabel     string                 `json:"statusLabel"`
	StatusColor     string                 `json:"statusColor"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentStatus   string                 `json:"paymentStatus"`
	Total           float64                `json:"total"`
	ShippingAddress string                 `json:"shippingAddress"`
	Note            string                 `json:"note,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
	History         []StatusChangeResponse `json:"history"`
	CreatedAt       time.Time              `json:"createdAt"`
}
