package dto

import "time"

// AddCartItemRequest describes a product variant being added to the cart.
type AddCartItemRequest struct {
	ProductDetailID int64   `json:"productDetailId"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ID              int64     `json:"id"`
	ProductDetailID int64     `json:"productDetailId"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unitPrice"`
	AddedAt         time.Time `json:"addedAt"`
}
