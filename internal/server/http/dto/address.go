package dto

import "time"

// AddressRequest describes a new saved address.
type AddressRequest struct {
	FullAddress string `json:"fullAddress"`
	IsDefault   bool   `json:"isDefault"`
}

// AddressResponse is one saved address.
type AddressResponse struct {
	ID          int64     `json:"id"`
	FullAddress string    `json:"fullAddress"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}
