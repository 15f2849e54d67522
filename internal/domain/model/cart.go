package model

import "time"

// CartItem is one line of a user's server-side cart.
type CartItem struct {
	ID              int64
	UserID          int64
	ProductDetailID int64
	Name            string
	Quantity        int
	UnitPrice       float64
	AddedAt         time.Time
}
