package model

import "time"

// PendingCheckout is the server-held snapshot of an order awaiting external
// payment confirmation. It is created when a banking checkout is submitted,
// survives the redirect to the hosted payment page, and is consumed exactly
// once by the payment return handler.
type PendingCheckout struct {
	TxnRef          string
	UserID          int64
	Items           []OrderItem
	ShippingAddress string
	Note            string
	PaymentMethod   PaymentMethod
	Amount          float64
	NewAddress      string
	MakeDefault     bool
	CreatedAt       time.Time
}
