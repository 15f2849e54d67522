package model

import "time"

// OrderStatus is the canonical, ordinal order lifecycle status. The linear
// progression is pending -> processing -> shipping -> completed; cancelled is
// a terminal side branch reachable only from pending and processing.
type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusProcessing
	OrderStatusShipping
	OrderStatusCompleted
	OrderStatusCancelled
)

// String returns the canonical lowercase status name.
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusProcessing:
		return "processing"
	case OrderStatusShipping:
		return "shipping"
	case OrderStatusCompleted:
		return "completed"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Label returns the user-facing status label.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Awaiting confirmation"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipping:
		return "Shipping"
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Color returns the canonical badge color for the status.
func (s OrderStatus) Color() string {
	switch s {
	case OrderStatusPending:
		return "yellow"
	case OrderStatusProcessing:
		return "blue"
	case OrderStatusShipping:
		return "purple"
	case OrderStatusCompleted:
		return "green"
	case OrderStatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// Valid reports whether the value is a known status.
func (s OrderStatus) Valid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

// Cancellable reports whether a customer may still cancel an order in this
// status.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// OrderItem is a snapshot of a cart line at the moment of checkout.
type OrderItem struct {
	ID              int64
	ProductDetailID int64
	Name            string
	Quantity        int
	PriceAtOrder    float64
}

// StatusChange records one entry of an order's status history.
type StatusChange struct {
	Status    OrderStatus
	ChangedAt time.Time
}

// Order is the server-owned order entity.
type Order struct {
	ID              int64
	UserID          int64
	Items           []OrderItem
	ShippingAddress string
	Note            string
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Status          OrderStatus
	Total           float64
	History         []StatusChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemsTotal sums quantity * price over all items.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.PriceAtOrder
	}
	return total
}
