package model

import "time"

// Address is a saved shipping address. At most one address per user is the
// default.
type Address struct {
	ID          int64
	UserID      int64
	FullAddress string
	IsDefault   bool
	CreatedAt   time.Time
}
