package repository

import (
	"context"

	"github.com/saleshoes/storefront/internal/domain/model"
)

// CartRepository describes persistence operations with server-side carts.
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
	Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	Remove(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}
