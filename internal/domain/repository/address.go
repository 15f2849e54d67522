package repository

import (
	"context"

	"github.com/saleshoes/storefront/internal/domain/model"
)

// AddressRepository provides access to saved shipping addresses.
type AddressRepository interface {
	Create(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
}
