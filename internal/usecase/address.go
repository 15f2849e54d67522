package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/domain/repository"
)

// AddressUseCase manages the user's saved shipping addresses.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// List returns the user's saved addresses.
func (u *AddressUseCase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}

// Create saves a new address. Marking it default demotes the previous one.
func (u *AddressUseCase) Create(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error) {
	fullAddress = strings.TrimSpace(fullAddress)
	if fullAddress == "" {
		return nil, domainErrors.ErrInvalidAddress
	}
	return u.addresses.Create(ctx, userID, fullAddress, isDefault)
}
