package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/domain/repository"
)

// CartUseCase manages the server-side cart.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// List returns the user's cart lines.
func (u *CartUseCase) List(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return u.carts.ListByUser(ctx, userID)
}

// Add puts a product variant into the cart. Adding the same variant again
// merges into the existing line.
func (u *CartUseCase) Add(ctx context.Context, userID, productDetailID int64, name string, quantity int, unitPrice float64) (*model.CartItem, error) {
	if productDetailID <= 0 || strings.TrimSpace(name) == "" {
		return nil, domainErrors.ErrInvalidProduct
	}
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return nil, domainErrors.ErrInvalidPrice
	}

	return u.carts.Add(ctx, &model.CartItem{
		UserID:          userID,
		ProductDetailID: productDetailID,
		Name:            strings.TrimSpace(name),
		Quantity:        quantity,
		UnitPrice:       unitPrice,
	})
}

// Remove deletes one cart line.
func (u *CartUseCase) Remove(ctx context.Context, userID, itemID int64) error {
	return u.carts.Remove(ctx, userID, itemID)
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
