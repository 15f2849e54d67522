package handlers

import (
	"context"

	"github.com/saleshoes/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	CartItems(ctx context.Context, userID int64) ([]model.CartItem, error)
	AddCartItem(ctx context.Context, userID, productDetailID int64, name string, quantity int, unitPrice float64) (*model.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// CheckoutFacade turns the cart into an order or a payment session.
type CheckoutFacade interface {
	SubmitCheckout(ctx context.Context, userID int64, form model.CheckoutForm) (*model.CheckoutResult, error)
}

// PaymentFacade resolves gateway redirects.
type PaymentFacade interface {
	HandlePaymentReturn(ctx context.Context, txnRef, responseCode string) (*model.PaymentReturn, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64) error
}

// AddressFacade provides saved address operations.
type AddressFacade interface {
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	AddAddress(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CartFacade
	CheckoutFacade
	PaymentFacade
	OrderFacade
	AddressFacade
	HealthFacade
}
