package app

import (
	"context"

	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/usecase"
)

// HealthPinger reports whether backing storage is reachable.
type HealthPinger interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the use cases behind a single surface for the
// HTTP layer.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	carts     *usecase.CartUseCase
	checkout  *usecase.CheckoutUseCase
	payments  *usecase.PaymentUseCase
	orders    *usecase.OrderUseCase
	addresses *usecase.AddressUseCase
	health    HealthPinger
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	carts *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	payments *usecase.PaymentUseCase,
	orders *usecase.OrderUseCase,
	addresses *usecase.AddressUseCase,
	health HealthPinger,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:      auth,
		carts:     carts,
		checkout:  checkout,
		payments:  payments,
		orders:    orders,
		addresses: addresses,
		health:    health,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return f.carts.List(ctx, userID)
}

func (f *StorefrontFacade) AddCartItem(ctx context.Context, userID, productDetailID int64, name string, quantity int, unitPrice float64) (*model.CartItem, error) {
	return f.carts.Add(ctx, userID, productDetailID, name, quantity, unitPrice)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID, itemID int64) error {
	return f.carts.Remove(ctx, userID, itemID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.carts.Clear(ctx, userID)
}

func (f *StorefrontFacade) SubmitCheckout(ctx context.Context, userID int64, form model.CheckoutForm) (*model.CheckoutResult, error) {
	return f.checkout.Submit(ctx, userID, form)
}

func (f *StorefrontFacade) HandlePaymentReturn(ctx context.Context, txnRef, responseCode string) (*model.PaymentReturn, error) {
	return f.payments.HandleReturn(ctx, txnRef, responseCode)
}

func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, userID, orderID int64) error {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *StorefrontFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.addresses.List(ctx, userID)
}

func (f *StorefrontFacade) AddAddress(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error) {
	return f.addresses.Create(ctx, userID, fullAddress, isDefault)
}

func (f *StorefrontFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
