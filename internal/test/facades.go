package test

import (
	"context"
	"sync"
	"time"

	"github.com/saleshoes/storefront/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	ItemsFn  func(context.Context, int64) ([]model.CartItem, error)
	AddFn    func(context.Context, int64, int64, string, int, float64) (*model.CartItem, error)
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error
}

// CartItems returns predefined cart content.
func (s CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return []model.CartItem{{ID: 1, UserID: userID, ProductDetailID: 100, Name: "Runner", Quantity: 1, UnitPrice: 150000, AddedAt: time.Unix(0, 0)}}, nil
}

// AddCartItem delegates to provided function or echoes the added line.
func (s CartFacadeStub) AddCartItem(ctx context.Context, userID, productDetailID int64, name string, quantity int, unitPrice float64) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productDetailID, name, quantity, unitPrice)
	}
	return &model.CartItem{ID: 1, UserID: userID, ProductDetailID: productDetailID, Name: name, Quantity: quantity, UnitPrice: unitPrice}, nil
}

// RemoveCartItem executes configured removal handler.
func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, itemID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, itemID)
	}
	return nil
}

// ClearCart executes configured clear handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// CheckoutFacadeStub simulates checkout submission.
type CheckoutFacadeStub struct {
	SubmitFn func(context.Context, int64, model.CheckoutForm) (*model.CheckoutResult, error)
}

// SubmitCheckout delegates to the override or creates a default order.
func (s CheckoutFacadeStub) SubmitCheckout(ctx context.Context, userID int64, form model.CheckoutForm) (*model.CheckoutResult, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, form)
	}
	return &model.CheckoutResult{Order: &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
}

// PaymentFacadeStub simulates gateway redirect resolution.
type PaymentFacadeStub struct {
	ReturnFn func(context.Context, string, string) (*model.PaymentReturn, error)
}

// HandlePaymentReturn delegates to the override or reports success.
func (s PaymentFacadeStub) HandlePaymentReturn(ctx context.Context, txnRef, responseCode string) (*model.PaymentReturn, error) {
	if s.ReturnFn != nil {
		return s.ReturnFn(ctx, txnRef, responseCode)
	}
	return &model.PaymentReturn{Outcome: model.PaymentOutcomeSuccess, OrderID: 1, Redirect: "/order-success/1"}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrderFn  func(context.Context, int64, int64) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	CancelFn func(context.Context, int64, int64) error
}

// Order returns a predefined order for the given user.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// CancelOrder executes configured cancellation handler.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID, orderID)
	}
	return nil
}

// AddressFacadeStub simulates saved address operations.
type AddressFacadeStub struct {
	ListFn func(context.Context, int64) ([]model.Address, error)
	AddFn  func(context.Context, int64, string, bool) (*model.Address, error)
}

// Addresses returns preconfigured saved addresses.
func (s AddressFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Address{{ID: 1, UserID: userID, FullAddress: "12 Nguyen Trai", IsDefault: true}}, nil
}

// AddAddress delegates to the override or echoes the created address.
func (s AddressFacadeStub) AddAddress(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, fullAddress, isDefault)
	}
	return &model.Address{ID: 1, UserID: userID, FullAddress: fullAddress, IsDefault: isDefault}, nil
}

// HealthFacadeStub simulates storage health checks.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	PaymentFacadeStub
	OrderFacadeStub
	AddressFacadeStub
	HealthFacadeStub
}

// SweeperStoreStub counts expiry sweeps for worker tests.
type SweeperStoreStub struct {
	ExpireFn func(time.Time) int

	mu      sync.Mutex
	cutoffs []time.Time
}

// Expire records the cutoff and reports one removed record by default.
func (s *SweeperStoreStub) Expire(olderThan time.Time) int {
	s.mu.Lock()
	s.cutoffs = append(s.cutoffs, olderThan)
	s.mu.Unlock()
	if s.ExpireFn != nil {
		return s.ExpireFn(olderThan)
	}
	return 1
}

// Cutoffs returns a snapshot of recorded sweep cutoffs.
func (s *SweeperStoreStub) Cutoffs() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.cutoffs...)
}
