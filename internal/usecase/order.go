package usecase

import (
	"context"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/domain/repository"
)

// cancellableStatuses lists the statuses a customer may still cancel from.
var cancellableStatuses = []model.OrderStatus{model.OrderStatusPending, model.OrderStatusProcessing}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Get returns one order. Orders of other users are reported as not found.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// ListByUser returns the user's orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Cancel moves the order to cancelled. The transition is applied
// conditionally in storage, so an order that has already started shipping is
// rejected even when a stale client believes it is still cancellable.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return domainErrors.ErrNotFound
	}
	return u.orders.UpdateStatus(ctx, orderID, cancellableStatuses, model.OrderStatusCancelled)
}
