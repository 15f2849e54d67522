package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/saleshoes/storefront/internal/adapter/gateway"
	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/domain/repository"
)

// RedirectCart is where the buyer lands after a failed or unmatched payment.
const RedirectCart = "/cart"

// PaymentUseCase resolves gateway redirects into orders.
type PaymentUseCase struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	addresses repository.AddressRepository
	pending   repository.PendingCheckoutStore
	gateway   gateway.Client
	logger    *zap.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	addresses repository.AddressRepository,
	pending repository.PendingCheckoutStore,
	client gateway.Client,
	logger *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orders:    orders,
		carts:     carts,
		addresses: addresses,
		pending:   pending,
		gateway:   client,
		logger:    logger,
	}
}

// HandleReturn consumes the pending checkout for the transaction and, when
// the gateway confirms the charge, creates the paid order. The record is
// consumed on every terminal outcome so a replayed redirect can never create
// a second order.
//
// The redirect parameters are untrusted: a success code is only acted upon
// after the gateway itself confirms the transaction.
func (u *PaymentUseCase) HandleReturn(ctx context.Context, txnRef, responseCode string) (*model.PaymentReturn, error) {
	if txnRef == "" {
		return nil, domainErrors.ErrPendingCheckoutMissing
	}

	if responseCode != model.GatewaySuccessCode {
		u.discard(ctx, txnRef)
		u.logger.Info("payment declined at gateway",
			zap.String("txn_ref", txnRef),
			zap.String("response_code", responseCode),
		)
		return &model.PaymentReturn{Outcome: model.PaymentOutcomeFailed, Redirect: RedirectCart}, nil
	}

	record, err := u.pending.Take(ctx, txnRef)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrPendingCheckoutMissing
		}
		return nil, err
	}

	result, err := u.gateway.QueryPayment(ctx, txnRef)
	if err != nil {
		u.logger.Error("payment verification failed",
			zap.String("txn_ref", txnRef),
			zap.Error(err),
		)
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if result.ResponseCode != model.GatewaySuccessCode {
		u.logger.Warn("redirect claimed success but gateway disagrees",
			zap.String("txn_ref", txnRef),
			zap.String("gateway_code", result.ResponseCode),
		)
		return nil, domainErrors.ErrPaymentNotConfirmed
	}
	if result.Amount != 0 && result.Amount != record.Amount {
		u.logger.Warn("payment amount mismatch",
			zap.String("txn_ref", txnRef),
			zap.Float64("expected", record.Amount),
			zap.Float64("charged", result.Amount),
		)
		return nil, domainErrors.ErrPaymentNotConfirmed
	}

	order, err := u.orders.Create(ctx, &model.Order{
		UserID:          record.UserID,
		Items:           record.Items,
		ShippingAddress: record.ShippingAddress,
		Note:            record.Note,
		PaymentMethod:   record.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPaid,
		Status:          model.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if record.NewAddress != "" {
		if _, err := u.addresses.Create(ctx, record.UserID, record.NewAddress, record.MakeDefault); err != nil {
			u.logger.Warn("failed to save shipping address",
				zap.Int64("user_id", record.UserID),
				zap.Error(err),
			)
		}
	}
	if err := u.carts.Clear(ctx, record.UserID); err != nil {
		u.logger.Warn("failed to clear cart after payment",
			zap.Int64("user_id", record.UserID),
			zap.Error(err),
		)
	}

	u.logger.Info("payment confirmed",
		zap.String("txn_ref", txnRef),
		zap.Int64("order_id", order.ID),
	)
	return &model.PaymentReturn{
		Outcome:  model.PaymentOutcomeSuccess,
		OrderID:  order.ID,
		Redirect: fmt.Sprintf("/order-success/%d", order.ID),
	}, nil
}

// discard drops the staged record for a declined transaction so a stale
// redirect cannot resurrect it later.
func (u *PaymentUseCase) discard(ctx context.Context, txnRef string) {
	if _, err := u.pending.Take(ctx, txnRef); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		u.logger.Warn("failed to discard pending checkout",
			zap.String("txn_ref", txnRef),
			zap.Error(err),
		)
	}
}
