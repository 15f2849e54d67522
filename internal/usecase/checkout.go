package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saleshoes/storefront/internal/adapter/gateway"
	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/domain/repository"
)

// CheckoutUseCase turns the current cart into either a placed order or a
// hosted payment session, depending on the payment method.
type CheckoutUseCase struct {
	carts     repository.CartRepository
	orders    repository.OrderRepository
	addresses repository.AddressRepository
	pending   repository.PendingCheckoutStore
	gateway   gateway.Client
	logger    *zap.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	carts repository.CartRepository,
	orders repository.OrderRepository,
	addresses repository.AddressRepository,
	pending repository.PendingCheckoutStore,
	client gateway.Client,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:     carts,
		orders:    orders,
		addresses: addresses,
		pending:   pending,
		gateway:   client,
		logger:    logger,
	}
}

// Submit validates the form and the cart, then either creates the order
// immediately or stages it behind a gateway payment session. For gateway
// payments no order exists until the redirect confirms the charge.
func (u *CheckoutUseCase) Submit(ctx context.Context, userID int64, form model.CheckoutForm) (*model.CheckoutResult, error) {
	if err := ValidateCheckoutForm(form); err != nil {
		return nil, err
	}
	if !form.PaymentMethod.Valid() {
		return nil, domainErrors.ErrInvalidPaymentMethod
	}

	lines, err := u.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	items := snapshotCart(lines)
	total := model.ItemsTotal(items)

	if form.PaymentMethod.RequiresGateway() {
		return u.stagePayment(ctx, userID, form, items, total)
	}

	order, err := u.orders.Create(ctx, &model.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		Note:            form.Note,
		PaymentMethod:   form.PaymentMethod,
		PaymentStatus:   model.PaymentStatusUnpaid,
		Status:          model.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}

	u.finishPlacement(ctx, userID, form)
	return &model.CheckoutResult{Order: order}, nil
}

func (u *CheckoutUseCase) stagePayment(ctx context.Context, userID int64, form model.CheckoutForm, items []model.OrderItem, total float64) (*model.CheckoutResult, error) {
	txnRef := uuid.NewString()
	payment, err := u.gateway.CreatePayment(ctx, gateway.CreatePaymentRequest{
		TxnRef:           txnRef,
		Amount:           total,
		OrderDescription: fmt.Sprintf("Order payment %s", txnRef),
		OrderType:        "billpayment",
		BankCode:         form.BankCode,
	})
	if err != nil {
		return nil, err
	}

	record := &model.PendingCheckout{
		TxnRef:          payment.TxnRef,
		UserID:          userID,
		Items:           items,
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		Note:            form.Note,
		PaymentMethod:   form.PaymentMethod,
		Amount:          total,
	}
	if form.SaveAddress {
		record.NewAddress = strings.TrimSpace(form.ShippingAddress)
		record.MakeDefault = form.MakeDefault
	}
	if err := u.pending.Put(ctx, record); err != nil {
		return nil, err
	}

	u.logger.Info("checkout staged for gateway payment",
		zap.Int64("user_id", userID),
		zap.String("txn_ref", payment.TxnRef),
		zap.Float64("amount", total),
	)
	return &model.CheckoutResult{TxnRef: payment.TxnRef, PaymentURL: payment.PaymentURL}, nil
}

// finishPlacement saves the staged address and clears the cart. The order
// already exists at this point, so both steps are best-effort.
func (u *CheckoutUseCase) finishPlacement(ctx context.Context, userID int64, form model.CheckoutForm) {
	if form.SaveAddress && strings.TrimSpace(form.ShippingAddress) != "" {
		if _, err := u.addresses.Create(ctx, userID, strings.TrimSpace(form.ShippingAddress), form.MakeDefault); err != nil {
			u.logger.Warn("failed to save shipping address",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
	}
	if err := u.carts.Clear(ctx, userID); err != nil {
		u.logger.Warn("failed to clear cart after checkout",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func snapshotCart(lines []model.CartItem) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.OrderItem{
			ProductDetailID: line.ProductDetailID,
			Name:            line.Name,
			Quantity:        line.Quantity,
			PriceAtOrder:    line.UnitPrice,
		})
	}
	return items
}
