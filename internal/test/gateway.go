package test

import (
	"context"

	"github.com/saleshoes/storefront/internal/adapter/gateway"
)

// GatewayClientStub simulates the external payment gateway.
type GatewayClientStub struct {
	CreateFn func(context.Context, gateway.CreatePaymentRequest) (*gateway.Payment, error)
	QueryFn  func(context.Context, string) (*gateway.PaymentResult, error)

	Created []gateway.CreatePaymentRequest
	Queried []string
}

// CreatePayment records the request and returns a deterministic payment page.
func (s *GatewayClientStub) CreatePayment(ctx context.Context, req gateway.CreatePaymentRequest) (*gateway.Payment, error) {
	s.Created = append(s.Created, req)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &gateway.Payment{TxnRef: req.TxnRef, PaymentURL: "https://gateway.test/pay/" + req.TxnRef}, nil
}

// QueryPayment records the lookup and confirms the payment by default.
func (s *GatewayClientStub) QueryPayment(ctx context.Context, txnRef string) (*gateway.PaymentResult, error) {
	s.Queried = append(s.Queried, txnRef)
	if s.QueryFn != nil {
		return s.QueryFn(ctx, txnRef)
	}
	return &gateway.PaymentResult{TxnRef: txnRef, ResponseCode: "00"}, nil
}

var _ gateway.Client = (*GatewayClientStub)(nil)
