package errors

import "errors"

var (
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidProduct         = errors.New("invalid product")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrOrderNotCancellable    = errors.New("order can no longer be cancelled")
	ErrPendingCheckoutMissing = errors.New("pending checkout record missing")
	ErrPaymentNotConfirmed    = errors.New("payment not confirmed by gateway")
)
