package model

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodBanking PaymentMethod = "banking"
	PaymentMethodMomo    PaymentMethod = "momo"
)

// Valid reports whether the method is supported.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBanking, PaymentMethodMomo:
		return true
	}
	return false
}

// RequiresGateway reports whether the method needs a redirect to the hosted
// payment page. Only bank transfer does; cod and momo settle out of band.
func (m PaymentMethod) RequiresGateway() bool {
	return m == PaymentMethodBanking
}

// PaymentStatus tracks whether an order has been paid.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// GatewaySuccessCode is the response code the payment gateway sends on the
// return redirect when the transaction succeeded.
const GatewaySuccessCode = "00"
