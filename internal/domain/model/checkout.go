package model

// CheckoutForm carries the buyer's submitted checkout details.
type CheckoutForm struct {
	FullName        string
	Email           string
	Phone           string
	ShippingAddress string
	Note            string
	PaymentMethod   PaymentMethod
	BankCode        string
	SaveAddress     bool
	MakeDefault     bool
}

// CheckoutResult is the outcome of a checkout submission. For gateway-backed
// payments Order is nil and PaymentURL points at the hosted payment page; for
// everything else the order exists immediately and PaymentURL is empty.
type CheckoutResult struct {
	Order      *Order
	TxnRef     string
	PaymentURL string
}

// PaymentOutcome classifies how a gateway redirect was resolved.
type PaymentOutcome string

const (
	// PaymentOutcomeSuccess means the payment was confirmed and an order was
	// created.
	PaymentOutcomeSuccess PaymentOutcome = "success"
	// PaymentOutcomeFailed means the gateway reported a declined or aborted
	// payment.
	PaymentOutcomeFailed PaymentOutcome = "failed"
	// PaymentOutcomeError means the redirect could not be matched to a pending
	// checkout or verification against the gateway broke down.
	PaymentOutcomeError PaymentOutcome = "error"
)

// PaymentReturn is the resolution of a gateway redirect.
type PaymentReturn struct {
	Outcome  PaymentOutcome
	OrderID  int64
	Redirect string
}
