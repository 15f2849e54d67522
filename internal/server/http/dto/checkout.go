package dto

// CheckoutRequest carries the submitted checkout form.
type CheckoutRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shippingAddress"`
	Note            string `json:"note"`
	PaymentMethod   string `json:"paymentMethod"`
	BankCode        string `json:"bankCode"`
	SaveAddress     bool   `json:"saveAddress"`
	MakeDefault     bool   `json:"makeDefault"`
}

// CheckoutResponse is the checkout outcome: either an order placed right away
// or a payment URL the buyer must be sent to.
type CheckoutResponse struct {
	OrderID    int64  `json:"orderId,omitempty"`
	TxnRef     string `json:"txnRef,omitempty"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

// FieldErrorResponse reports a rejected form field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
