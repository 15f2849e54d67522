package dto

// PaymentReturnResponse tells the frontend how a gateway redirect resolved
// and where to send the buyer next.
type PaymentReturnResponse struct {
	Outcome  string `json:"outcome"`
	OrderID  int64  `json:"orderId,omitempty"`
	Redirect string `json:"redirect"`
}
