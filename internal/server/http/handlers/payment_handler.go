package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/server/http/dto"
)

// PaymentHandler resolves redirects coming back from the payment gateway.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Return handles GET /api/payment/return. The gateway appends the transaction
// reference and response code to the redirect it sends the buyer through.
func (h *PaymentHandler) Return(c *gin.Context) {
	txnRef := c.Query("vnp_TxnRef")
	responseCode := c.Query("vnp_ResponseCode")

	result, err := h.facade.HandlePaymentReturn(c.Request.Context(), txnRef, responseCode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPendingCheckoutMissing):
			c.JSON(http.StatusNotFound, dto.PaymentReturnResponse{
				Outcome:  string(model.PaymentOutcomeError),
				Redirect: "/cart",
			})
		case errors.Is(err, domainErrors.ErrPaymentNotConfirmed):
			c.JSON(http.StatusConflict, dto.PaymentReturnResponse{
				Outcome:  string(model.PaymentOutcomeError),
				Redirect: "/cart",
			})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.PaymentReturnResponse{
		Outcome:  string(result.Outcome),
		OrderID:  result.OrderID,
		Redirect: result.Redirect,
	})
}
