package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/server/http/dto"
	"github.com/saleshoes/storefront/internal/usecase"
)

// CheckoutHandler processes checkout submissions.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Submit handles POST /api/checkout.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.SubmitCheckout(c.Request.Context(), userID, model.CheckoutForm{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		Note:            req.Note,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		BankCode:        req.BankCode,
		SaveAddress:     req.SaveAddress,
		MakeDefault:     req.MakeDefault,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.FieldErrorResponse{Field: vErr.Field, Message: vErr.Message})
		case errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	if result.Order != nil {
		c.JSON(http.StatusCreated, dto.CheckoutResponse{OrderID: result.Order.ID})
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{TxnRef: result.TxnRef, PaymentURL: result.PaymentURL})
}
