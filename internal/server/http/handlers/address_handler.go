package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/server/http/dto"
)

// AddressHandler manages saved shipping addresses.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// List handles GET /api/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	addresses, err := h.facade.Addresses(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		response = append(response, toAddressResponse(a))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	addr, err := h.facade.AddAddress(c.Request.Context(), userID, req.FullAddress, req.IsDefault)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAddress):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toAddressResponse(*addr))
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:          a.ID,
		FullAddress: a.FullAddress,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
	}
}
