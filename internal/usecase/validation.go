package usecase

import (
	"regexp"
	"strings"

	"github.com/saleshoes/storefront/internal/domain/model"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(84|0[35789])[0-9]{8}$`)
)

// ValidationError names the first checkout field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateCheckoutForm checks the buyer's contact and shipping details.
// Presence is checked field by field before any format rules so the response
// always names the first missing field.
func ValidateCheckoutForm(form model.CheckoutForm) error {
	fullName := strings.TrimSpace(form.FullName)
	email := strings.TrimSpace(form.Email)
	phone := strings.TrimSpace(form.Phone)
	address := strings.TrimSpace(form.ShippingAddress)

	if fullName == "" {
		return &ValidationError{Field: "fullName", Message: "full name is required"}
	}
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if phone == "" {
		return &ValidationError{Field: "phone", Message: "phone is required"}
	}
	if address == "" {
		return &ValidationError{Field: "shippingAddress", Message: "shipping address is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	if !phonePattern.MatchString(phone) {
		return &ValidationError{Field: "phone", Message: "invalid phone number"}
	}
	return nil
}
