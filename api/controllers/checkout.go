package controllers

import (
	"net/http"
	"strings"

	"github.com/vroommkart/storefront/api/responses"
	"github.com/vroommkart/storefront/api/validators"
	"github.com/vroommkart/storefront/pkg/enums"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/models"
)

type checkoutRequest struct {
	Name          string `json:"name" validate:"notblank"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"notblank"`
	Address       string `json:"address" validate:"notblank"`
	City          string `json:"city" validate:"notblank"`
	Pincode       string `json:"pincode" validate:"notblank"`
	PaymentMethod string `json:"paymentMethod"`
}

func (r checkoutRequest) shipping() models.ShippingInfo {
	return models.ShippingInfo{
		Name:    validators.SanitizeString(r.Name, 0),
		Email:   validators.SanitizeString(r.Email, 0),
		Phone:   validators.SanitizeString(r.Phone, 0),
		Address: validators.SanitizeString(r.Address, 0),
		City:    validators.SanitizeString(r.City, 0),
		Pincode: validators.SanitizeString(r.Pincode, 0),
	}
}

// Checkout places an order for the current cart and clears it.
func Checkout(shop Shopper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		method, err := enums.ParsePaymentMethod(strings.TrimSpace(payload.PaymentMethod))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		order, err := shop.Checkout(r.Context(), payload.shipping(), method.String())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
