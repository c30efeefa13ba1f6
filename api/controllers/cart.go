package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vroommkart/storefront/api/responses"
	"github.com/vroommkart/storefront/api/validators"
	"github.com/vroommkart/storefront/pkg/checkout"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/models"
)

type cartResponse struct {
	Items   []models.CartItem `json:"items"`
	Summary checkout.Quote    `json:"summary"`
}

type cartItemRequest struct {
	ProductID string `json:"productId" validate:"notblank"`
}

type cartQuantityRequest struct {
	Delta int `json:"delta" validate:"required,min=-1000,max=1000"`
}

func cartView(shop Shopper) cartResponse {
	items, summary := shop.CartWithSummary()
	return cartResponse{Items: items, Summary: summary}
}

func GetCart(shop Shopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartView(shop))
	}
}

// AddCartItem adds one unit of a catalog product to the cart.
func AddCartItem(shop Shopper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := shop.AddToCart(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartView(shop))
	}
}

// UpdateCartItem applies a signed quantity delta to a cart line.
func UpdateCartItem(shop Shopper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := shop.UpdateCartQuantity(r.Context(), chi.URLParam(r, "id"), payload.Delta); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartView(shop))
	}
}

func RemoveCartItem(shop Shopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shop.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
		responses.WriteSuccess(w, cartView(shop))
	}
}

func ClearCart(shop Shopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shop.ClearCart(r.Context())
		responses.WriteSuccess(w, cartView(shop))
	}
}

func GetWishlist(shop Shopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, shop.Wishlist())
	}
}

func AddWishlistItem(shop Shopper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := shop.AddToWishlist(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shop.Wishlist())
	}
}

func RemoveWishlistItem(shop Shopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shop.RemoveFromWishlist(r.Context(), chi.URLParam(r, "id"))
		responses.WriteSuccess(w, shop.Wishlist())
	}
}
