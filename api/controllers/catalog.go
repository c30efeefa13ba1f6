package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vroommkart/storefront/api/responses"
	"github.com/vroommkart/storefront/api/validators"
	"github.com/vroommkart/storefront/pkg/enums"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
)

const maxSearchQueryLen = 120

// ListProducts returns the catalog, optionally narrowed by ?category= or searched with ?q=.
func ListProducts(catalog Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if q := validators.SanitizeString(query.Get("q"), maxSearchQueryLen); q != "" {
			limit, err := validators.QueryInt(r, "limit", validators.SearchLimit)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, catalog.SearchProducts(q, limit))
			return
		}

		if raw := strings.TrimSpace(query.Get("category")); raw != "" {
			category, err := enums.ParseCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			responses.WriteSuccess(w, catalog.ProductsByCategory(category))
			return
		}

		responses.WriteSuccess(w, catalog.Products())
	}
}

func GetProduct(catalog Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		product, ok := catalog.Product(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"productId": id}))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func GetSiteConfig(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, catalog.SiteConfig())
	}
}
