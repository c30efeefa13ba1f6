package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets the storefront and admin frontends call the API from their own origins. The admin
// gate travels as a bearer token, never a cookie, so credentials stay off.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, envHeader},
		MaxAge:         600,
	}).Handler
}
