package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vroommkart/storefront/api/responses"
	pkgAuth "github.com/vroommkart/storefront/pkg/auth"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
)

// GateAuthorizer validates admin gate tokens.
type GateAuthorizer interface {
	Authorize(ctx context.Context, token string) (*pkgAuth.GateClaims, error)
}

// AdminGate requires a bearer gate token minted by the admin unlock endpoint.
func AdminGate(authorizer GateAuthorizer, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}

			claims, err := authorizer.Authorize(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithGateID(r.Context(), claims.ID)
			if logg != nil {
				ctx = logg.WithGateID(ctx, claims.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
