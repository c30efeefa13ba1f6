package middleware

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/vroommkart/storefront/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"
	envHeader       = "X-Vroommkart-Env"
)

// Caller supplied ids are echoed into logs and headers, so only short token-like values pass.
var acceptedRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestID reuses a well-formed X-Request-Id or mints a uuid, echoes it back and threads it
// through the request context and log fields.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if !acceptedRequestID.MatchString(id) {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			ctx := WithRequestID(r.Context(), id)
			if logg != nil {
				ctx = logg.WithRequestID(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
