package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
)

// IntRange bounds an integer query parameter. Default applies when the parameter is absent.
type IntRange struct {
	Default int
	Min     int
	Max     int
}

var (
	// SearchLimit bounds ?limit= on catalog search; the header dropdown shows six.
	SearchLimit = IntRange{Default: 6, Min: 1, Max: 50}
)

// QueryInt reads key from the query string and checks it against rng.
func QueryInt(r *http.Request, key string, rng IntRange) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return rng.Default, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Newf(pkgerrors.CodeValidation, "%s must be a whole number", key).
			WithDetails(map[string]any{"field": key, "value": raw})
	}
	if value < rng.Min || value > rng.Max {
		return 0, pkgerrors.Newf(pkgerrors.CodeValidation, "%s must be between %d and %d", key, rng.Min, rng.Max).
			WithDetails(map[string]any{"field": key, "min": rng.Min, "max": rng.Max})
	}
	return value, nil
}
