package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/vroommkart/storefront/api/responses"
	"github.com/vroommkart/storefront/pkg/config"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
)

const readyTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Vroommkart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the blob backend. A nil pinger is always ready.
func HealthReady(cfg *config.Config, backend Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Vroommkart-Env", cfg.App.Env)
		if backend != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := backend.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage backend unavailable").
					WithDetails(map[string]any{"backend": cfg.Storage.Backend}))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready", "backend": cfg.Storage.Backend})
	}
}
