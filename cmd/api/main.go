package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vroommkart/storefront/api/routes"
	"github.com/vroommkart/storefront/internal/auth"
	"github.com/vroommkart/storefront/internal/kv"
	"github.com/vroommkart/storefront/internal/persistence"
	"github.com/vroommkart/storefront/internal/statesync"
	"github.com/vroommkart/storefront/internal/storefront"
	"github.com/vroommkart/storefront/pkg/checkout"
	"github.com/vroommkart/storefront/pkg/config"
	"github.com/vroommkart/storefront/pkg/instance"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := kv.Open(ctx, cfg, logg.Component("kv"))
	if err != nil {
		logg.Error(ctx, "failed to open storage backend", err)
		os.Exit(1)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage backend", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(reg)

	adapter := persistence.NewAdapter(backend, persistence.KeysFor(cfg.Storage.KeyPrefix, cfg.Storage.KeyVersion), logg)
	initial := adapter.Load(ctx)
	if err := adapter.SaveSnapshot(ctx, initial); err != nil {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "initial state write failed; continuing in memory")
	}
	store := storefront.NewStore(storefront.StoreParams{
		Initial:   initial,
		Persister: adapter,
		Shipping: checkout.ShippingRules{
			FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
			FlatFee:               cfg.Checkout.ShippingFee,
		},
		Metrics: storeMetrics,
		Logger:  logg,
	})

	syncService, err := statesync.NewService(statesync.ServiceParams{
		Store:        store,
		BaseURL:      cfg.Sync.BaseURL,
		PathMarker:   cfg.Sync.PathMarker,
		HomeFragment: cfg.Sync.HomeFragment,
		Metrics:      storeMetrics,
		Logger:       logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create sync service", err)
		os.Exit(1)
	}

	adminGate, err := auth.NewService(auth.ServiceParams{Config: cfg.Admin, Logger: logg})
	if err != nil {
		logg.Error(ctx, "failed to create admin gate", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":             cfg.App.Env,
		"addr":            addr,
		"storage_backend": cfg.Storage.Backend,
		"instance":        instance.GetID(),
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:      cfg,
			Logger:      logg,
			Store:       store,
			Sync:        syncService,
			AdminGate:   adminGate,
			Backend:     backend,
			Gatherer:    reg,
			HTTPMetrics: metrics.NewHTTPMetrics(reg),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "graceful shutdown failed", err)
		}
	}
}
