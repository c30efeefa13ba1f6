package kv

import (
	"context"
	"fmt"

	"github.com/vroommkart/storefront/pkg/config"
	"github.com/vroommkart/storefront/pkg/db"
	"github.com/vroommkart/storefront/pkg/enums"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/migrate"
	"github.com/vroommkart/storefront/pkg/redis"
)

// Open builds the backend selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (Backend, error) {
	backend, err := cfg.Storage.BackendKind()
	if err != nil {
		return nil, err
	}
	ctx = logg.WithField(ctx, "storage_backend", backend.String())

	switch backend {
	case enums.StorageBackendMemory:
		logg.Warn(ctx, "memory storage selected; state will not survive restart")
		return NewMemoryStore(), nil

	case enums.StorageBackendFile:
		store, err := NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		logg.Info(ctx, "file storage ready")
		return store, nil

	case enums.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil

	case enums.StorageBackendSQLite, enums.StorageBackendPostgres:
		client, err := db.New(ctx, backend, cfg.DB, logg)
		if err != nil {
			return nil, err
		}
		if err := migrate.MaybeRun(ctx, cfg, logg, client); err != nil {
			_ = client.Close()
			return nil, err
		}
		return NewSQLStore(client), nil
	}

	return nil, fmt.Errorf("unsupported storage backend %q", backend)
}
