package config

import (
	"testing"
	"time"

	"github.com/vroommkart/storefront/pkg/enums"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAppEnv, "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	backend, err := cfg.Storage.BackendKind()
	if err != nil || backend != enums.StorageBackendFile {
		t.Fatalf("expected file backend by default, got %q (%v)", backend, err)
	}
	if cfg.Checkout.FreeShippingThreshold != 1999 || cfg.Checkout.ShippingFee != 99 {
		t.Fatalf("unexpected checkout defaults %+v", cfg.Checkout)
	}
	if cfg.Admin.Passcode != "2025" {
		t.Fatalf("unexpected default passcode %q", cfg.Admin.Passcode)
	}
	if cfg.Admin.TokenTTL != 8*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.Admin.TokenTTL)
	}
	if cfg.Sync.PathMarker != "#/sync/" {
		t.Fatalf("unexpected sync marker %q", cfg.Sync.PathMarker)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvStorageBackend, "redis")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvShippingFee, "149")
	t.Setenv(EnvCORSAllowOrigin, "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if cfg.Checkout.ShippingFee != 149 {
		t.Fatalf("expected shipping fee override, got %d", cfg.Checkout.ShippingFee)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{EnvStorageBackend: "floppy"}},
		{name: "postgres without dsn", env: map[string]string{EnvStorageBackend: "postgres"}},
		{name: "redis without address", env: map[string]string{EnvStorageBackend: "redis"}},
		{name: "negative fee", env: map[string]string{EnvShippingFee: "-1"}},
		{name: "prod with default secret", env: map[string]string{EnvAppEnv: "production"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected %s to be rejected", tt.name)
			}
		})
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() || devConfig.IsProd() {
		t.Fatalf("unexpected helpers for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "production"}
	if !prodConfig.IsProd() || prodConfig.IsDev() {
		t.Fatalf("unexpected helpers for %q", prodConfig.Env)
	}
}
