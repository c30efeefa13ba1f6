package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/vroommkart/storefront/pkg/enums"
)

const (
	EnvPrefix = "VROOMMKART"

	EnvAppEnv          = "VROOMMKART_APP_ENV"
	EnvPort            = "VROOMMKART_APP_PORT"
	EnvStorageBackend  = "VROOMMKART_STORAGE_BACKEND"
	EnvStorageDir      = "VROOMMKART_STORAGE_DIR"
	EnvDBDSN           = "VROOMMKART_DB_DSN"
	EnvRedisURL        = "VROOMMKART_REDIS_URL"
	EnvRedisAddr       = "VROOMMKART_REDIS_ADDR"
	EnvAdminPasscode   = "VROOMMKART_ADMIN_PASSCODE"
	EnvAdminSecret     = "VROOMMKART_ADMIN_TOKEN_SECRET"
	EnvFreeShipping    = "VROOMMKART_CHECKOUT_FREE_SHIPPING_THRESHOLD"
	EnvShippingFee     = "VROOMMKART_CHECKOUT_SHIPPING_FEE"
	EnvSyncBaseURL     = "VROOMMKART_SYNC_BASE_URL"
	EnvCORSAllowOrigin = "VROOMMKART_CORS_ALLOWED_ORIGINS"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	defaultAdminSecret = "vroommkart-local-admin-gate-secret"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DB       DBConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Admin    AdminConfig
	Sync     SyncConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VROOMMKART_APP_ENV" default:"development"`
	Port         string `envconfig:"VROOMMKART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VROOMMKART_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"VROOMMKART_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"VROOMMKART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "dev")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "prod")
}

// StorageConfig selects the blob backend that stands in for browser local storage.
type StorageConfig struct {
	Backend    string `envconfig:"VROOMMKART_STORAGE_BACKEND" default:"file"`
	Dir        string `envconfig:"VROOMMKART_STORAGE_DIR" default:"./data"`
	KeyPrefix  string `envconfig:"VROOMMKART_STORAGE_KEY_PREFIX" default:"vroommkart"`
	KeyVersion string `envconfig:"VROOMMKART_STORAGE_KEY_VERSION" default:"v3"`
}

// BackendKind parses the configured backend.
func (s StorageConfig) BackendKind() (enums.StorageBackend, error) {
	return enums.ParseStorageBackend(strings.ToLower(strings.TrimSpace(s.Backend)))
}

type DBConfig struct {
	DSN         string `envconfig:"VROOMMKART_DB_DSN"`
	SQLitePath  string `envconfig:"VROOMMKART_DB_SQLITE_PATH" default:"./data/vroommkart.db"`
	AutoMigrate bool   `envconfig:"VROOMMKART_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"VROOMMKART_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"VROOMMKART_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"VROOMMKART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VROOMMKART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VROOMMKART_REDIS_URL"`
	Address      string        `envconfig:"VROOMMKART_REDIS_ADDR"`
	Password     string        `envconfig:"VROOMMKART_REDIS_PASSWORD"`
	DB           int           `envconfig:"VROOMMKART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VROOMMKART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VROOMMKART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VROOMMKART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VROOMMKART_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"VROOMMKART_REDIS_WRITE_TIMEOUT" default:"3s"`
}

type CheckoutConfig struct {
	FreeShippingThreshold int64 `envconfig:"VROOMMKART_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"1999"`
	ShippingFee           int64 `envconfig:"VROOMMKART_CHECKOUT_SHIPPING_FEE" default:"99"`
	LowStockThreshold     int   `envconfig:"VROOMMKART_CHECKOUT_LOW_STOCK_THRESHOLD" default:"5"`
}

// AdminConfig holds the back-office passcode gate. The passcode is a UI gate, not authentication.
type AdminConfig struct {
	Passcode    string        `envconfig:"VROOMMKART_ADMIN_PASSCODE" default:"2025"`
	TokenSecret string        `envconfig:"VROOMMKART_ADMIN_TOKEN_SECRET" default:"vroommkart-local-admin-gate-secret"`
	TokenIssuer string        `envconfig:"VROOMMKART_ADMIN_TOKEN_ISSUER" default:"vroommkart"`
	TokenTTL    time.Duration `envconfig:"VROOMMKART_ADMIN_TOKEN_TTL" default:"8h"`
}

type SyncConfig struct {
	BaseURL      string `envconfig:"VROOMMKART_SYNC_BASE_URL" default:"http://localhost:3000/"`
	PathMarker   string `envconfig:"VROOMMKART_SYNC_PATH_MARKER" default:"#/sync/"`
	HomeFragment string `envconfig:"VROOMMKART_SYNC_HOME_FRAGMENT" default:"#/home"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"VROOMMKART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (c *Config) validate() error {
	backend, err := c.Storage.BackendKind()
	if err != nil {
		return err
	}
	switch backend {
	case enums.StorageBackendPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required for the postgres storage backend", EnvDBDSN)
		}
	case enums.StorageBackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("either %s or %s is required for the redis storage backend", EnvRedisURL, EnvRedisAddr)
		}
	}
	if c.Checkout.FreeShippingThreshold < 0 || c.Checkout.ShippingFee < 0 {
		return fmt.Errorf("checkout thresholds must be non-negative")
	}
	if strings.TrimSpace(c.Admin.Passcode) == "" {
		return fmt.Errorf("%s must not be empty", EnvAdminPasscode)
	}
	if c.App.IsProd() && c.Admin.TokenSecret == defaultAdminSecret {
		return fmt.Errorf("%s must be set in production", EnvAdminSecret)
	}
	if !strings.Contains(c.Sync.PathMarker, "#") {
		return fmt.Errorf("sync path marker %q must contain a fragment marker", c.Sync.PathMarker)
	}
	return nil
}
