package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"

	"github.com/vroommkart/storefront/internal/kv"
	"github.com/vroommkart/storefront/internal/seed"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/models"
)

// Keys names the four persisted slices.
type Keys struct {
	Products   string
	Orders     string
	Customers  string
	SiteConfig string
}

// KeysFor builds keys shaped like vroommkart_products_v3.
func KeysFor(prefix, version string) Keys {
	key := func(slice string) string {
		return fmt.Sprintf("%s_%s_%s", prefix, slice, version)
	}
	return Keys{
		Products:   key("products"),
		Orders:     key("orders"),
		Customers:  key("customers"),
		SiteConfig: key("site_config"),
	}
}

// DefaultKeys matches the keys browsers already hold.
func DefaultKeys() Keys {
	return KeysFor("vroommkart", "v3")
}

// Adapter reads and writes store slices as JSON blobs.
type Adapter struct {
	store kv.Store
	keys  Keys
	logg  *logger.Logger
}

func NewAdapter(store kv.Store, keys Keys, logg *logger.Logger) *Adapter {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Adapter{store: store, keys: keys, logg: logg.Component("persistence")}
}

func (a *Adapter) Keys() Keys {
	return a.keys
}

// Load restores every slice. A missing, unreadable or unparsable slice falls back to
// built-in data: the seed catalog, empty orders and customers, the default site config.
func (a *Adapter) Load(ctx context.Context) models.Snapshot {
	var snap models.Snapshot

	if !a.load(ctx, a.keys.Products, &snap.Products) || snap.Products == nil {
		snap.Products = seed.Products()
	}
	if !a.load(ctx, a.keys.Orders, &snap.Orders) || snap.Orders == nil {
		snap.Orders = []models.Order{}
	}
	if !a.load(ctx, a.keys.Customers, &snap.Customers) || snap.Customers == nil {
		snap.Customers = []models.Customer{}
	}
	if !a.load(ctx, a.keys.SiteConfig, &snap.SiteConfig) || len(snap.SiteConfig.HeroBanners) == 0 {
		snap.SiteConfig = seed.SiteConfig()
	}
	return snap
}

func (a *Adapter) load(ctx context.Context, key string, dest any) bool {
	ctx = a.logg.WithField(ctx, "key", key)
	raw, found, err := a.store.Get(ctx, key)
	if err != nil {
		a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "persistence.read_failed; using defaults")
		return false
	}
	if !found {
		a.logg.Debug(ctx, "persistence.absent; using defaults")
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "persistence.parse_failed; using defaults")
		return false
	}
	return true
}

func (a *Adapter) SaveProducts(ctx context.Context, products []models.Product) error {
	return a.save(ctx, a.keys.Products, nonNil(products))
}

func (a *Adapter) SaveOrders(ctx context.Context, orders []models.Order) error {
	return a.save(ctx, a.keys.Orders, nonNil(orders))
}

func (a *Adapter) SaveCustomers(ctx context.Context, customers []models.Customer) error {
	return a.save(ctx, a.keys.Customers, nonNil(customers))
}

func (a *Adapter) SaveSiteConfig(ctx context.Context, cfg models.SiteConfig) error {
	return a.save(ctx, a.keys.SiteConfig, cfg)
}

// SaveSnapshot writes all four slices so a freshly seeded backend holds the state it
// was started with. Every slice is attempted; the errors are combined.
func (a *Adapter) SaveSnapshot(ctx context.Context, snap models.Snapshot) error {
	return multierr.Combine(
		a.SaveProducts(ctx, snap.Products),
		a.SaveOrders(ctx, snap.Orders),
		a.SaveCustomers(ctx, snap.Customers),
		a.SaveSiteConfig(ctx, snap.SiteConfig),
	)
}

func (a *Adapter) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := a.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
