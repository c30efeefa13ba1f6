// Package storefront holds the catalog, cart, wishlist, orders, customers and site
// config of one storefront, and the order pipeline that ties them together.
package storefront

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vroommkart/storefront/pkg/checkout"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

// Persister writes whole slices back to durable storage.
type Persister interface {
	SaveProducts(ctx context.Context, products []models.Product) error
	SaveOrders(ctx context.Context, orders []models.Order) error
	SaveCustomers(ctx context.Context, customers []models.Customer) error
	SaveSiteConfig(ctx context.Context, cfg models.SiteConfig) error
}

// StoreParams groups dependencies for the store.
type StoreParams struct {
	// Initial is the restored durable state. Cart and wishlist always start empty.
	Initial models.Snapshot
	// Persister is optional; without one the store lives in memory only.
	Persister Persister
	Shipping  checkout.ShippingRules
	Metrics   *metrics.StoreMetrics
	Logger    *logger.Logger
	Now       func() time.Time
	// NewToken returns the random part of generated ids.
	NewToken func() string
}

// Store is the single source of truth for one storefront. Every exported method is
// safe for concurrent use; mutations run one at a time and write through to the
// persister before returning.
type Store struct {
	mu sync.Mutex

	products   []models.Product
	orders     []models.Order
	customers  []models.Customer
	siteConfig models.SiteConfig
	cart       []models.CartItem
	wishlist   []models.Product

	persister Persister
	shipping  checkout.ShippingRules
	metrics   *metrics.StoreMetrics
	logg      *logger.Logger
	now       func() time.Time
	newToken  func() string
}

// NewStore builds a store from restored state.
func NewStore(params StoreParams) *Store {
	s := &Store{
		products:   models.CloneProducts(params.Initial.Products),
		orders:     models.CloneOrders(params.Initial.Orders),
		customers:  models.CloneCustomers(params.Initial.Customers),
		siteConfig: params.Initial.SiteConfig.Clone(),
		cart:       []models.CartItem{},
		wishlist:   []models.Product{},
		persister:  params.Persister,
		shipping:   params.Shipping,
		metrics:    params.Metrics,
		logg:       params.Logger,
		now:        params.Now,
		newToken:   params.NewToken,
	}
	if s.shipping == (checkout.ShippingRules{}) {
		s.shipping = checkout.DefaultShippingRules()
	}
	if s.logg == nil {
		s.logg = logger.Nop()
	}
	s.logg = s.logg.Component("storefront")
	if s.now == nil {
		s.now = time.Now
	}
	if s.newToken == nil {
		s.newToken = defaultToken
	}
	return s
}

func defaultToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// ShippingRules reports the rules applied by the order pipeline.
func (s *Store) ShippingRules() checkout.ShippingRules {
	return s.shipping
}

func (s *Store) opContext(ctx context.Context, op string) context.Context {
	return s.logg.WithOp(ctx, op)
}

func (s *Store) record(ctx context.Context, op, result string) {
	s.metrics.IncOperation(op, result)
	if result == metrics.ResultOK {
		s.logg.Info(ctx, "storefront."+op)
		return
	}
	s.logg.Debug(s.logg.WithField(ctx, "result", result), "storefront."+op)
}

// Write failures are not recoverable from the store's point of view: the in-memory
// state stays authoritative and the failure is logged and counted.
func (s *Store) persistProducts(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.reportWrite(ctx, "products", s.persister.SaveProducts(ctx, s.products))
}

func (s *Store) persistOrders(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.reportWrite(ctx, "orders", s.persister.SaveOrders(ctx, s.orders))
}

func (s *Store) persistCustomers(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.reportWrite(ctx, "customers", s.persister.SaveCustomers(ctx, s.customers))
}

func (s *Store) persistSiteConfig(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.reportWrite(ctx, "site_config", s.persister.SaveSiteConfig(ctx, s.siteConfig))
}

func (s *Store) reportWrite(ctx context.Context, slice string, err error) {
	if err == nil {
		return
	}
	s.metrics.IncWriteFailure(slice)
	ctx = s.logg.WithFields(ctx, map[string]any{"slice": slice, "error": err.Error()})
	s.logg.Warn(ctx, "storefront.persist_failed")
}

func (s *Store) findProduct(id string) (int, bool) {
	for i := range s.products {
		if s.products[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Snapshot returns a deep copy of the durable state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Snapshot{
		Products:   models.CloneProducts(s.products),
		Orders:     models.CloneOrders(s.orders),
		Customers:  models.CloneCustomers(s.customers),
		SiteConfig: s.siteConfig.Clone(),
	}
}
