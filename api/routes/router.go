package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vroommkart/storefront/api/controllers"
	"github.com/vroommkart/storefront/api/middleware"
	"github.com/vroommkart/storefront/internal/auth"
	"github.com/vroommkart/storefront/pkg/config"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/metrics"
)

// Storefront is everything the public and back-office routes need from the store.
type Storefront interface {
	controllers.Catalog
	controllers.Shopper
	controllers.BackOffice
}

// Params bundles the dependencies the router wires into controllers.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       Storefront
	Sync        controllers.StateSync
	AdminGate   auth.Service
	Backend     controllers.Pinger
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
	Now         func() time.Time
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger
	now := p.Now
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, p.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.Backend, logg))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(p.Store, logg))
			r.Get("/{id}", controllers.GetProduct(p.Store, logg))
		})
		r.Get("/site-config", controllers.GetSiteConfig(p.Store))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(p.Store))
			r.Delete("/", controllers.ClearCart(p.Store))
			r.Post("/items", controllers.AddCartItem(p.Store, logg))
			r.Patch("/items/{id}", controllers.UpdateCartItem(p.Store, logg))
			r.Delete("/items/{id}", controllers.RemoveCartItem(p.Store))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(p.Store))
			r.Post("/items", controllers.AddWishlistItem(p.Store, logg))
			r.Delete("/items/{id}", controllers.RemoveWishlistItem(p.Store))
		})

		r.Post("/checkout", controllers.Checkout(p.Store, logg))

		r.Route("/sync", func(r chi.Router) {
			r.Get("/export", controllers.SyncExport(p.Sync, logg))
			r.Get("/link", controllers.SyncLink(p.Sync, logg))
			r.Post("/import", controllers.SyncImport(p.Sync, logg))
			r.Post("/detect", controllers.SyncDetect(p.Sync, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/unlock", controllers.AdminUnlock(p.AdminGate, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminGate(p.AdminGate, logg))

				r.Get("/dashboard", controllers.AdminDashboard(p.Store, cfg.Checkout.LowStockThreshold))

				r.Route("/products", func(r chi.Router) {
					r.Post("/", controllers.AdminCreateProduct(p.Store, now, logg))
					r.Put("/{id}", controllers.AdminUpdateProduct(p.Store, now, logg))
					r.Delete("/{id}", controllers.AdminDeleteProduct(p.Store))
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", controllers.AdminListOrders(p.Store, logg))
					r.Get("/{id}", controllers.AdminGetOrder(p.Store, logg))
					r.Patch("/{id}/status", controllers.AdminUpdateOrderStatus(p.Store, logg))
				})

				r.Get("/customers", controllers.AdminListCustomers(p.Store, logg))

				r.Route("/site-config", func(r chi.Router) {
					r.Put("/", controllers.AdminReplaceSiteConfig(p.Store, logg))
					r.Post("/banners", controllers.AdminAddHeroBanner(p.Store, logg))
					r.Delete("/banners/{id}", controllers.AdminRemoveHeroBanner(p.Store, logg))
				})
			})
		})
	})

	return r
}
