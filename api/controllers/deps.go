package controllers

import (
	"context"

	"github.com/vroommkart/storefront/internal/storefront"
	"github.com/vroommkart/storefront/pkg/checkout"
	"github.com/vroommkart/storefront/pkg/enums"
	"github.com/vroommkart/storefront/pkg/models"
)

// Catalog is the read side of the store used by the public product endpoints.
type Catalog interface {
	Products() []models.Product
	Product(id string) (models.Product, bool)
	ProductsByCategory(category enums.Category) []models.Product
	SearchProducts(query string, limit int) []models.Product
	SiteConfig() models.SiteConfig
}

// Shopper covers the session cart, wishlist and checkout.
type Shopper interface {
	CartWithSummary() ([]models.CartItem, checkout.Quote)
	AddToCart(ctx context.Context, id string) error
	UpdateCartQuantity(ctx context.Context, id string, delta int) error
	RemoveFromCart(ctx context.Context, id string)
	ClearCart(ctx context.Context)
	Wishlist() []models.Product
	AddToWishlist(ctx context.Context, id string) error
	RemoveFromWishlist(ctx context.Context, id string)
	Checkout(ctx context.Context, shipping models.ShippingInfo, paymentMethod string) (models.Order, error)
}

// BackOffice covers the mutations reachable behind the admin gate.
type BackOffice interface {
	Product(id string) (models.Product, bool)
	AddProduct(ctx context.Context, p models.Product)
	UpdateProduct(ctx context.Context, p models.Product) bool
	DeleteProduct(ctx context.Context, id string) bool
	Orders() []models.Order
	Order(id string) (models.Order, bool)
	UpdateOrderStatus(ctx context.Context, id string, status enums.OrderStatus) (bool, error)
	Customers() []models.Customer
	SiteConfig() models.SiteConfig
	UpdateSiteConfig(ctx context.Context, cfg models.SiteConfig) error
	AddHeroBanner(ctx context.Context, banner models.HeroBanner) models.HeroBanner
	RemoveHeroBanner(ctx context.Context, id string) error
	Dashboard(lowStockThreshold int) storefront.Dashboard
}

// StateSync is the share-link surface.
type StateSync interface {
	ExportToken() (string, error)
	ShareableLink(base string) (string, error)
	ImportToken(ctx context.Context, token string) error
	DetectAndImport(ctx context.Context, location string) (string, bool, error)
}

// Pinger reports whether the blob backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
