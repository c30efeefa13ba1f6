package storefront

import (
	"context"

	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

// ValidatePatch reports whether patch could be applied without breaking a store invariant.
func ValidatePatch(patch models.SnapshotPatch) error {
	if patch.SiteConfig != nil && len(patch.SiteConfig.HeroBanners) == 0 {
		return noHeroBanners()
	}
	return nil
}

// ApplyPatch replaces each slice present in patch wholesale and leaves the others alone.
// The patch is validated in full before anything changes. Cart and wishlist are untouched.
func (s *Store) ApplyPatch(ctx context.Context, patch models.SnapshotPatch) error {
	if err := ValidatePatch(patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.opContext(ctx, "apply_patch")
	if patch.IsEmpty() {
		s.record(ctx, "apply_patch", metrics.ResultNoop)
		return nil
	}

	if patch.Products != nil {
		s.products = models.CloneProducts(*patch.Products)
		s.persistProducts(ctx)
	}
	if patch.Orders != nil {
		s.orders = models.CloneOrders(*patch.Orders)
		s.persistOrders(ctx)
	}
	if patch.Customers != nil {
		s.customers = models.CloneCustomers(*patch.Customers)
		s.persistCustomers(ctx)
	}
	if patch.SiteConfig != nil {
		s.siteConfig = patch.SiteConfig.Clone()
		s.persistSiteConfig(ctx)
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"products":    patch.Products != nil,
		"orders":      patch.Orders != nil,
		"customers":   patch.Customers != nil,
		"site_config": patch.SiteConfig != nil,
	})
	s.record(ctx, "apply_patch", metrics.ResultOK)
	return nil
}
