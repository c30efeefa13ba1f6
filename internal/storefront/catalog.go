package storefront

import (
	"context"
	"strings"

	"github.com/vroommkart/storefront/pkg/enums"
	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

const defaultSearchLimit = 6

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneProducts(s.products)
}

// Product returns the first catalog entry with id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.findProduct(id); ok {
		return s.products[i].Clone(), true
	}
	return models.Product{}, false
}

func (s *Store) ProductsByCategory(category enums.Category) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// SearchProducts matches name, brand or category case-insensitively. Queries shorter
// than two characters match nothing. limit <= 0 uses the default of six.
func (s *Store) SearchProducts(query string, limit int) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Product{}
	if len(q) < 2 {
		return out
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// AddProduct appends p. Ids are not checked for uniqueness.
func (s *Store) AddProduct(ctx context.Context, p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "add_product"), p.ID)

	s.products = append(s.products, p.Clone())
	s.persistProducts(ctx)
	s.record(ctx, "add_product", metrics.ResultOK)
}

// UpdateProduct replaces every entry whose id matches p.ID and reports whether any did.
// Cart lines and order snapshots keep their own copies.
func (s *Store) UpdateProduct(ctx context.Context, p models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "update_product"), p.ID)

	updated := false
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p.Clone()
			updated = true
		}
	}
	if !updated {
		s.record(ctx, "update_product", metrics.ResultNoop)
		return false
	}
	s.persistProducts(ctx)
	s.record(ctx, "update_product", metrics.ResultOK)
	return true
}

// DeleteProduct removes every entry with id and reports whether any existed.
// Cart and wishlist entries for the product are left in place.
func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "delete_product"), id)

	kept := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.products) {
		s.record(ctx, "delete_product", metrics.ResultNoop)
		return false
	}
	s.products = kept
	s.persistProducts(ctx)
	s.record(ctx, "delete_product", metrics.ResultOK)
	return true
}
