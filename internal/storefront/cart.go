package storefront

import (
	"context"
	"math"

	"github.com/vroommkart/storefront/pkg/checkout"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneCartItems(s.cart)
}

// CartSummary prices the current cart with the store's shipping rules.
func (s *Store) CartSummary() checkout.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping.Price(cartLines(s.cart))
}

// CartWithSummary returns the cart lines and their price under one lock, so the two always
// describe the same cart.
func (s *Store) CartWithSummary() ([]models.CartItem, checkout.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneCartItems(s.cart), s.shipping.Price(cartLines(s.cart))
}

func cartLines(items []models.CartItem) []checkout.Line {
	lines := make([]checkout.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, checkout.Line{UnitPrice: item.Price, Quantity: item.Quantity})
	}
	return lines
}

func (s *Store) findCartLine(id string) (int, bool) {
	for i := range s.cart {
		if s.cart[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// liveStock is the catalog stock for id; a product missing from the catalog has none.
func (s *Store) liveStock(id string) int {
	if i, ok := s.findProduct(id); ok {
		return s.products[i].Stock
	}
	return 0
}

func saturatingAdd(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

func outOfStock(id string, requested, available int) error {
	return pkgerrors.Wrap(pkgerrors.CodeStateConflict, ErrOutOfStock, "not enough stock").WithDetails(map[string]any{
		"productId": id,
		"requested": requested,
		"available": available,
	})
}

func productNotFound(id string) error {
	return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrProductNotFound, "product not found").WithDetails(map[string]any{
		"productId": id,
	})
}

// AddToCart adds one unit of the catalog product with id. A new line snapshots the
// product as it is now. The change is rejected with ErrOutOfStock when the resulting
// quantity would exceed live stock.
func (s *Store) AddToCart(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "add_to_cart"), id)

	pi, ok := s.findProduct(id)
	if !ok {
		s.record(ctx, "add_to_cart", metrics.ResultRejected)
		return productNotFound(id)
	}
	stock := s.products[pi].Stock

	if li, ok := s.findCartLine(id); ok {
		next := s.cart[li].Quantity + 1
		if next > stock {
			s.record(ctx, "add_to_cart", metrics.ResultRejected)
			return outOfStock(id, next, stock)
		}
		s.cart[li].Quantity = next
		s.record(ctx, "add_to_cart", metrics.ResultOK)
		return nil
	}

	if stock < 1 {
		s.record(ctx, "add_to_cart", metrics.ResultRejected)
		return outOfStock(id, 1, stock)
	}
	s.cart = append(s.cart, models.CartItem{Product: s.products[pi].Clone(), Quantity: 1})
	s.record(ctx, "add_to_cart", metrics.ResultOK)
	return nil
}

// UpdateCartQuantity moves a line's quantity by delta, never below 1. A positive delta
// that would exceed live stock is rejected with ErrOutOfStock. Unknown lines are ignored.
func (s *Store) UpdateCartQuantity(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "update_cart_quantity"), id)

	li, ok := s.findCartLine(id)
	if !ok {
		s.record(ctx, "update_cart_quantity", metrics.ResultNoop)
		return nil
	}
	current := s.cart[li].Quantity
	if delta > 0 {
		// Compare against the headroom so a huge delta cannot wrap past the guard.
		if stock := s.liveStock(id); delta > stock-current {
			s.record(ctx, "update_cart_quantity", metrics.ResultRejected)
			return outOfStock(id, saturatingAdd(current, delta), stock)
		}
		s.cart[li].Quantity = current + delta
	} else {
		s.cart[li].Quantity = current + max(delta, 1-current)
	}
	s.record(ctx, "update_cart_quantity", metrics.ResultOK)
	return nil
}

// RemoveFromCart drops the line for id, if any.
func (s *Store) RemoveFromCart(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "remove_from_cart"), id)

	kept := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.record(ctx, "remove_from_cart", metrics.ResultOK)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []models.CartItem{}
	s.record(s.opContext(ctx, "clear_cart"), "clear_cart", metrics.ResultOK)
}

// Wishlist returns a copy of the wishlist.
func (s *Store) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneProducts(s.wishlist)
}

// AddToWishlist adds the catalog product with id. Adding twice is a no-op.
func (s *Store) AddToWishlist(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "add_to_wishlist"), id)

	if s.isWishlisted(id) {
		s.record(ctx, "add_to_wishlist", metrics.ResultNoop)
		return nil
	}
	pi, ok := s.findProduct(id)
	if !ok {
		s.record(ctx, "add_to_wishlist", metrics.ResultRejected)
		return productNotFound(id)
	}
	s.wishlist = append(s.wishlist, s.products[pi].Clone())
	s.record(ctx, "add_to_wishlist", metrics.ResultOK)
	return nil
}

func (s *Store) RemoveFromWishlist(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithProductID(s.opContext(ctx, "remove_from_wishlist"), id)

	kept := make([]models.Product, 0, len(s.wishlist))
	for _, p := range s.wishlist {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.wishlist = kept
	s.record(ctx, "remove_from_wishlist", metrics.ResultOK)
}

func (s *Store) IsWishlisted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isWishlisted(id)
}

func (s *Store) isWishlisted(id string) bool {
	for _, p := range s.wishlist {
		if p.ID == id {
			return true
		}
	}
	return false
}
