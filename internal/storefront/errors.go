package storefront

import "errors"

var (
	// ErrOutOfStock rejects a cart change that would exceed live stock.
	ErrOutOfStock = errors.New("quantity exceeds available stock")

	// ErrNoHeroBanners rejects a site config change that would leave no hero banner.
	ErrNoHeroBanners = errors.New("site config must keep at least one hero banner")

	ErrProductNotFound = errors.New("product not found")

	ErrEmptyCart = errors.New("cart is empty")
)
