package models

import "github.com/vroommkart/storefront/pkg/enums"

// Product is a catalog entry. Price is in the smallest currency unit.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	Price       int64          `json:"price"`
	Category    enums.Category `json:"category"`
	Images      []string       `json:"images"`
	Scale       string         `json:"scale,omitempty"`
	Rarity      enums.Rarity   `json:"rarity,omitempty"`
	Description string         `json:"description"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Stock       int            `json:"stock"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	out.Images = cloneSlice(p.Images)
	return out
}

// cloneSlice copies in, keeping nil and empty distinct so JSON output is unchanged.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// CloneProducts deep-copies a product list. A nil input yields an empty slice.
func CloneProducts(in []Product) []Product {
	out := make([]Product, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CartItem is a product frozen at the moment it entered the cart, plus a quantity.
// The product fields are flattened in JSON.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (c CartItem) Clone() CartItem {
	return CartItem{Product: c.Product.Clone(), Quantity: c.Quantity}
}

func CloneCartItems(in []CartItem) []CartItem {
	out := make([]CartItem, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
