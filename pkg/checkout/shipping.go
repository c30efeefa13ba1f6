package checkout

// ShippingRules prices delivery for a cart subtotal.
type ShippingRules struct {
	FreeShippingThreshold int64
	FlatFee               int64
}

// DefaultShippingRules ships free strictly above 1999 and charges 99 otherwise.
func DefaultShippingRules() ShippingRules {
	return ShippingRules{FreeShippingThreshold: 1999, FlatFee: 99}
}

// Fee returns the shipping charge for subtotal.
func (r ShippingRules) Fee(subtotal int64) int64 {
	if subtotal > r.FreeShippingThreshold {
		return 0
	}
	return r.FlatFee
}

// Quote is the price breakdown for a set of cart lines.
type Quote struct {
	Subtotal  int64 `json:"subtotal"`
	Shipping  int64 `json:"shipping"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"itemCount"`
}

// Line is the pricing view of a cart line.
type Line struct {
	UnitPrice int64
	Quantity  int
}

// Price sums the lines and applies the shipping rules. No lines price to zero.
func (r ShippingRules) Price(lines []Line) Quote {
	var q Quote
	if len(lines) == 0 {
		return q
	}
	for _, line := range lines {
		q.Subtotal += line.UnitPrice * int64(line.Quantity)
		q.ItemCount += line.Quantity
	}
	q.Shipping = r.Fee(q.Subtotal)
	q.Total = q.Subtotal + q.Shipping
	return q
}
