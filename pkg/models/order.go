package models

import (
	"strings"

	"github.com/vroommkart/storefront/pkg/enums"
)

// Order is the receipt of a completed checkout. Only Status changes after creation.
type Order struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customerName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	Items         []CartItem        `json:"items"`
	Total         int64             `json:"total"`
	Date          string            `json:"date"`
	Status        enums.OrderStatus `json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = CloneCartItems(o.Items)
	return out
}

func CloneOrders(in []Order) []Order {
	out := make([]Order, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// Customer aggregates every order placed under one email.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	TotalOrders int    `json:"totalOrders"`
	TotalSpent  int64  `json:"totalSpent"`
}

func CloneCustomers(in []Customer) []Customer {
	out := make([]Customer, len(in))
	copy(out, in)
	return out
}

// ShippingInfo is what the checkout form collects about the buyer.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// ComposedAddress joins street, city and pincode the way receipts print them.
func (s ShippingInfo) ComposedAddress() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{s.Address, s.City, s.Pincode} {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
