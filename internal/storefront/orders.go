package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/vroommkart/storefront/pkg/checkout"
	"github.com/vroommkart/storefront/pkg/enums"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/metrics"
	"github.com/vroommkart/storefront/pkg/models"
)

// OrderDateLayout is the ISO-8601 layout used for Order.Date, always in UTC.
const OrderDateLayout = "2006-01-02T15:04:05.000Z07:00"

// PlaceOrderInput is everything the pipeline needs for one checkout.
type PlaceOrderInput struct {
	Shipping      models.ShippingInfo
	Items         []models.CartItem
	PaymentMethod string
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneOrders(s.orders)
}

func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.Order{}, false
}

func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneCustomers(s.customers)
}

// PlaceOrder records a completed checkout: it prepends a Pending order, upserts the
// customer keyed by email and takes the ordered quantities out of stock, never below
// zero. It does not check stock and does not clear the cart.
func (s *Store) PlaceOrder(ctx context.Context, in PlaceOrderInput) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeOrder(ctx, in)
}

// Checkout prices the current cart, checks it against live stock, places the order
// and clears the cart, all under one lock.
func (s *Store) Checkout(ctx context.Context, shipping models.ShippingInfo, paymentMethod string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.opContext(ctx, "checkout")

	if len(s.cart) == 0 {
		s.record(ctx, "checkout", metrics.ResultRejected)
		return models.Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrEmptyCart, "cart is empty")
	}

	inputs := make([]checkout.StockValidationInput, 0, len(s.cart))
	for _, item := range s.cart {
		available := -1
		if i, ok := s.findProduct(item.ID); ok {
			available = s.products[i].Stock
		}
		inputs = append(inputs, checkout.StockValidationInput{
			ProductID:   item.ID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Available:   available,
		})
	}
	if err := checkout.ValidateStock(inputs); err != nil {
		s.record(ctx, "checkout", metrics.ResultRejected)
		return models.Order{}, err
	}

	order := s.placeOrder(ctx, PlaceOrderInput{
		Shipping:      shipping,
		Items:         s.cart,
		PaymentMethod: paymentMethod,
	})
	s.cart = []models.CartItem{}
	s.record(ctx, "checkout", metrics.ResultOK)
	return order, nil
}

func (s *Store) placeOrder(ctx context.Context, in PlaceOrderInput) models.Order {
	now := s.now().UTC()
	items := models.CloneCartItems(in.Items)
	quote := s.shipping.Price(cartLines(items))

	order := models.Order{
		ID:            fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), s.newToken()),
		CustomerName:  strings.TrimSpace(in.Shipping.Name),
		Email:         strings.TrimSpace(in.Shipping.Email),
		Phone:         strings.TrimSpace(in.Shipping.Phone),
		Address:       in.Shipping.ComposedAddress(),
		Items:         items,
		Total:         quote.Total,
		Date:          now.Format(OrderDateLayout),
		Status:        enums.OrderStatusPending,
		PaymentMethod: in.PaymentMethod,
	}
	ctx = s.logg.WithOrderID(s.opContext(ctx, "place_order"), order.ID)

	s.orders = append([]models.Order{order.Clone()}, s.orders...)
	s.upsertCustomer(order)
	s.decrementStock(items)

	s.persistOrders(ctx)
	s.persistCustomers(ctx)
	s.persistProducts(ctx)

	s.metrics.ObserveOrder(order.Total)
	s.record(ctx, "place_order", metrics.ResultOK)
	return order
}

func (s *Store) upsertCustomer(order models.Order) {
	for i := range s.customers {
		if s.customers[i].Email == order.Email {
			s.customers[i].TotalOrders++
			s.customers[i].TotalSpent += order.Total
			s.customers[i].Phone = order.Phone
			s.customers[i].Address = order.Address
			return
		}
	}
	s.customers = append(s.customers, models.Customer{
		ID:          fmt.Sprintf("CUST-%d-%s", s.now().UTC().UnixMilli(), s.newToken()),
		Name:        order.CustomerName,
		Email:       order.Email,
		Phone:       order.Phone,
		Address:     order.Address,
		TotalOrders: 1,
		TotalSpent:  order.Total,
	})
}

func (s *Store) decrementStock(items []models.CartItem) {
	ordered := make(map[string]int, len(items))
	for _, item := range items {
		ordered[item.ID] += item.Quantity
	}
	for i := range s.products {
		if qty, ok := ordered[s.products[i].ID]; ok {
			s.products[i].Stock = max(0, s.products[i].Stock-qty)
		}
	}
}

// UpdateOrderStatus changes the status of the order with id and reports whether it
// exists. Items, total and date are never touched.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status enums.OrderStatus) (bool, error) {
	if !status.IsValid() {
		return false, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid order status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ctx = s.logg.WithOrderID(s.opContext(ctx, "update_order_status"), id)

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.persistOrders(ctx)
			s.record(ctx, "update_order_status", metrics.ResultOK)
			return true, nil
		}
	}
	s.record(ctx, "update_order_status", metrics.ResultNoop)
	return false, nil
}
