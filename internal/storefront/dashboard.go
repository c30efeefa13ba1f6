package storefront

import (
	"github.com/shopspring/decimal"

	"github.com/vroommkart/storefront/pkg/models"
)

const dashboardListSize = 5

// Dashboard is the back-office overview.
type Dashboard struct {
	TotalStock        int              `json:"totalStock"`
	InventoryValue    int64            `json:"inventoryValue"`
	OrderCount        int              `json:"orderCount"`
	Revenue           int64            `json:"revenue"`
	AverageOrderValue decimal.Decimal  `json:"averageOrderValue"`
	CustomerCount     int              `json:"customerCount"`
	LowStockCount     int              `json:"lowStockCount"`
	OutOfStockCount   int              `json:"outOfStockCount"`
	LowStockProducts  []models.Product `json:"lowStockProducts"`
	RecentOrders      []models.Order   `json:"recentOrders"`
}

// Dashboard aggregates catalog and order figures. LowStockCount counts products with
// 0 < stock <= lowStockThreshold; LowStockProducts lists up to five with stock <= threshold.
func (s *Store) Dashboard(lowStockThreshold int) Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Dashboard{
		OrderCount:       len(s.orders),
		CustomerCount:    len(s.customers),
		LowStockProducts: []models.Product{},
		RecentOrders:     []models.Order{},
	}
	for _, p := range s.products {
		d.TotalStock += p.Stock
		d.InventoryValue += p.Price * int64(p.Stock)
		switch {
		case p.Stock <= 0:
			d.OutOfStockCount++
		case p.Stock <= lowStockThreshold:
			d.LowStockCount++
		}
		if p.Stock <= lowStockThreshold && len(d.LowStockProducts) < dashboardListSize {
			d.LowStockProducts = append(d.LowStockProducts, p.Clone())
		}
	}
	for i, o := range s.orders {
		d.Revenue += o.Total
		if i < dashboardListSize {
			d.RecentOrders = append(d.RecentOrders, o.Clone())
		}
	}
	d.AverageOrderValue = decimal.Zero
	if d.OrderCount > 0 {
		d.AverageOrderValue = decimal.NewFromInt(d.Revenue).
			DivRound(decimal.NewFromInt(int64(d.OrderCount)), 2)
	}
	return d
}
