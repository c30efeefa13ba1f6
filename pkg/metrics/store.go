package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultNoop     = "noop"
)

// StoreMetrics records store mutations, checkout volume, sync imports and persistence health.
type StoreMetrics struct {
	operations    *prometheus.CounterVec
	ordersPlaced  prometheus.Counter
	revenue       prometheus.Counter
	syncImports   *prometheus.CounterVec
	writeFailures *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_operations_total",
		Help: "Store operations by name and result.",
	}, []string{"op", "result"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Orders created by the order pipeline.",
	})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_revenue_total",
		Help: "Sum of order totals in the smallest currency unit.",
	})
	syncImports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_sync_imports_total",
		Help: "Sync token imports by result.",
	}, []string{"result"})
	writeFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_persistence_write_failures_total",
		Help: "Failed write-through persistence attempts by key.",
	}, []string{"key"})
	reg.MustRegister(operations, ordersPlaced, revenue, syncImports, writeFailures)
	return &StoreMetrics{
		operations:    operations,
		ordersPlaced:  ordersPlaced,
		revenue:       revenue,
		syncImports:   syncImports,
		writeFailures: writeFailures,
	}
}

// IncOperation counts a store operation outcome.
func (m *StoreMetrics) IncOperation(op, result string) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(normalizeLabel(op), normalizeLabel(result)).Inc()
}

// ObserveOrder counts a placed order and its total.
func (m *StoreMetrics) ObserveOrder(total int64) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
	if total > 0 {
		m.revenue.Add(float64(total))
	}
}

// IncSyncImport counts a sync import outcome.
func (m *StoreMetrics) IncSyncImport(result string) {
	if m == nil || m.syncImports == nil {
		return
	}
	m.syncImports.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncWriteFailure counts a swallowed persistence failure.
func (m *StoreMetrics) IncWriteFailure(key string) {
	if m == nil || m.writeFailures == nil {
		return
	}
	m.writeFailures.WithLabelValues(normalizeLabel(key)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
