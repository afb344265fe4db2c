package stats_export

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "order_ledger_orders",
		Help: "Current number of orders per status.",
	}, []string{"status"})

	ordersTotalAmount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "order_ledger_total_amount",
		Help: "Sum of total_amount over all orders.",
	})

	lowStockItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_low_stock_items",
		Help: "Number of items at or below minimum level per store.",
	}, []string{"store"})
)
