package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_notifications_total",
		Help: "Notifications produced per order status and audience role",
	},
	[]string{"status", "audience"},
)
