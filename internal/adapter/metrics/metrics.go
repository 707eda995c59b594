package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus instruments exposed on /metrics.
type Metrics struct {
	OrdersCreated  prometheus.Counter
	OrdersRejected *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ventas",
			Name:      "orders_created_total",
			Help:      "Orders successfully placed.",
		}),
		OrdersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ventas",
			Name:      "orders_rejected_total",
			Help:      "Order requests rejected, by reason.",
		}, []string{"reason"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ventas",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, path and status.",
		}, []string{"method", "path", "status"}),
	}

	prometheus.MustRegister(m.OrdersCreated, m.OrdersRejected, m.HTTPRequests)

	return m
}
