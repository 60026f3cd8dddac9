package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "customer_registrations_total",
			Help: "Number of registered customers",
		},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_logins_total",
			Help: "Number of login attempts",
		},
		[]string{"result"}, // success|failure
	)
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Number of placed orders",
		},
	)
)

var (
	OrderEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Number of order events written to the broker",
		},
		[]string{"topic"},
	)
	OrderEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_failed_total",
			Help: "Number of order events that failed to publish",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация метрик; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RegistrationsTotal, LoginsTotal, OrdersCreatedTotal,
			OrderEventsPublished, OrderEventsFailed,
		)
	})
}
