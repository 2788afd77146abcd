package presentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_submissions_total",
			Help: "Form submissions by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ordersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_orders_total",
			Help: "Payment order creations by outcome",
		},
		[]string{"outcome"},
	)
)
