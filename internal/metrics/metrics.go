package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabhub_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Business metrics
	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabhub_messages_total",
			Help: "Total messages appended to threads",
		},
		[]string{"sender", "type"},
	)

	DealsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "collabhub_deals_created_total",
			Help: "Total deals created",
		},
	)

	DealTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabhub_deal_transitions_total",
			Help: "Total deal status transitions applied",
		},
		[]string{"to"},
	)

	CoinsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabhub_coins_awarded_total",
			Help: "Total coins credited, by reason",
		},
		[]string{"reason"},
	)

	EscrowOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabhub_escrow_operations_total",
			Help: "Total escrow operations",
		},
		[]string{"operation", "outcome"},
	)

	SimulatedArrivals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "collabhub_simulated_arrivals_total",
			Help: "Total simulated inbound messages delivered",
		},
	)
)
