package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "ibcquery"
	metricsSubsystem = "search"

	methodTxSearch    = "tx_search"
	methodBlockSearch = "block_search"
)

var (
	// QueriesBuiltTotal counts the event search queries built, labeled by the
	// search method and the request kind.
	QueriesBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "queries_built_total",
			Help:      "Total number of event search queries built.",
		},
		[]string{"method", "kind"},
	)

	// BuildErrorsTotal counts the requests no search query could be built for.
	BuildErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "build_errors_total",
			Help:      "Total number of requests rejected by the event query builder.",
		},
		[]string{"method"},
	)
)
