// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	ProjectMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_mutations_total",
			Help: "Project mutations by collection and operation",
		},
		[]string{"collection", "op"},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_persistence_failures_total",
			Help: "Failed project writes",
		},
		[]string{"op"},
	)

	QuotesExported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_exported_total",
			Help: "Quotations exported by format",
		},
		[]string{"format"},
	)

	CatalogCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Catalog snapshot cache lookups",
		},
		[]string{"result"}, // hit, miss, error
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementMutation(collection, op string) {
	ProjectMutations.WithLabelValues(collection, op).Inc()
}

func IncrementPersistenceFailure(op string) {
	PersistenceFailures.WithLabelValues(op).Inc()
}

func IncrementQuoteExported(format string) {
	QuotesExported.WithLabelValues(format).Inc()
}

func IncrementCatalogCache(result string) {
	CatalogCache.WithLabelValues(result).Inc()
}
