package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cag_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cag_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cag_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cag_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// AccessChecks counts course access decisions by verdict
	AccessChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cag_access_checks_total",
			Help: "Total number of course access decisions",
		},
		[]string{"verdict"},
	)

	// RuleApplications counts memberships created by automatic rules
	RuleApplications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cag_rule_applications_total",
			Help: "Total number of memberships created by membership rules",
		},
	)

	// CacheHits counts the number of site configuration cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cag_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of site configuration cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cag_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cag_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cag_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordAccessCheck records one access decision
func RecordAccessCheck(granted bool) {
	verdict := "denied"
	if granted {
		verdict = "granted"
	}
	AccessChecks.WithLabelValues(verdict).Inc()
}
