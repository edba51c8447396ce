// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Venture store queries (DuckDB)
// - API endpoint latency and throughput
// - Ranking computation
// - Result cache efficiency
// - Circuit breaker state

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Ranking Metrics
	RankingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ranking_compute_duration_seconds",
			Help:    "Duration of ranking computations (load, score, sort) in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"metric"},
	)

	RankingVenturesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ranking_ventures_scored_total",
			Help: "Total number of ventures scored during ranking computations",
		},
	)

	RankingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_errors_total",
			Help: "Total number of failed ranking computations",
		},
		[]string{"operation"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheBypasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_bypasses_total",
			Help: "Total number of requests computed directly because the cache store failed",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvicted = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_evicted_entries",
			Help: "Entries removed since startup, by reason (capacity, expired)",
		},
		[]string{"cache_type", "reason"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRanking records one ranking computation over scored ventures.
func RecordRanking(metric string, scored int, duration time.Duration) {
	RankingDuration.WithLabelValues(metric).Observe(duration.Seconds())
	RankingVenturesScored.Add(float64(scored))
}

// RecordRankingError counts a failed ranking operation ("rankings", "top", "score").
func RecordRankingError(operation string) {
	RankingErrors.WithLabelValues(operation).Inc()
}

// RecordCacheOutcome counts a cache lookup by outcome ("hit", "miss", "bypass").
// Unknown outcomes are ignored.
func RecordCacheOutcome(cacheType, outcome string) {
	switch outcome {
	case "hit":
		CacheHits.WithLabelValues(cacheType).Inc()
	case "miss":
		CacheMisses.WithLabelValues(cacheType).Inc()
	case "bypass":
		CacheBypasses.WithLabelValues(cacheType).Inc()
	}
}

// UpdateCacheGauges publishes a cache statistics snapshot.
func UpdateCacheGauges(cacheType string, size int, evictions, expirations int64) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
	CacheEvicted.WithLabelValues(cacheType, "capacity").Set(float64(evictions))
	CacheEvicted.WithLabelValues(cacheType, "expired").Set(float64(expirations))
}
