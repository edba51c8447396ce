// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package metrics provides Prometheus metrics for Ventureboard.

All collectors are registered on the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Ranking:
  - ranking_compute_duration_seconds{metric}: load, score and sort on a cache miss
  - ranking_ventures_scored_total
  - ranking_errors_total{operation}

Result cache:
  - cache_hits_total, cache_misses_total, cache_bypasses_total{cache_type}
  - cache_entries{cache_type}
  - cache_evicted_entries{cache_type, reason}: capacity or expired

Venture store:
  - duckdb_query_duration_seconds{operation, table}
  - duckdb_query_errors_total{operation, table}

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Example PromQL

Cache hit rate over five minutes:

	sum(rate(cache_hits_total[5m])) /
	  (sum(rate(cache_hits_total[5m])) + sum(rate(cache_misses_total[5m])))

p95 ranking latency on misses:

	histogram_quantile(0.95, sum(rate(ranking_compute_duration_seconds_bucket[5m])) by (le))
*/
package metrics
