// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking wired into the logging context
  - Prometheus Metrics: request count, latency and in-flight instrumentation
  - Access Log: one structured zerolog line per request

All middleware uses the http.HandlerFunc shape. The API router adapts it to
chi with a one-line wrapper:

	func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	    return func(next http.Handler) http.Handler {
	        return mw(next.ServeHTTP)
	    }
	}

Ordering:

RequestID must run before AccessLog and the handlers so their log lines carry
request_id and correlation_id. PrometheusMetrics reads the chi route pattern
after the handler returns, so it must be mounted inside the chi router.

Thread Safety:

All middleware is stateless apart from Prometheus collectors, which are safe
for concurrent use.
*/
package middleware
