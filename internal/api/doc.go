// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package api provides the HTTP interface of the ranking service.

Routing uses chi with middleware from the chi ecosystem (cors, httprate,
RealIP, Recoverer) plus the internal/middleware request ID, access log and
Prometheus instrumentation.

Endpoints (all GET):

	/api/v1/rankings?industry=&metric=    full ranking, cached per (industry, metric)
	/api/v1/rankings/top?limit=&industry= compact top-N by overall score (default 10)
	/api/v1/rankings/cache/stats          result cache statistics
	/api/v1/ventures/{id}/score           score breakdown for one venture
	/api/v1/health/live                   liveness probe
	/api/v1/health/ready                  readiness probe (store and cache pings)
	/metrics                              Prometheus exposition

Response Format:

Every endpoint except /metrics answers with models.APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true}
	}

metadata.cached is true when the ranking came from the result cache.

Error Mapping:

  - VALIDATION_ERROR (400): non-numeric venture ID, oversized or control-character parameters
  - VENTURE_NOT_FOUND (404): ranking.ErrVentureNotFound
  - RATE_LIMIT_EXCEEDED (429): httprate limit reached
  - SERVICE_UNAVAILABLE (503): venture store circuit breaker open
  - INTERNAL_ERROR (500): any other failure

Unknown metrics, malformed limits and blank industries are normalized rather
than rejected; see the ranking package.
*/
package api
