// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Command server runs the ventureboard ranking API.

Ventureboard scores startup ventures on growth, investment, ecosystem and
engagement metrics, ranks the approved ones, and serves the results over a
read-only JSON API. Full ranking lists are memoized in a TTL/LRU cache, either
in process or in redis.

# Startup

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog in JSON or console format
 3. Venture store: DuckDB, seeded from SEED_PATH or demo data when empty
 4. Circuit breaker: gobreaker around store reads
 5. Result cache: memory (default) or redis
 6. Supervisor tree: suture v4 running the HTTP server and cache janitor

# Configuration

Common environment variables:

	HTTP_HOST, HTTP_PORT        listen address (default 0.0.0.0:8080)
	DUCKDB_PATH                 database file (":memory:" for ephemeral)
	SEED_PATH                   JSON array of ventures loaded into an empty store
	SEED_DEMO_DATA              load the built-in demo data set when no SEED_PATH
	CACHE_BACKEND               memory or redis
	CACHE_TTL                   ranking cache lifetime (default 5m)
	CACHE_CLEANUP_INTERVAL      opt-in memory cache sweep interval (default 0, off)
	REDIS_ADDR                  redis address when CACHE_BACKEND=redis
	CORS_ORIGINS                comma-separated allowed origins
	RATE_LIMIT_REQUESTS         requests per RATE_LIMIT_WINDOW per client IP
	LOG_LEVEL, LOG_FORMAT       zerolog level and json/console output

CONFIG_PATH points at a YAML file; otherwise config.yaml in the working
directory and /etc/ventureboard/config.yaml are tried.

# Example

	export DUCKDB_PATH=:memory:
	export SEED_DEMO_DATA=true
	export LOG_FORMAT=console
	./ventureboard
	curl 'localhost:8080/api/v1/rankings?industry=fintech&metric=growth'

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT before the store closes.
*/
package main
