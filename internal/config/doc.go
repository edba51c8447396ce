// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package config provides centralized configuration management for Ventureboard.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml or /etc/ventureboard/config.yaml), then
environment variables. LoadWithKoanf validates the merged result.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Request read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown window (default: 15s)
  - ENVIRONMENT: development, staging or production (default: development)

Database:
  - DUCKDB_PATH: Venture store file (default: /data/ventureboard.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 512MB)
  - DUCKDB_THREADS: Worker threads, 0 = NumCPU (default: 0)
  - DUCKDB_QUERY_TIMEOUT: Per-query timeout (default: 10s)
  - SEED_PATH: JSON file loaded into an empty ventures table
  - SEED_DEMO_DATA: Load built-in demo ventures (default: false)

Circuit breaker:
  - BREAKER_ENABLED (default: true)
  - BREAKER_MAX_REQUESTS: Half-open probe requests (default: 3)
  - BREAKER_INTERVAL: Closed-state counter reset (default: 1m)
  - BREAKER_TIMEOUT: Open-state duration (default: 30s)
  - BREAKER_FAILURE_THRESHOLD: Consecutive failures to trip (default: 5)

Cache:
  - CACHE_BACKEND: memory or redis (default: memory)
  - CACHE_INITIAL_CAPACITY (default: 100)
  - CACHE_MAX_CAPACITY (default: 1000)
  - CACHE_TTL: Entry lifetime from insertion (default: 5m)
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_KEY_PREFIX, REDIS_DIAL_TIMEOUT

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
