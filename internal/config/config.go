// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//   - Server: HTTP listener and shutdown behaviour
//   - Database: DuckDB venture store and seeding
//   - Breaker: Circuit breaker around the venture store
//   - Cache: Ranking result cache (memory or redis backend)
//   - Security: CORS and rate limiting
//   - Logging: Log level and output format
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // Read/write timeout for a single request
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Grace period for in-flight requests
	Environment     string        `koanf:"environment"`      // "development", "staging", "production"
}

// DatabaseConfig holds DuckDB settings for the venture store.
type DatabaseConfig struct {
	Path         string        `koanf:"path"`
	MaxMemory    string        `koanf:"max_memory"`
	Threads      int           `koanf:"threads"`        // 0 = use NumCPU
	SeedPath     string        `koanf:"seed_path"`      // JSON file loaded into an empty ventures table
	SeedDemoData bool          `koanf:"seed_demo_data"` // Load the built-in demo ventures into an empty table
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// BreakerConfig configures the circuit breaker that guards venture store reads.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`      // Requests allowed while half-open
	Interval         time.Duration `koanf:"interval"`          // Closed-state counter reset period
	Timeout          time.Duration `koanf:"timeout"`           // Open-state duration before half-open
	FailureThreshold uint32        `koanf:"failure_threshold"` // Consecutive failures that trip the breaker
}

// CacheConfig holds ranking result cache settings.
//
// Backend "memory" keeps results in a per-process LRU bounded by
// InitialCapacity/MaxCapacity. Backend "redis" shares results across
// replicas; capacity bounds are then Redis' concern and only TTL applies.
type CacheConfig struct {
	Backend         string        `koanf:"backend"`
	InitialCapacity int           `koanf:"initial_capacity"`
	MaxCapacity     int           `koanf:"max_capacity"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"` // 0 disables the memory janitor
	Redis           RedisConfig   `koanf:"redis"`
}

// RedisConfig holds connection settings for the redis cache backend.
type RedisConfig struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	KeyPrefix   string        `koanf:"key_prefix"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings passed to logging.Init.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" (production) or "console" (development).
	Format string `koanf:"format"`

	// Caller adds file:line to every log entry.
	Caller bool `koanf:"caller"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
