// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.Cache.InitialCapacity != 100 {
		t.Errorf("Cache.InitialCapacity = %d, want 100", cfg.Cache.InitialCapacity)
	}
	if cfg.Cache.MaxCapacity != 1000 {
		t.Errorf("Cache.MaxCapacity = %d, want 1000", cfg.Cache.MaxCapacity)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if cfg.Cache.CleanupInterval != 0 {
		t.Errorf("Cache.CleanupInterval = %v, want 0 (janitor off)", cfg.Cache.CleanupInterval)
	}
	if cfg.Database.Path != "/data/ventureboard.duckdb" {
		t.Errorf("Database.Path = %q, want /data/ventureboard.duckdb", cfg.Database.Path)
	}
	if !cfg.Breaker.Enabled || cfg.Breaker.FailureThreshold != 5 {
		t.Errorf("Breaker = %+v, want enabled with threshold 5", cfg.Breaker)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_host", "server.host"},
		{"ENVIRONMENT", "server.environment"},
		{"DUCKDB_PATH", "database.path"},
		{"SEED_DEMO_DATA", "database.seed_demo_data"},
		{"BREAKER_FAILURE_THRESHOLD", "breaker.failure_threshold"},
		{"CACHE_BACKEND", "cache.backend"},
		{"CACHE_TTL", "cache.ttl"},
		{"CACHE_CLEANUP_INTERVAL", "cache.cleanup_interval"},
		{"REDIS_ADDR", "cache.redis.addr"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},

		// Unmapped variables are ignored
		{"PATH", ""},
		{"HOME", ""},
		{"CACHE_SOMETHING_ELSE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	if got := findConfigFile(); got != configPath {
		t.Errorf("findConfigFile() = %q, want %q", got, configPath)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	if got := findConfigFile(); got != "" && !strings.HasSuffix(got, ".yaml") && !strings.HasSuffix(got, ".yml") {
		t.Errorf("findConfigFile() = %q, want empty or a default path", got)
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_MAX_CAPACITY", "250")
	t.Setenv("CACHE_CLEANUP_INTERVAL", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("BREAKER_FAILURE_THRESHOLD", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
	if cfg.Cache.MaxCapacity != 250 {
		t.Errorf("Cache.MaxCapacity = %d, want 250", cfg.Cache.MaxCapacity)
	}
	if cfg.Cache.CleanupInterval != 30*time.Second {
		t.Errorf("Cache.CleanupInterval = %v, want 30s", cfg.Cache.CleanupInterval)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("Security.CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
	if cfg.Breaker.FailureThreshold != 7 {
		t.Errorf("Breaker.FailureThreshold = %d, want 7", cfg.Breaker.FailureThreshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Cache.InitialCapacity != 100 {
		t.Errorf("Cache.InitialCapacity = %d, want 100 (default)", cfg.Cache.InitialCapacity)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
server:
  port: 8888
  host: "127.0.0.1"
  environment: "staging"

cache:
  backend: "redis"
  ttl: "2m"
  redis:
    addr: "redis.internal:6379"

security:
  cors_origins:
    - "https://ventures.example.com"

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "127.0.0.1:8888" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:8888", cfg.Server.Addr())
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("Cache.TTL = %v, want 2m", cfg.Cache.TTL)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" {
		t.Errorf("Cache.Redis.Addr = %q, want redis.internal:6379", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.KeyPrefix != "ventureboard:" {
		t.Errorf("Cache.Redis.KeyPrefix = %q, want default ventureboard:", cfg.Cache.Redis.KeyPrefix)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://ventures.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8888\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env should override file)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error for unknown cache backend")
	}
	if !strings.Contains(err.Error(), "CACHE_BACKEND") {
		t.Errorf("error should mention CACHE_BACKEND, got %v", err)
	}
}
