// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store defines the interface for result cache backends.
// MemoryStore (in-process LRU) and RedisStore (shared tier) implement it,
// allowing the backing tier to be chosen by configuration.
//
// Usage:
//
//	store, err := cache.NewStore[[]models.ScoredVenture](cache.Options{Backend: cache.BackendMemory}, nil)
//	value, outcome, err := cache.GetOrCompute(ctx, store, key, 0, compute)
type Store[V any] interface {
	// Get retrieves a live value. The bool is false on a miss.
	// A non-nil error means the backend failed; callers should degrade.
	Get(ctx context.Context, key Key) (V, bool, error)

	// Put stores a value. A non-positive ttl uses the store default.
	Put(ctx context.Context, key Key, value V, ttl time.Duration) error

	// Stats returns cache statistics.
	Stats() Stats

	// Backend reports which backend serves this store.
	Backend() Backend
}

// Backend represents the type of store to create.
type Backend string

const (
	// BackendMemory is the bounded in-process TTL/LRU cache (default).
	BackendMemory Backend = "memory"

	// BackendRedis is a shared Redis tier. Expiry is enforced by Redis TTLs
	// and memory bounds by the Redis server's eviction policy.
	BackendRedis Backend = "redis"
)

// ErrRedisClientRequired is returned by NewStore when the Redis backend is
// selected without a client.
var ErrRedisClientRequired = errors.New("redis backend requires a client")

// Options configures NewStore.
type Options struct {
	Backend         Backend
	InitialCapacity int
	MaxCapacity     int
	TTL             time.Duration
	KeyPrefix       string
}

// NewStore creates a store for the configured backend.
// The client is only used by BackendRedis and may be nil otherwise.
func NewStore[V any](opts Options, client redis.UniversalClient) (Store[V], error) {
	switch opts.Backend {
	case BackendRedis:
		if client == nil {
			return nil, ErrRedisClientRequired
		}
		return NewRedisStore[V](client, opts.KeyPrefix, opts.TTL), nil
	case BackendMemory, "":
		return NewMemoryStore[V](opts.InitialCapacity, opts.MaxCapacity, opts.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// MemoryStore adapts LRUCache to the Store interface. It never returns errors.
type MemoryStore[V any] struct {
	lru *LRUCache[V]
}

// NewMemoryStore creates an in-process store. Zero values select the defaults
// (100 initial entries, 1000 max entries, 5 minute TTL).
func NewMemoryStore[V any](initialCapacity, maxCapacity int, ttl time.Duration) *MemoryStore[V] {
	return &MemoryStore[V]{lru: NewLRUCache[V](initialCapacity, maxCapacity, ttl)}
}

// Get implements Store.
func (m *MemoryStore[V]) Get(_ context.Context, key Key) (V, bool, error) {
	v, ok := m.lru.Get(key.String())
	return v, ok, nil
}

// Put implements Store.
func (m *MemoryStore[V]) Put(_ context.Context, key Key, value V, ttl time.Duration) error {
	if ttl <= 0 {
		m.lru.Add(key.String(), value)
		return nil
	}
	m.lru.AddWithTTL(key.String(), value, ttl)
	return nil
}

// Stats implements Store.
func (m *MemoryStore[V]) Stats() Stats {
	return m.lru.Stats()
}

// Backend implements Store.
func (m *MemoryStore[V]) Backend() Backend {
	return BackendMemory
}

// CleanupExpired drops expired entries and returns how many were removed.
func (m *MemoryStore[V]) CleanupExpired() int {
	return m.lru.CleanupExpired()
}

// Compile-time interface assertions
var (
	_ Store[int] = (*MemoryStore[int])(nil)
	_ Store[int] = (*RedisStore[int])(nil)
)
