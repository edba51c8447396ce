// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces Ventureboard keys inside a shared Redis.
const DefaultKeyPrefix = "ventureboard:"

// RedisStore is a Store backed by Redis. Values are JSON encoded.
//
// Expiry is delegated to Redis (SET with PX), so an expired entry is never
// returned. Statistics are tracked per process.
type RedisStore[V any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

// NewRedisStore creates a Redis-backed store.
// An empty prefix selects DefaultKeyPrefix; a non-positive ttl selects DefaultTTL.
func NewRedisStore[V any](client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore[V] {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore[V]{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore[V]) redisKey(key Key) string {
	return r.prefix + key.String()
}

// Get implements Store.
func (r *RedisStore[V]) Get(ctx context.Context, key Key) (V, bool, error) {
	var value V

	data, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.misses.Add(1)
		return value, false, nil
	}
	if err != nil {
		r.errors.Add(1)
		return value, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		r.errors.Add(1)
		return value, false, fmt.Errorf("decode cached value %s: %w", key, err)
	}

	r.hits.Add(1)
	return value, true, nil
}

// Put implements Store.
func (r *RedisStore[V]) Put(ctx context.Context, key Key, value V, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.ttl
	}

	data, err := json.Marshal(value)
	if err != nil {
		r.errors.Add(1)
		return fmt.Errorf("encode cached value %s: %w", key, err)
	}

	if err := r.client.Set(ctx, r.redisKey(key), data, ttl).Err(); err != nil {
		r.errors.Add(1)
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Stats implements Store.
func (r *RedisStore[V]) Stats() Stats {
	return Stats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
		Errors: r.errors.Load(),
	}
}

// Backend implements Store.
func (r *RedisStore[V]) Backend() Backend {
	return BackendRedis
}

// Ping checks connectivity to Redis.
func (r *RedisStore[V]) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
