// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package cache provides the bounded result cache used for venture rankings.

# Overview

The cache provides:
  - A generic, thread-safe TTL/LRU cache (LRUCache) with O(1) operations
  - Insertion-relative TTL: an expired entry is never returned
  - LRU eviction once the maximum capacity is reached
  - Hit, miss, eviction and expiration statistics
  - A pluggable Store interface with in-memory and Redis backends
  - GetOrCompute, a read-through helper that degrades to direct
    computation whenever the backend fails

No background goroutine is started. Expired entries are dropped lazily on
read or on demand through CleanupExpired.

# Defaults

	DefaultInitialCapacity = 100
	DefaultMaxCapacity     = 1000
	DefaultTTL             = 5 * time.Minute

# Keys

Keys pair a namespace with a discriminator and render as
"namespace::discriminator". NormalizeToken trims and lower-cases user input so
that equivalent inputs share an entry.

# Usage Example

	store := cache.NewMemoryStore[[]models.ScoredVenture](0, 0, 0)
	key := cache.NewKey("rankings", "industry-"+cache.NormalizeToken(industry))

	ranked, outcome, err := cache.GetOrCompute(ctx, store, key, 0,
	    func(ctx context.Context) ([]models.ScoredVenture, error) {
	        return computeRanking(ctx)
	    })

# Consistency

There is no invalidation hook. A cached value may be up to one TTL stale
relative to the venture store.

# Thread Safety

LRUCache serializes all operations behind one mutex. RedisStore relies on the
go-redis client's connection pool. GetOrCompute does not coalesce concurrent
misses; the last write for a key wins.
*/
package cache
