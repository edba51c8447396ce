// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// failingStore returns errors from every read and/or write.
type failingStore struct {
	failGet bool
	failPut bool
	puts    atomic.Int32
	inner   *MemoryStore[string]
}

func newFailingStore(failGet, failPut bool) *failingStore {
	return &failingStore{
		failGet: failGet,
		failPut: failPut,
		inner:   NewMemoryStore[string](0, 0, 0),
	}
}

func (f *failingStore) Get(ctx context.Context, key Key) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("backend unavailable")
	}
	return f.inner.Get(ctx, key)
}

func (f *failingStore) Put(ctx context.Context, key Key, value string, ttl time.Duration) error {
	f.puts.Add(1)
	if f.failPut {
		return errors.New("backend unavailable")
	}
	return f.inner.Put(ctx, key, value, ttl)
}

func (f *failingStore) Stats() Stats     { return f.inner.Stats() }
func (f *failingStore) Backend() Backend { return "failing" }

func TestKey_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{NewKey("rankings", "all"), "rankings::all"},
		{NewKey("rankings", "industry-fintech"), "rankings::industry-fintech"},
		{Key{}, "::"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key%+v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Fintech":      "fintech",
		"fintech ":     "fintech",
		"  HealthTech": "healthtech",
		"":             "",
		"\tAll\n":      "all",
	}

	for in, want := range tests {
		if got := NormalizeToken(in); got != want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	mem, err := NewStore[int](Options{}, nil)
	if err != nil {
		t.Fatalf("NewStore(memory) error = %v", err)
	}
	if mem.Backend() != BackendMemory {
		t.Errorf("Backend() = %q, want memory", mem.Backend())
	}
	if mem.Stats().Capacity != DefaultMaxCapacity {
		t.Errorf("default capacity = %d, want %d", mem.Stats().Capacity, DefaultMaxCapacity)
	}

	if _, err := NewStore[int](Options{Backend: BackendRedis}, nil); !errors.Is(err, ErrRedisClientRequired) {
		t.Errorf("NewStore(redis, nil) error = %v, want ErrRedisClientRequired", err)
	}

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	rs, err := NewStore[int](Options{Backend: BackendRedis}, client)
	if err != nil {
		t.Fatalf("NewStore(redis) error = %v", err)
	}
	if rs.Backend() != BackendRedis {
		t.Errorf("Backend() = %q, want redis", rs.Backend())
	}

	if _, err := NewStore[int](Options{Backend: "memcached"}, nil); err == nil {
		t.Error("NewStore(unknown backend) should fail")
	}
}

func TestMemoryStore_PutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore[[]string](0, 2, time.Minute)
	key := NewKey("rankings", "all")

	if _, found, err := store.Get(ctx, key); found || err != nil {
		t.Fatalf("Get on empty store = found %v, err %v", found, err)
	}

	if err := store.Put(ctx, key, []string{"a", "b"}, 0); err != nil {
		t.Fatalf("Put error = %v", err)
	}

	got, found, err := store.Get(ctx, key)
	if err != nil || !found {
		t.Fatalf("Get = found %v, err %v", found, err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("Get = %v, want [a b]", got)
	}

	stats := store.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Errorf("Stats = %+v, want 1 hit, 1 miss, size 1", stats)
	}
	if store.CleanupExpired() != 0 {
		t.Error("CleanupExpired removed live entries")
	}
}

func TestMemoryStore_PutTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore[int](0, 10, time.Minute)
	store.lru.now = clock.Now

	defaultKey := NewKey("rankings", "all")
	shortKey := NewKey("rankings", "industry-fintech")
	if err := store.Put(ctx, defaultKey, 1, 0); err != nil {
		t.Fatalf("Put error = %v", err)
	}
	if err := store.Put(ctx, shortKey, 2, 10*time.Second); err != nil {
		t.Fatalf("Put error = %v", err)
	}

	clock.Advance(10 * time.Second)
	if _, found, _ := store.Get(ctx, shortKey); found {
		t.Error("Expected custom TTL entry to expire at its TTL")
	}
	if _, found, _ := store.Get(ctx, defaultKey); !found {
		t.Error("Expected default TTL entry to still be live")
	}

	clock.Advance(50 * time.Second)
	if _, found, _ := store.Get(ctx, defaultKey); found {
		t.Error("Expected default TTL entry to expire at the store TTL")
	}
}

func TestGetOrCompute_MissThenHit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore[string](0, 0, 0)
	key := NewKey("rankings", "all")

	var calls atomic.Int32
	compute := func(context.Context) (string, error) {
		calls.Add(1)
		return "ranked", nil
	}

	v, outcome, err := GetOrCompute[string](ctx, store, key, 0, compute)
	if err != nil || v != "ranked" || outcome != OutcomeMiss {
		t.Fatalf("first call = %q, %v, %v; want ranked, miss, nil", v, outcome, err)
	}

	v, outcome, err = GetOrCompute[string](ctx, store, key, 0, compute)
	if err != nil || v != "ranked" || outcome != OutcomeHit {
		t.Fatalf("second call = %q, %v, %v; want ranked, hit, nil", v, outcome, err)
	}

	if calls.Load() != 1 {
		t.Errorf("compute called %d times, want 1", calls.Load())
	}
}

func TestGetOrCompute_ComputeErrorIsNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore[string](0, 0, 0)
	key := NewKey("rankings", "all")
	boom := errors.New("store down")

	_, _, err := GetOrCompute[string](ctx, store, key, 0, func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}

	if store.Stats().Size != 0 {
		t.Error("failed computation must not be cached")
	}
}

func TestGetOrCompute_DegradesOnStoreFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		failGet   bool
		failPut   bool
		wantPuts  int32
		wantCalls int32
	}{
		{"read failure computes without writing", true, false, 0, 2},
		{"write failure still returns value", false, true, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			store := newFailingStore(tt.failGet, tt.failPut)
			key := NewKey("rankings", "all")

			var calls atomic.Int32
			compute := func(context.Context) (string, error) {
				calls.Add(1)
				return "direct", nil
			}

			for i := 0; i < 2; i++ {
				v, outcome, err := GetOrCompute[string](ctx, store, key, 0, compute)
				if err != nil {
					t.Fatalf("GetOrCompute error = %v, want nil", err)
				}
				if v != "direct" || outcome != OutcomeBypass {
					t.Fatalf("GetOrCompute = %q, %v; want direct, bypass", v, outcome)
				}
			}

			if calls.Load() != tt.wantCalls {
				t.Errorf("compute calls = %d, want %d", calls.Load(), tt.wantCalls)
			}
			if store.puts.Load() != tt.wantPuts {
				t.Errorf("puts = %d, want %d", store.puts.Load(), tt.wantPuts)
			}
		})
	}
}

func TestGetOrCompute_NilStore(t *testing.T) {
	t.Parallel()

	v, outcome, err := GetOrCompute[int](context.Background(), nil, NewKey("rankings", "all"), 0,
		func(context.Context) (int, error) { return 7, nil })
	if err != nil || v != 7 || outcome != OutcomeBypass {
		t.Errorf("GetOrCompute(nil store) = %d, %v, %v", v, outcome, err)
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	for outcome, want := range map[Outcome]string{
		OutcomeHit:    "hit",
		OutcomeMiss:   "miss",
		OutcomeBypass: "bypass",
	} {
		if got := outcome.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", outcome, got, want)
		}
	}
}
