// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package cache

import (
	"context"
	"time"

	"github.com/tomtom215/ventureboard/internal/logging"
)

// Outcome describes how GetOrCompute produced its value.
type Outcome int

const (
	// OutcomeMiss means the value was computed and stored.
	OutcomeMiss Outcome = iota
	// OutcomeHit means the value was served from the store.
	OutcomeHit
	// OutcomeBypass means the store failed and the value was computed directly.
	OutcomeBypass
)

// String implements fmt.Stringer; the values double as metric labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeBypass:
		return "bypass"
	default:
		return "miss"
	}
}

// GetOrCompute returns the live value for key, computing and storing it on a miss.
//
// Store failures never surface to the caller: a failed read computes directly
// without writing, and a failed write still returns the computed value. Both
// report OutcomeBypass. Compute errors are returned and nothing is stored.
//
// Concurrent misses for the same key may each compute; the last Put wins.
// A nil store always computes.
func GetOrCompute[V any](
	ctx context.Context,
	store Store[V],
	key Key,
	ttl time.Duration,
	compute func(context.Context) (V, error),
) (V, Outcome, error) {
	if store == nil {
		v, err := compute(ctx)
		return v, OutcomeBypass, err
	}

	cached, found, err := store.Get(ctx, key)
	if err != nil {
		logging.CtxWarn(ctx).Err(err).
			Str("cache_key", key.String()).
			Str("backend", string(store.Backend())).
			Msg("Cache read failed, computing directly")

		v, cerr := compute(ctx)
		return v, OutcomeBypass, cerr
	}
	if found {
		return cached, OutcomeHit, nil
	}

	v, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, OutcomeMiss, err
	}

	if err := store.Put(ctx, key, v, ttl); err != nil {
		logging.CtxWarn(ctx).Err(err).
			Str("cache_key", key.String()).
			Str("backend", string(store.Backend())).
			Msg("Cache write failed, serving computed value")
		return v, OutcomeBypass, nil
	}

	return v, OutcomeMiss, nil
}
