// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/ventureboard/internal/config"
	"github.com/tomtom215/ventureboard/internal/logging"
	"github.com/tomtom215/ventureboard/internal/metrics"
	"github.com/tomtom215/ventureboard/internal/models"
)

// BreakerName labels the venture store circuit breaker in metrics and logs.
const BreakerName = "venture-store"

// VentureReader is the read surface of the venture store.
type VentureReader interface {
	FindAll(ctx context.Context) ([]models.Venture, error)
	FindByID(ctx context.Context, id int64) (*models.Venture, error)
	FindByIndustry(ctx context.Context, industry string) ([]models.Venture, error)
}

// CircuitBreakerStore wraps a VentureReader with a circuit breaker so a
// failing database is not hammered by every ranking request.
//
// While open, calls fail fast with gobreaker.ErrOpenState; in half-open state
// excess calls fail with gobreaker.ErrTooManyRequests. Use IsUnavailable to
// detect both.
//
// A not-found lookup is a success. Context cancellation by the caller does not
// count toward tripping.
type CircuitBreakerStore struct {
	reader VentureReader
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerStore wraps reader using cfg. Disabled config still returns
// a wrapper; it passes calls straight through.
func NewCircuitBreakerStore(reader VentureReader, cfg *config.BreakerConfig) *CircuitBreakerStore {
	cbs := &CircuitBreakerStore{
		reader: reader,
		name:   BreakerName,
	}
	if cfg == nil || !cfg.Enabled {
		return cbs
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	metrics.CircuitBreakerState.WithLabelValues(cbs.name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbs.name).Set(0)

	cbs.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbs.name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				logging.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening venture store circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return cbs
}

// IsUnavailable reports whether err came from an open or saturated breaker.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// State returns the breaker state name, or "disabled".
func (cbs *CircuitBreakerStore) State() string {
	if cbs.cb == nil {
		return "disabled"
	}
	return stateToString(cbs.cb.State())
}

// FindAll returns every venture through the breaker.
func (cbs *CircuitBreakerStore) FindAll(ctx context.Context) ([]models.Venture, error) {
	result, err := cbs.execute(func() (any, error) {
		return cbs.reader.FindAll(ctx)
	})
	return castSlice[models.Venture](result, err)
}

// FindByIndustry returns ventures in industry through the breaker.
func (cbs *CircuitBreakerStore) FindByIndustry(ctx context.Context, industry string) ([]models.Venture, error) {
	result, err := cbs.execute(func() (any, error) {
		return cbs.reader.FindByIndustry(ctx, industry)
	})
	return castSlice[models.Venture](result, err)
}

// FindByID returns one venture through the breaker, or (nil, nil) if absent.
func (cbs *CircuitBreakerStore) FindByID(ctx context.Context, id int64) (*models.Venture, error) {
	result, err := cbs.execute(func() (any, error) {
		return cbs.reader.FindByID(ctx, id)
	})
	return castResult[models.Venture](result, err)
}

// execute runs fn under the breaker and records the outcome.
func (cbs *CircuitBreakerStore) execute(fn func() (any, error)) (any, error) {
	if cbs.cb == nil {
		return fn()
	}

	result, err := cbs.cb.Execute(fn)

	if err != nil {
		if IsUnavailable(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbs.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", cbs.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbs.name, "failure").Inc()
			counts := cbs.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbs.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbs.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbs.name).Set(0)

	return result, nil
}

// castResult type-checks a pointer result. A typed nil pointer passes through
// as (nil, nil).
func castResult[T any](result any, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func castSlice[T any](result any, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	typed, ok := result.([]T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
