// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/ventureboard/internal/config"
	"github.com/tomtom215/ventureboard/internal/models"
)

// fakeReader returns err (when set) and counts calls.
type fakeReader struct {
	err   error
	calls atomic.Int64
}

func (f *fakeReader) FindAll(_ context.Context) ([]models.Venture, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []models.Venture{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeReader) FindByID(_ context.Context, id int64) (*models.Venture, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if id != 1 {
		return nil, nil
	}
	return &models.Venture{ID: 1}, nil
}

func (f *fakeReader) FindByIndustry(_ context.Context, industry string) ([]models.Venture, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []models.Venture{{ID: 3, Industry: industry}}, nil
}

func breakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 3,
	}
}

func TestCircuitBreakerStore_PassesResults(t *testing.T) {
	t.Parallel()

	store := NewCircuitBreakerStore(&fakeReader{}, breakerConfig())
	ctx := context.Background()

	all, err := store.FindAll(ctx)
	if err != nil || len(all) != 2 {
		t.Errorf("FindAll() = %v, %v", all, err)
	}

	byIndustry, err := store.FindByIndustry(ctx, "Fintech")
	if err != nil || len(byIndustry) != 1 || byIndustry[0].Industry != "Fintech" {
		t.Errorf("FindByIndustry() = %v, %v", byIndustry, err)
	}

	v, err := store.FindByID(ctx, 1)
	if err != nil || v == nil || v.ID != 1 {
		t.Errorf("FindByID(1) = %v, %v", v, err)
	}

	missing, err := store.FindByID(ctx, 99)
	if err != nil || missing != nil {
		t.Errorf("FindByID(99) = %v, %v, want nil, nil", missing, err)
	}

	if got := store.State(); got != "closed" {
		t.Errorf("State() = %q, want closed", got)
	}
}

func TestCircuitBreakerStore_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{err: errors.New("database is locked")}
	store := NewCircuitBreakerStore(reader, breakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.FindAll(ctx); err == nil || IsUnavailable(err) {
			t.Fatalf("call %d: err = %v, want underlying failure", i, err)
		}
	}

	if got := store.State(); got != "open" {
		t.Fatalf("State() = %q after 3 failures, want open", got)
	}

	_, err := store.FindAll(ctx)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("FindAll() with open circuit err = %v, want ErrOpenState", err)
	}
	if !IsUnavailable(err) {
		t.Error("IsUnavailable() = false for open circuit error")
	}
	if got := reader.calls.Load(); got != 3 {
		t.Errorf("reader calls = %d, want 3 (open circuit must not reach the store)", got)
	}
}

func TestCircuitBreakerStore_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{err: context.Canceled}
	store := NewCircuitBreakerStore(reader, breakerConfig())

	for i := 0; i < 5; i++ {
		if _, err := store.FindByIndustry(context.Background(), "x"); !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d: err = %v, want context.Canceled", i, err)
		}
	}
	if got := store.State(); got != "closed" {
		t.Errorf("State() = %q, want closed", got)
	}
}

func TestCircuitBreakerStore_Disabled(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{err: errors.New("boom")}
	cfg := breakerConfig()
	cfg.Enabled = false
	store := NewCircuitBreakerStore(reader, cfg)

	for i := 0; i < 10; i++ {
		if _, err := store.FindAll(context.Background()); err == nil || IsUnavailable(err) {
			t.Fatalf("call %d: err = %v, want underlying failure", i, err)
		}
	}
	if got := reader.calls.Load(); got != 10 {
		t.Errorf("reader calls = %d, want 10", got)
	}
	if got := store.State(); got != "disabled" {
		t.Errorf("State() = %q, want disabled", got)
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(99), "unknown", -1},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.num {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.num)
		}
	}
}
