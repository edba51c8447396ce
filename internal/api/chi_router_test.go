// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/ventureboard/internal/config"
)

func TestRouter_UnknownRoutes(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, &fakeRankings{}, HandlerDeps{})

	tests := []struct {
		method     string
		target     string
		wantStatus int
		wantCode   string
	}{
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound, "NOT_FOUND"},
		{http.MethodGet, "/api/v1/ventures/5", http.StatusNotFound, "NOT_FOUND"},
		{http.MethodPost, "/api/v1/rankings/top", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, h, tt.method, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRouter_Headers(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, &fakeRankings{}, HandlerDeps{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rankings/top", nil))

	want := map[string]string{
		"Content-Type":           "application/json",
		"Cache-Control":          "public, max-age=60",
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be set")
	}
	if etag := rec.Header().Get("ETag"); !strings.HasPrefix(etag, `"`) {
		t.Errorf("ETag = %q, want quoted value", etag)
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should only be sent over HTTPS")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rankings/top", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS should be sent behind a TLS-terminating proxy")
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://board.example.com"}
	mw.RateLimitDisabled = true
	h := NewRouter(NewHandler(HandlerDeps{Rankings: &fakeRankings{}, Store: fakePinger{}}), mw).SetupChi()

	tests := []struct {
		origin string
		want   string
	}{
		{"https://board.example.com", "https://board.example.com"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rankings", nil)
		req.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	h := NewRouter(NewHandler(HandlerDeps{Rankings: &fakeRankings{}, Store: fakePinger{}}), mw).SetupChi()

	for i := 0; i < 2; i++ {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/rankings")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec, env := do(t, h, http.MethodGet, "/api/v1/rankings")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != codeRateLimited {
		t.Errorf("error = %+v, want %s", env.Error, codeRateLimited)
	}

	// Health probes have their own limiter.
	rec, _ = do(t, h, http.MethodGet, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, &fakeRankings{}, HandlerDeps{})

	// Generate at least one observation.
	do(t, h, http.MethodGet, "/api/v1/rankings")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("metrics output should include the default Go collectors")
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		sec          *config.SecurityConfig
		wantOrigins  int
		wantRequests int
		wantWindow   time.Duration
		wantDisabled bool
	}{
		{"nil keeps defaults", nil, 0, 100, time.Minute, false},
		{
			"overrides",
			&config.SecurityConfig{CORSOrigins: []string{"https://a.example.com"}, RateLimitReqs: 30, RateLimitWindow: 10 * time.Second},
			1, 30, 10 * time.Second, false,
		},
		{
			"zero limits keep defaults",
			&config.SecurityConfig{RateLimitDisabled: true},
			0, 100, time.Minute, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := ChiMiddlewareConfigFromSecurity(tt.sec)
			if len(cfg.CORSAllowedOrigins) != tt.wantOrigins {
				t.Errorf("origins = %v, want %d entries", cfg.CORSAllowedOrigins, tt.wantOrigins)
			}
			if cfg.RateLimitRequests != tt.wantRequests {
				t.Errorf("requests = %d, want %d", cfg.RateLimitRequests, tt.wantRequests)
			}
			if cfg.RateLimitWindow != tt.wantWindow {
				t.Errorf("window = %v, want %v", cfg.RateLimitWindow, tt.wantWindow)
			}
			if cfg.RateLimitDisabled != tt.wantDisabled {
				t.Errorf("disabled = %v, want %v", cfg.RateLimitDisabled, tt.wantDisabled)
			}
		})
	}
}
