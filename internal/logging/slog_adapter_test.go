// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	slogger.Info("service started",
		"service", "http-server",
		"attempt", 3,
		"ratio", 0.5,
		"ok", true,
		"backoff", 15*time.Second,
	)

	output := buf.String()
	for _, want := range []string{
		`"message":"service started"`,
		`"service":"http-server"`,
		`"attempt":3`,
		`"ratio":0.5`,
		`"ok":true`,
		`"level":"info"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, `"level":"debug"`},
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))
		slogger.Log(context.Background(), tt.level, "msg")

		if zerolog.GlobalLevel() <= slogToZerologLevel(tt.level) && !strings.Contains(buf.String(), tt.want) {
			t.Errorf("level %v: expected %s in output: %s", tt.level, tt.want, buf.String())
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	handler := NewSlogHandlerWithLogger(zerolog.New(nil).Level(zerolog.WarnLevel))

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if zerolog.GlobalLevel() <= zerolog.ErrorLevel && !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewSlogHandlerWithLogger(zerolog.New(&buf))

	handler := base.WithAttrs([]slog.Attr{slog.String("tree", "ventureboard")}).WithGroup("supervisor")
	slog.New(handler).Info("event", "layer", "api", slog.Group("svc", slog.String("name", "http")))

	output := buf.String()
	for _, want := range []string{
		`"supervisor.tree":"ventureboard"`,
		`"supervisor.layer":"api"`,
		`"supervisor.svc.name":"http"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}

	if base.WithGroup("") != base {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	if NewSlogLogger() == nil {
		t.Fatal("NewSlogLogger() = nil")
	}
}
