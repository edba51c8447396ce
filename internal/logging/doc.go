// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

// Package logging provides centralized zerolog-based logging for Ventureboard.
//
// It provides:
//
//   - A global zerolog logger configured once at startup (Init)
//   - JSON output for production, console output for development
//   - Request and correlation IDs carried in context.Context (Ctx)
//   - Component child loggers (WithComponent)
//   - An slog.Handler bridge for slog-only libraries such as sutureslog
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Ranking failed")
//	logging.Ctx(ctx).Debug().Str("industry", industry).Msg("Cache miss")
//
// # Configuration
//
// Level and format come from the logging section of the configuration
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER environment variables).
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
