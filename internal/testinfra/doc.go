// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

// Package testinfra starts containers for integration tests with
// testcontainers-go.
//
// Everything here builds only with the integration tag:
//
//	go test -tags integration ./internal/cache/...
//
// Tests call SkipIfNoDocker first so machines without Docker skip instead of
// failing. The first run pulls images; later runs use the local cache.
package testinfra
