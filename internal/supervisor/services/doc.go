// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

// Package services adapts ventureboard components to suture.Service.
//
// HTTPServerService drives an *http.Server through ListenAndServe and a
// bounded graceful Shutdown. CacheJanitorService sweeps expired entries out
// of the in-process ranking cache on a fixed interval.
//
// Each type implements String so supervisor events name the service.
package services
