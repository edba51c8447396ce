// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

// Package database provides the DuckDB-backed venture store.
//
// # Overview
//
// The store holds venture profiles, their raw scoring metrics and the like and
// bookmark collections whose sizes feed the engagement score. It is the
// ranking.DataProvider used by the ranking service.
//
// # Architecture
//
//   - database.go: connection lifecycle and pool configuration
//   - database_schema.go: table and index creation
//   - ventures.go: venture queries (FindAll, FindByIndustry, FindByID)
//   - seed.go: seed file loading and transactional inserts
//   - demo.go: deterministic demo data set
//   - circuit_breaker.go: gobreaker wrapper for the read path
//
// # Null Handling
//
// Raw metrics are nullable columns scanned into pointer fields, so a venture
// with no recorded revenue reads back with AnnualRevenue == nil and the
// scoring package applies its documented default. Blank profile text is
// stored as NULL and read back as "".
//
// # Usage Example
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if _, err := db.SeedVentures(ctx, database.SeedOptions{Demo: true}); err != nil {
//	    return err
//	}
//
//	store := database.NewCircuitBreakerStore(db, &cfg.Breaker)
//	ventures, err := store.FindByIndustry(ctx, "fintech")
//
// # Thread Safety
//
// DB and CircuitBreakerStore are safe for concurrent use. Returned slices are
// freshly allocated per call.
package database
