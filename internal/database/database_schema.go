// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
database_schema.go - Database Schema Management

Tables:
  - ventures: venture profiles with nullable raw metrics and an optional photo
  - venture_likes: one row per (venture, user) like
  - venture_bookmarks: one row per (venture, user) bookmark

Likes and bookmarks are collections; queries report their sizes. The photo
BLOB is never selected, only whether it is non-empty.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the venture tables and indexes if they do not exist.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS ventures (
			id BIGINT PRIMARY KEY,
			company_name VARCHAR NOT NULL,
			status VARCHAR NOT NULL DEFAULT 'Pending',
			industry VARCHAR,
			description VARCHAR,
			founding_date VARCHAR,
			funding_stage VARCHAR,
			business_model VARCHAR,
			founder_name VARCHAR,
			contact_email VARCHAR,
			contact_phone VARCHAR,
			address VARCHAR,
			city VARCHAR,
			region VARCHAR,
			country VARCHAR,
			postal_code VARCHAR,
			photo BLOB,
			website VARCHAR,
			linkedin VARCHAR,
			twitter VARCHAR,
			facebook VARCHAR,
			instagram VARCHAR,
			annual_revenue DOUBLE,
			average_growth_rate DOUBLE,
			survival_rate DOUBLE,
			paid_up_capital DOUBLE,
			total_funding_received DOUBLE,
			government_grants DOUBLE,
			funding_rounds BIGINT,
			foreign_investment_count BIGINT,
			incubation_count BIGINT,
			mentor_count BIGINT,
			partnership_count BIGINT,
			views_count BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS venture_likes (
			venture_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			PRIMARY KEY (venture_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS venture_bookmarks (
			venture_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			PRIMARY KEY (venture_id, user_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ventures_status ON ventures(status)`,
		`CREATE INDEX IF NOT EXISTS idx_ventures_industry ON ventures(industry)`,
	}
}
