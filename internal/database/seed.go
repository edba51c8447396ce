// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ventureboard/internal/logging"
	"github.com/tomtom215/ventureboard/internal/metrics"
	"github.com/tomtom215/ventureboard/internal/models"
)

// SeedVenture is one venture in a seed file.
//
// Photo is base64 in JSON; HasPhoto is derived from it once stored.
// LikesCount and BookmarksCount become that many like/bookmark rows.
type SeedVenture struct {
	models.Venture
	Photo []byte `json:"photo,omitempty"`
}

// SeedOptions selects the seed source. Path wins over Demo.
type SeedOptions struct {
	Path string
	Demo bool
}

// SeedVentures loads seed data into an empty ventures table. It is a no-op
// when the table already holds rows or no source is configured, and returns
// the number of ventures inserted.
func (db *DB) SeedVentures(ctx context.Context, opts SeedOptions) (int, error) {
	if opts.Path == "" && !opts.Demo {
		return 0, nil
	}

	count, err := db.CountVentures(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logging.Info().Int64("existing", count).Msg("Ventures table not empty, skipping seed")
		return 0, nil
	}

	var seed []SeedVenture
	source := "demo"
	if opts.Path != "" {
		source = opts.Path
		seed, err = LoadSeedFile(opts.Path)
		if err != nil {
			return 0, err
		}
	} else {
		seed = DemoVentures()
	}

	if err := db.InsertVentures(ctx, seed); err != nil {
		return 0, err
	}

	logging.Info().Str("source", source).Int("ventures", len(seed)).Msg("Seeded venture store")
	return len(seed), nil
}

// LoadSeedFile decodes a JSON array of SeedVenture from path.
func LoadSeedFile(path string) ([]SeedVenture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed []SeedVenture
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return seed, nil
}

// InsertVentures stores ventures with their like and bookmark collections in
// one transaction.
func (db *DB) InsertVentures(ctx context.Context, ventures []SeedVenture) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*db.queryTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		recordInsert(start, err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i := range ventures {
		if err := insertVenture(ctx, tx, &ventures[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func insertVenture(ctx context.Context, tx *sql.Tx, s *SeedVenture) error {
	v := &s.Venture
	status := v.Status
	if status == "" {
		status = "Pending"
	}

	var photo any
	if len(s.Photo) > 0 {
		photo = s.Photo
	}

	_, err := tx.ExecContext(ctx, `INSERT INTO ventures (
			id, company_name, status, industry,
			description, founding_date, funding_stage, business_model, founder_name,
			contact_email, contact_phone, address, city, region, country, postal_code, photo,
			website, linkedin, twitter, facebook, instagram,
			annual_revenue, average_growth_rate, survival_rate, paid_up_capital,
			total_funding_received, government_grants,
			funding_rounds, foreign_investment_count, incubation_count, mentor_count,
			partnership_count, views_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.CompanyName, status, nullString(v.Industry),
		nullString(v.Description), nullString(v.FoundingDate), nullString(v.FundingStage),
		nullString(v.BusinessModel), nullString(v.FounderName),
		nullString(v.ContactEmail), nullString(v.ContactPhone), nullString(v.Address),
		nullString(v.City), nullString(v.Region), nullString(v.Country), nullString(v.PostalCode), photo,
		nullString(v.Website), nullString(v.LinkedIn), nullString(v.Twitter),
		nullString(v.Facebook), nullString(v.Instagram),
		nullFloat(v.AnnualRevenue), nullFloat(v.AverageGrowthRate), nullFloat(v.SurvivalRate),
		nullFloat(v.PaidUpCapital), nullFloat(v.TotalFundingReceived), nullFloat(v.GovernmentGrants),
		nullInt(v.FundingRounds), nullInt(v.ForeignInvestmentCount), nullInt(v.IncubationCount),
		nullInt(v.MentorCount), nullInt(v.PartnershipCount), nullInt(v.ViewsCount),
	)
	if err != nil {
		return fmt.Errorf("failed to insert venture %d: %w", v.ID, err)
	}

	if err := insertCollection(ctx, tx, "venture_likes", v.ID, v.LikesCount); err != nil {
		return err
	}
	return insertCollection(ctx, tx, "venture_bookmarks", v.ID, v.BookmarksCount)
}

// insertCollection adds n rows for ventureID with synthetic user IDs 1..n.
func insertCollection(ctx context.Context, tx *sql.Tx, table string, ventureID, n int64) error {
	if n <= 0 {
		return nil
	}
	// table is one of two constants above, never user input.
	query := fmt.Sprintf("INSERT INTO %s (venture_id, user_id) VALUES (?, ?)", table) //nolint:gosec // constant table name
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer closeQuietly(stmt)

	for userID := int64(1); userID <= n; userID++ {
		if _, err := stmt.ExecContext(ctx, ventureID, userID); err != nil {
			return fmt.Errorf("failed to insert %s row for venture %d: %w", table, ventureID, err)
		}
	}
	return nil
}

// nullString stores blank text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func recordInsert(start time.Time, err error) {
	metrics.RecordDBQuery("insert", "ventures", time.Since(start), err)
}
