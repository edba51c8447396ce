// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/ventureboard/internal/metrics"
	"github.com/tomtom215/ventureboard/internal/models"
)

// ventureColumns selects a venture in models.Venture field order.
// NULL profile text reads as ""; NULL metrics stay NULL.
const ventureColumns = `
	v.id,
	v.company_name,
	v.status,
	coalesce(v.industry, ''),
	coalesce(v.description, ''),
	coalesce(v.founding_date, ''),
	coalesce(v.funding_stage, ''),
	coalesce(v.business_model, ''),
	coalesce(v.founder_name, ''),
	coalesce(v.contact_email, ''),
	coalesce(v.contact_phone, ''),
	coalesce(v.address, ''),
	coalesce(v.city, ''),
	coalesce(v.region, ''),
	coalesce(v.country, ''),
	coalesce(v.postal_code, ''),
	coalesce(octet_length(v.photo), 0) > 0,
	coalesce(v.website, ''),
	coalesce(v.linkedin, ''),
	coalesce(v.twitter, ''),
	coalesce(v.facebook, ''),
	coalesce(v.instagram, ''),
	v.annual_revenue,
	v.average_growth_rate,
	v.survival_rate,
	v.paid_up_capital,
	v.total_funding_received,
	v.government_grants,
	v.funding_rounds,
	v.foreign_investment_count,
	v.incubation_count,
	v.mentor_count,
	v.partnership_count,
	v.views_count,
	(SELECT count(*) FROM venture_likes l WHERE l.venture_id = v.id),
	(SELECT count(*) FROM venture_bookmarks b WHERE b.venture_id = v.id)`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenture(row rowScanner) (models.Venture, error) {
	var v models.Venture
	err := row.Scan(
		&v.ID,
		&v.CompanyName,
		&v.Status,
		&v.Industry,
		&v.Description,
		&v.FoundingDate,
		&v.FundingStage,
		&v.BusinessModel,
		&v.FounderName,
		&v.ContactEmail,
		&v.ContactPhone,
		&v.Address,
		&v.City,
		&v.Region,
		&v.Country,
		&v.PostalCode,
		&v.HasPhoto,
		&v.Website,
		&v.LinkedIn,
		&v.Twitter,
		&v.Facebook,
		&v.Instagram,
		&v.AnnualRevenue,
		&v.AverageGrowthRate,
		&v.SurvivalRate,
		&v.PaidUpCapital,
		&v.TotalFundingReceived,
		&v.GovernmentGrants,
		&v.FundingRounds,
		&v.ForeignInvestmentCount,
		&v.IncubationCount,
		&v.MentorCount,
		&v.PartnershipCount,
		&v.ViewsCount,
		&v.LikesCount,
		&v.BookmarksCount,
	)
	return v, err
}

// FindAll returns every venture ordered by ID, regardless of status.
func (db *DB) FindAll(ctx context.Context) ([]models.Venture, error) {
	query := `SELECT ` + ventureColumns + ` FROM ventures v ORDER BY v.id`
	return db.queryVentures(ctx, "find_all", query)
}

// whitespace is every rune unicode.IsSpace accepts, so stored industries are
// trimmed exactly like strings.TrimSpace trims the requested one.
const whitespace = " \t\n\v\f\r\u0085\u00a0\u1680" +
	"\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a" +
	"\u2028\u2029\u202f\u205f\u3000"

// FindByIndustry returns ventures whose industry matches case-insensitively
// after trimming, ordered by ID.
func (db *DB) FindByIndustry(ctx context.Context, industry string) ([]models.Venture, error) {
	query := `SELECT ` + ventureColumns + ` FROM ventures v
		WHERE lower(trim(v.industry, ?)) = lower(?)
		ORDER BY v.id`
	return db.queryVentures(ctx, "find_by_industry", query, whitespace, strings.TrimSpace(industry))
}

// FindByID returns the venture with the given ID, or (nil, nil) if none exists.
func (db *DB) FindByID(ctx context.Context, id int64) (*models.Venture, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	start := time.Now()
	query := `SELECT ` + ventureColumns + ` FROM ventures v WHERE v.id = ?`
	v, err := scanVenture(db.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("find_by_id", "ventures", time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordDBQuery("find_by_id", "ventures", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query venture %d: %w", id, err)
	}
	return &v, nil
}

// CountVentures returns the number of stored ventures.
func (db *DB) CountVentures(ctx context.Context) (int64, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM ventures`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count ventures: %w", err)
	}
	return n, nil
}

func (db *DB) queryVentures(ctx context.Context, operation, query string, args ...any) (ventures []models.Venture, err error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery(operation, "ventures", time.Since(start), err)
	}()

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ventures: %w", err)
	}
	defer closeWithLog(rows, nil, "ventures rows")

	ventures = make([]models.Venture, 0, 64)
	for rows.Next() {
		v, err := scanVenture(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venture: %w", err)
		}
		ventures = append(ventures, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ventures: %w", err)
	}
	return ventures, nil
}
