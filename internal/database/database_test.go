// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/tomtom215/ventureboard/internal/config"
	"github.com/tomtom215/ventureboard/internal/models"
)

// testDBSemaphore serializes DuckDB use across tests; concurrent CGO calls
// from many in-memory databases can hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an in-memory database held exclusively until the test
// completes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:         ":memory:",
		MaxMemory:    "256MB",
		Threads:      2,
		QueryTimeout: 30 * time.Second,
	}

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		db, err := New(cfg)
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func seedVenture(id int64, status, industry string) SeedVenture {
	return SeedVenture{Venture: models.Venture{
		ID:          id,
		CompanyName: "Venture " + industry,
		Status:      status,
		Industry:    industry,
	}}
}

func TestNew_CreatesEmptySchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	n, err := db.CountVentures(ctx)
	if err != nil {
		t.Fatalf("CountVentures() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountVentures() = %d, want 0", n)
	}

	ventures, err := db.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if ventures == nil || len(ventures) != 0 {
		t.Errorf("FindAll() = %v, want empty non-nil slice", ventures)
	}
}

func TestNew_CreatesParentDirectory(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	path := filepath.Join(t.TempDir(), "nested", "dir", "ventures.duckdb")
	db, err := New(&config.DatabaseConfig{Path: path, Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closeQuietly(db)

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent directory not created: %v", err)
	}
}

func TestInsertVentures_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	full := SeedVenture{
		Venture: models.Venture{
			ID:                     7,
			CompanyName:            "Acme Pay",
			Status:                 "Approved",
			Industry:               "Fintech",
			Description:            "Payments",
			FoundingDate:           "2019-03-01",
			ContactEmail:           "hi@acme.example.com",
			Website:                "https://acme.example.com",
			AnnualRevenue:          f64(250e6),
			AverageGrowthRate:      f64(42.5),
			SurvivalRate:           f64(88),
			FundingRounds:          i64(4),
			ForeignInvestmentCount: i64(1),
			ViewsCount:             i64(1200),
			LikesCount:             3,
			BookmarksCount:         2,
		},
		Photo: []byte{0x89, 'P', 'N', 'G'},
	}
	sparse := SeedVenture{Venture: models.Venture{ID: 8, CompanyName: "Sparse Co"}}

	if err := db.InsertVentures(ctx, []SeedVenture{full, sparse}); err != nil {
		t.Fatalf("InsertVentures() error = %v", err)
	}

	got, err := db.FindByID(ctx, 7)
	if err != nil {
		t.Fatalf("FindByID(7) error = %v", err)
	}
	if got == nil {
		t.Fatal("FindByID(7) = nil, want venture")
	}

	if got.CompanyName != "Acme Pay" || got.Status != "Approved" || got.Industry != "Fintech" {
		t.Errorf("identity fields = %q/%q/%q", got.CompanyName, got.Status, got.Industry)
	}
	if got.Description != "Payments" || got.Website != "https://acme.example.com" {
		t.Errorf("profile fields = %q/%q", got.Description, got.Website)
	}
	if !got.HasPhoto {
		t.Error("HasPhoto = false, want true")
	}
	if got.AnnualRevenue == nil || *got.AnnualRevenue != 250e6 {
		t.Errorf("AnnualRevenue = %v, want 250e6", got.AnnualRevenue)
	}
	if got.AverageGrowthRate == nil || *got.AverageGrowthRate != 42.5 {
		t.Errorf("AverageGrowthRate = %v, want 42.5", got.AverageGrowthRate)
	}
	if got.FundingRounds == nil || *got.FundingRounds != 4 {
		t.Errorf("FundingRounds = %v, want 4", got.FundingRounds)
	}
	if got.PaidUpCapital != nil || got.MentorCount != nil {
		t.Errorf("unset metrics = %v/%v, want nil", got.PaidUpCapital, got.MentorCount)
	}
	if got.LikesCount != 3 || got.BookmarksCount != 2 {
		t.Errorf("likes/bookmarks = %d/%d, want 3/2", got.LikesCount, got.BookmarksCount)
	}

	sp, err := db.FindByID(ctx, 8)
	if err != nil {
		t.Fatalf("FindByID(8) error = %v", err)
	}
	if sp == nil {
		t.Fatal("FindByID(8) = nil, want venture")
	}
	if sp.Status != "Pending" {
		t.Errorf("default status = %q, want Pending", sp.Status)
	}
	if sp.HasPhoto || sp.Industry != "" || sp.LikesCount != 0 {
		t.Errorf("sparse venture = %+v, want empty profile", sp)
	}
	if sp.AnnualRevenue != nil || sp.ViewsCount != nil {
		t.Error("sparse venture metrics should be nil")
	}
}

func TestFindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.FindByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got != nil {
		t.Errorf("FindByID() = %+v, want nil", got)
	}
}

func TestInsertVentures_DuplicateRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	batch := []SeedVenture{
		seedVenture(1, "Approved", "Fintech"),
		seedVenture(1, "Approved", "Fintech"),
	}
	if err := db.InsertVentures(ctx, batch); err == nil {
		t.Fatal("InsertVentures() with duplicate IDs should fail")
	}

	n, err := db.CountVentures(ctx)
	if err != nil {
		t.Fatalf("CountVentures() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountVentures() = %d after rollback, want 0", n)
	}
}

func TestWhitespace_MatchesTrimSpace(t *testing.T) {
	t.Parallel()

	for _, r := range whitespace {
		if !unicode.IsSpace(r) {
			t.Errorf("whitespace contains %U, which is not a space", r)
		}
	}
	for r := rune(0); r <= 0x3000; r++ {
		if unicode.IsSpace(r) && !strings.ContainsRune(whitespace, r) {
			t.Errorf("whitespace is missing %U", r)
		}
	}
}

func TestFindAll_OrderedByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	batch := []SeedVenture{
		seedVenture(3, "Approved", "Fintech"),
		seedVenture(1, "Pending", "Health"),
		seedVenture(2, "Rejected", "Fintech"),
	}
	if err := db.InsertVentures(ctx, batch); err != nil {
		t.Fatalf("InsertVentures() error = %v", err)
	}

	ventures, err := db.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(ventures) != 3 {
		t.Fatalf("FindAll() returned %d ventures, want 3", len(ventures))
	}
	for i, v := range ventures {
		if v.ID != int64(i+1) {
			t.Errorf("ventures[%d].ID = %d, want %d", i, v.ID, i+1)
		}
	}
}

func TestFindByIndustry(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	batch := []SeedVenture{
		seedVenture(1, "Approved", "Fintech"),
		seedVenture(2, "Pending", " fintech "),
		seedVenture(3, "Approved", "Health"),
		seedVenture(4, "Approved", ""),
		seedVenture(5, "Approved", "Fintech\t"),
		seedVenture(6, "Approved", "\n fintech\u00a0"),
	}
	if err := db.InsertVentures(ctx, batch); err != nil {
		t.Fatalf("InsertVentures() error = %v", err)
	}

	tests := []struct {
		name     string
		industry string
		wantIDs  []int64
	}{
		{"exact", "Fintech", []int64{1, 2, 5, 6}},
		{"case and space insensitive", "  FINTECH", []int64{1, 2, 5, 6}},
		{"tab and newline trimmed", "\tfintech\n", []int64{1, 2, 5, 6}},
		{"single match", "health", []int64{3}},
		{"no match", "Agritech", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.FindByIndustry(ctx, tt.industry)
			if err != nil {
				t.Fatalf("FindByIndustry(%q) error = %v", tt.industry, err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FindByIndustry(%q) returned %d ventures, want %d", tt.industry, len(got), len(tt.wantIDs))
			}
			for i, v := range got {
				if v.ID != tt.wantIDs[i] {
					t.Errorf("got[%d].ID = %d, want %d", i, v.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
