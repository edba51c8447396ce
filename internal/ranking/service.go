// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package ranking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tomtom215/ventureboard/internal/cache"
	"github.com/tomtom215/ventureboard/internal/logging"
	"github.com/tomtom215/ventureboard/internal/metrics"
	"github.com/tomtom215/ventureboard/internal/models"
	"github.com/tomtom215/ventureboard/internal/scoring"
)

// ErrVentureNotFound is returned when a venture ID does not exist.
var ErrVentureNotFound = errors.New("venture not found")

// cacheType labels ranking cache metrics.
const cacheType = "rankings"

// DataProvider supplies venture snapshots. Implementations must not retain
// or mutate returned slices after handing them over.
type DataProvider interface {
	FindAll(ctx context.Context) ([]models.Venture, error)

	// FindByID returns (nil, nil) when the venture does not exist.
	FindByID(ctx context.Context, id int64) (*models.Venture, error)

	// FindByIndustry matches industry case-insensitively after trimming.
	FindByIndustry(ctx context.Context, industry string) ([]models.Venture, error)
}

// Service serves rankings and score breakdowns, memoizing full ranking lists
// in a cache.Store. Cached lists are shared between requests and are never
// modified after they are stored.
type Service struct {
	provider DataProvider
	store    cache.Store[[]models.ScoredVenture]
	ttl      time.Duration
	bypasses atomic.Int64
}

// NewService creates a ranking service. A nil store disables caching; a
// non-positive ttl selects cache.DefaultTTL.
func NewService(provider DataProvider, store cache.Store[[]models.ScoredVenture], ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Service{
		provider: provider,
		store:    store,
		ttl:      ttl,
	}
}

// GetRankings returns every approved venture matching industry, ordered by
// metric. Unknown metrics rank by overall score; blank or "All" industry
// disables the filter.
func (s *Service) GetRankings(ctx context.Context, industry, metric string) (*models.RankingsResponse, cache.Outcome, error) {
	m := ParseMetric(metric)

	ranked, outcome, err := s.ranked(ctx, industry, m)
	if err != nil {
		metrics.RecordRankingError("rankings")
		return nil, outcome, err
	}

	entries := make([]models.RankingEntry, len(ranked))
	for i := range ranked {
		sv := &ranked[i]
		entries[i] = models.RankingEntry{
			Rank:            i + 1,
			ID:              sv.Venture.ID,
			CompanyName:     sv.Venture.CompanyName,
			Industry:        sv.Venture.Industry,
			OverallScore:    scoring.RoundScore(sv.Scores.Overall),
			GrowthScore:     scoring.Percent(sv.Scores.Growth),
			InvestmentScore: scoring.Percent(sv.Scores.Investment),
			EcosystemScore:  scoring.Percent(sv.Scores.Ecosystem),
			EngagementScore: scoring.Percent(sv.Scores.Engagement),
		}
	}

	resp := &models.RankingsResponse{
		TotalCount: len(entries),
		Metric:     m.String(),
		Rankings:   entries,
	}
	if NormalizeIndustry(industry) != "" {
		resp.Industry = strings.TrimSpace(industry)
	}
	return resp, outcome, nil
}

// GetTopRankings returns the first limit ventures by overall score.
// A non-positive limit yields an empty list.
func (s *Service) GetTopRankings(ctx context.Context, limit int, industry string) ([]models.TopRankingEntry, cache.Outcome, error) {
	ranked, outcome, err := s.ranked(ctx, industry, MetricOverall)
	if err != nil {
		metrics.RecordRankingError("top")
		return nil, outcome, err
	}

	top := ApplyLimit(ranked, &limit)
	entries := make([]models.TopRankingEntry, len(top))
	for i := range top {
		sv := &top[i]
		entries[i] = models.TopRankingEntry{
			ID:          sv.Venture.ID,
			CompanyName: sv.Venture.CompanyName,
			Industry:    sv.Venture.Industry,
			Score:       scoring.RoundScore(sv.Scores.Overall),
			GrowthRate:  sv.Venture.AverageGrowthRate,
		}
	}
	return entries, outcome, nil
}

// GetVentureScoreDetail scores a single venture by ID regardless of its
// status. Results are not cached.
func (s *Service) GetVentureScoreDetail(ctx context.Context, id int64) (*models.ScoreDetail, error) {
	v, err := s.provider.FindByID(ctx, id)
	if err != nil {
		metrics.RecordRankingError("score")
		return nil, fmt.Errorf("load venture %d: %w", id, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %d", ErrVentureNotFound, id)
	}

	in := scoring.InputsFromVenture(v)
	scores := scoring.Compute(in)

	return &models.ScoreDetail{
		ID:               v.ID,
		CompanyName:      v.CompanyName,
		Industry:         v.Industry,
		Status:           v.Status,
		OverallScore:     scoring.RoundScore(scores.Overall),
		GrowthScore:      scoring.Percent(scores.Growth),
		InvestmentScore:  scoring.Percent(scores.Investment),
		EcosystemScore:   scoring.Percent(scores.Ecosystem),
		EngagementScore:  scoring.Percent(scores.Engagement),
		Metrics:          models.RawMetricsOf(*v),
		DefaultedMetrics: in.Defaulted,
	}, nil
}

// CacheStats returns a snapshot of the ranking cache.
func (s *Service) CacheStats() models.CacheStatsResponse {
	resp := models.CacheStatsResponse{
		Backend:    "none",
		Bypasses:   s.bypasses.Load(),
		TTLSeconds: s.ttl.Seconds(),
	}
	if s.store == nil {
		return resp
	}

	st := s.store.Stats()
	resp.Backend = string(s.store.Backend())
	resp.Hits = st.Hits
	resp.Misses = st.Misses
	resp.Evictions = st.Evictions
	resp.Expirations = st.Expirations
	resp.Errors = st.Errors
	resp.Size = st.Size
	resp.Capacity = st.Capacity
	resp.HitRate = st.HitRate()
	return resp
}

// ranked returns the full ordered list for (industry, metric), from the
// cache when a live entry exists.
func (s *Service) ranked(ctx context.Context, industry string, metric Metric) ([]models.ScoredVenture, cache.Outcome, error) {
	key := CacheKey(industry, metric)

	ranked, outcome, err := cache.GetOrCompute(ctx, s.store, key, s.ttl, func(ctx context.Context) ([]models.ScoredVenture, error) {
		return s.compute(ctx, industry, metric)
	})

	metrics.RecordCacheOutcome(cacheType, outcome.String())
	if outcome == cache.OutcomeBypass {
		s.bypasses.Add(1)
	}
	s.publishCacheStats()

	logging.CtxDebug(ctx).
		Str("cache_key", key.String()).
		Str("outcome", outcome.String()).
		Int("count", len(ranked)).
		Msg("Ranking lookup")

	return ranked, outcome, err
}

func (s *Service) compute(ctx context.Context, industry string, metric Metric) ([]models.ScoredVenture, error) {
	ventures, err := s.load(ctx, industry)
	if err != nil {
		return nil, fmt.Errorf("load ventures: %w", err)
	}

	start := time.Now()
	ranked := Rank(ventures, Request{Industry: industry, Metric: metric})
	metrics.RecordRanking(metric.String(), len(ranked), time.Since(start))

	return ranked, nil
}

func (s *Service) load(ctx context.Context, industry string) ([]models.Venture, error) {
	if NormalizeIndustry(industry) == "" {
		return s.provider.FindAll(ctx)
	}
	return s.provider.FindByIndustry(ctx, strings.TrimSpace(industry))
}

func (s *Service) publishCacheStats() {
	if s.store == nil {
		return
	}
	st := s.store.Stats()
	metrics.UpdateCacheGauges(cacheType, st.Size, st.Evictions, st.Expirations)
}
