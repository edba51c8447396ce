// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/ventureboard/internal/cache"
)

// rankingsQuery bounds the free-text ranking parameters. Values that pass are
// normalized by the ranking service.
type rankingsQuery struct {
	Industry string `query:"industry" validate:"max=100,nocontrol"`
	Metric   string `query:"metric" validate:"max=32,nocontrol"`
}

// ventureIDParam is the parsed {id} path parameter.
type ventureIDParam struct {
	ID int64 `path:"id" validate:"gt=0"`
}

// Rankings handles GET /api/v1/rankings.
//
// Query parameters:
//   - industry: filter (case-insensitive, blank or "All" for every industry)
//   - metric: overall (default), growth, investment, ecosystem or engagement
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := rankingsQuery{
		Industry: r.URL.Query().Get("industry"),
		Metric:   r.URL.Query().Get("metric"),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	resp, outcome, err := h.rankings.GetRankings(r.Context(), q.Industry, q.Metric)
	if err != nil {
		respondServiceError(r.Context(), w, err)
		return
	}

	respondSuccess(w, resp, start, outcome == cache.OutcomeHit)
}

// TopRankings handles GET /api/v1/rankings/top.
//
// limit defaults to 10 when missing or malformed; zero or negative limits
// return an empty list.
func (h *Handler) TopRankings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := rankingsQuery{Industry: r.URL.Query().Get("industry")}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	limit := getIntParam(r, "limit", defaultTopLimit)

	entries, outcome, err := h.rankings.GetTopRankings(r.Context(), limit, q.Industry)
	if err != nil {
		respondServiceError(r.Context(), w, err)
		return
	}

	respondSuccess(w, entries, start, outcome == cache.OutcomeHit)
}

// VentureScore handles GET /api/v1/ventures/{id}/score.
func (h *Handler) VentureScore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "id must be a positive integer", nil)
		return
	}
	p := ventureIDParam{ID: id}
	if apiErr := validateRequest(&p); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	detail, err := h.rankings.GetVentureScoreDetail(r.Context(), p.ID)
	if err != nil {
		respondServiceError(r.Context(), w, err)
		return
	}

	respondSuccess(w, detail, start, false)
}

// CacheStats handles GET /api/v1/rankings/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.rankings.CacheStats(), start, false)
}
