// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/logging"
)

// CatalogGenres handles GET /api/v1/catalog/genres.
func (h *Handler) CatalogGenres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	genres := h.rec.Catalog().Genres()
	respondSuccess(w, r, start, map[string]interface{}{
		"genres": genres,
		"count":  len(genres),
	})
}

// CatalogYears handles GET /api/v1/catalog/years.
func (h *Handler) CatalogYears(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	c := h.rec.Catalog()
	data := map[string]interface{}{
		"years": c.Years(),
	}
	if minYear, maxYear, ok := c.YearRange(); ok {
		data["min"] = minYear
		data["max"] = maxYear
	}
	respondSuccess(w, r, start, data)
}

// CatalogMovies handles GET /api/v1/catalog/movies, newest first.
func (h *Handler) CatalogMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, verr := parseCatalogMoviesRequest(r)
	if verr == nil {
		verr = checkLimit(req.Limit, h.cfg.MaxLimit)
	}
	if verr != nil {
		respondValidationError(w, r, verr.Error(), verr.Details())
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.cfg.MaxLimit
	}
	profile, predicate := h.profilePredicate(req.Profile)

	q := catalog.Query{
		Genre:       req.Genre,
		YearFrom:    req.YearFrom,
		YearTo:      req.YearTo,
		Predicate:   predicate,
		NewestFirst: true,
		Limit:       limit,
	}
	movies := h.rec.Catalog().Filter(q)

	respondSuccess(w, r, start, map[string]interface{}{
		"movies":  movies,
		"count":   len(movies),
		"profile": string(profile),
	})
}

// CatalogRandom handles GET /api/v1/catalog/random.
func (h *Handler) CatalogRandom(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, verr := parseRandomRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr.Error(), verr.Details())
		return
	}
	_, predicate := h.profilePredicate(req.Profile)

	h.rngMu.Lock()
	item, ok := h.rec.Catalog().Random(h.rng, predicate)
	h.rngMu.Unlock()

	if !ok {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "No eligible movies in catalog", nil)
		return
	}
	respondSuccess(w, r, start, item)
}

// CatalogCast handles GET /api/v1/catalog/cast. Every eligible catalog
// movie's credits are searched, so results are partial when the lookup
// outlasts enrichTimeout.
func (h *Handler) CatalogCast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.meta.Enabled() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeMetadataDisabled, "Movie metadata is not configured", nil)
		return
	}

	req, verr := parseCastSearchRequest(r)
	if verr == nil {
		verr = checkLimit(req.Limit, h.cfg.MaxLimit)
	}
	if verr != nil {
		respondValidationError(w, r, verr.Error(), verr.Details())
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.cfg.DefaultLimit
	}
	profile, predicate := h.profilePredicate(req.Profile)

	c := h.rec.Catalog()
	ids := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if it := c.Item(i); predicate == nil || predicate(it) {
			ids = append(ids, it.MovieID)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), enrichTimeout)
	defer cancel()

	matched, err := h.meta.MoviesWithCast(ctx, req.Name, ids)
	partial := false
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) || r.Context().Err() != nil {
			h.respondMetadataError(w, r, err)
			return
		}
		partial = true
		logging.Ctx(r.Context()).Warn().
			Str("name", req.Name).
			Int("searched", len(ids)).
			Int("matched", len(matched)).
			Msg("Cast search timed out; returning partial results")
	}

	movies := make([]catalog.Item, 0, limit)
	for _, id := range matched {
		if len(movies) == limit {
			break
		}
		if idx, ok := c.IndexByMovieID(id); ok {
			movies = append(movies, c.Item(idx))
		}
	}

	respondSuccess(w, r, start, map[string]interface{}{
		"name":    req.Name,
		"movies":  movies,
		"count":   len(movies),
		"profile": string(profile),
		"partial": partial,
	})
}
