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

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/nextbinge/internal/metadata"
)

// MovieDetails handles GET /api/v1/movies/{movieID}.
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.meta.Enabled() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeMetadataDisabled, "Movie metadata is not configured", nil)
		return
	}

	rawID := chi.URLParam(r, "movieID")
	id, err := metadata.ParseID(rawID)
	if err != nil {
		respondValidationError(w, r, "movie_id must be a positive integer", map[string]interface{}{
			"fields": []map[string]string{{"field": "movie_id", "tag": "int", "message": "movie_id must be a positive integer"}},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), enrichTimeout)
	defer cancel()

	movie, err := h.meta.Movie(ctx, id)
	if err != nil {
		h.respondMetadataError(w, r, err)
		return
	}

	data := map[string]interface{}{"movie": movie}
	if idx, ok := h.rec.Catalog().IndexByMovieID(rawID); ok {
		item := h.rec.Catalog().Item(idx)
		data["catalog"] = item
	}
	respondSuccess(w, r, start, data)
}

// Trending handles GET /api/v1/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.meta.Enabled() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeMetadataDisabled, "Movie metadata is not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), enrichTimeout)
	defer cancel()

	list, err := h.meta.Trending(ctx)
	if err != nil {
		h.respondMetadataError(w, r, err)
		return
	}
	respondSuccess(w, r, start, map[string]interface{}{
		"movies": list,
		"count":  len(list),
	})
}

// respondMetadataError maps metadata failures onto status codes.
func (h *Handler) respondMetadataError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Movie not found on TMDB", nil)
	case errors.Is(err, metadata.ErrNotConfigured):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeMetadataDisabled, "Movie metadata is not configured", nil)
	case metadata.IsOpen(err):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "TMDB temporarily unavailable", err)
	default:
		respondError(w, r, http.StatusBadGateway, ErrCodeExternalServiceFail, "TMDB request failed", err)
	}
}
