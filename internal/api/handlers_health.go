// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, start, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// The server only starts listening after the catalog loads, so readiness
// tracks whether a recommender is wired. Metadata state is reported but
// does not affect readiness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.rec == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog not loaded", nil)
		return
	}

	respondSuccess(w, r, start, map[string]interface{}{
		"status":           "ready",
		"catalog_items":    h.rec.Catalog().Len(),
		"metadata_enabled": h.meta.Enabled(),
	})
}
