// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tomtom215/nextbinge/internal/config"
	"github.com/tomtom215/nextbinge/internal/metadata"
	"github.com/tomtom215/nextbinge/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness checks
//   - handlers_recommend.go: the recommendations endpoint
//   - handlers_catalog.go: catalog browsing
//   - handlers_metadata.go: TMDB details and trending
type Handler struct {
	rec       *recommend.Recommender
	meta      *metadata.Service // nil when enrichment is off
	cfg       config.CatalogConfig
	startTime time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewHandler creates the API handler. meta may be nil.
func NewHandler(rec *recommend.Recommender, meta *metadata.Service, cfg config.CatalogConfig) *Handler {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = recommend.DefaultLimit
	}
	if cfg.KidsGenre == "" {
		cfg.KidsGenre = recommend.DefaultKidsGenre
	}
	seed := uint64(time.Now().UnixNano())
	return &Handler{
		rec:       rec,
		meta:      meta,
		cfg:       cfg,
		startTime: time.Now(),
		rng:       rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// SetRandSource replaces the random source used by /catalog/random.
func (h *Handler) SetRandSource(rng *rand.Rand) {
	h.rngMu.Lock()
	h.rng = rng
	h.rngMu.Unlock()
}

// profilePredicate maps a validated profile string to a predicate.
func (h *Handler) profilePredicate(profile string) (recommend.Profile, recommend.Predicate) {
	p, err := recommend.ParseProfile(profile)
	if err != nil {
		p = recommend.ProfileAdult
	}
	return p, p.Predicate(h.cfg.KidsGenre)
}
