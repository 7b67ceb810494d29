// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/metadata"
	"github.com/tomtom215/nextbinge/internal/recommend"
)

// enrichTimeout bounds the TMDB fan-out of one request.
const enrichTimeout = 10 * time.Second

// RecommendationView is one ranked movie in a response.
type RecommendationView struct {
	Rank        int             `json:"rank"`
	Score       float64         `json:"score"`
	Title       string          `json:"title"`
	MovieID     string          `json:"movie_id"`
	Genres      []string        `json:"genres"`
	ReleaseYear *int            `json:"release_year,omitempty"`
	Details     *metadata.Movie `json:"details,omitempty"`
}

// RecommendationsQuery echoes the effective request.
type RecommendationsQuery struct {
	Title       string `json:"title,omitempty"`
	MovieID     string `json:"movie_id,omitempty"`
	Profile     string `json:"profile"`
	Limit       int    `json:"limit"`
	IncludeSelf bool   `json:"include_self"`
}

// RecommendationsResponse is the data payload of GET /recommendations.
type RecommendationsResponse struct {
	Query           RecommendationsQuery `json:"query"`
	Status          recommend.Status     `json:"status"`
	Source          *catalog.Item        `json:"source,omitempty"`
	Ambiguous       bool                 `json:"ambiguous,omitempty"`
	Recommendations []RecommendationView `json:"recommendations"`
	Count           int                  `json:"count"`
	Eligible        int                  `json:"eligible"`
	Message         string               `json:"message,omitempty"`
	Warning         string               `json:"warning,omitempty"`
}

// Recommendations handles GET /api/v1/recommendations.
//
// Misses are answered with 200: data.status is "not_found" when the title
// is unknown and "no_eligible_candidates" when the profile filters out
// everything.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, verr := parseRecommendationsRequest(r)
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
	opts := recommend.Options{
		RestrictTo:  predicate,
		Limit:       limit,
		IncludeSelf: req.IncludeSelf,
	}

	var res recommend.Result
	if req.MovieID != "" {
		res = h.rec.RecommendByMovieID(req.MovieID, opts)
	} else {
		res = h.rec.Recommend(req.Title, opts)
	}

	resp := RecommendationsResponse{
		Query: RecommendationsQuery{
			Title:       req.Title,
			MovieID:     req.MovieID,
			Profile:     string(profile),
			Limit:       limit,
			IncludeSelf: req.IncludeSelf,
		},
		Status:          res.Status,
		Ambiguous:       res.Ambiguous,
		Recommendations: make([]RecommendationView, 0, len(res.Items)),
		Count:           len(res.Items),
		Eligible:        res.Eligible,
	}
	if res.SourceIndex >= 0 {
		src := h.rec.Catalog().Item(res.SourceIndex)
		resp.Source = &src
	}
	for _, s := range res.Items {
		resp.Recommendations = append(resp.Recommendations, RecommendationView{
			Rank:        s.Rank,
			Score:       s.Score,
			Title:       s.Item.Title,
			MovieID:     s.Item.MovieID,
			Genres:      s.Item.Genres,
			ReleaseYear: s.Item.ReleaseYear,
		})
	}
	resp.Message, resp.Warning = h.describe(req, profile, res, limit)

	if req.Enrich && h.meta.Enabled() && len(resp.Recommendations) > 0 {
		h.enrich(r.Context(), resp.Recommendations)
	}

	respondSuccess(w, r, start, resp)
}

// describe returns the user-facing message for a miss and the warning for
// a short result.
func (h *Handler) describe(req RecommendationsRequest, profile recommend.Profile, res recommend.Result, limit int) (message, warning string) {
	subject := "movies"
	if profile == recommend.ProfileKids {
		subject = h.cfg.KidsGenre + " movies"
	}

	switch res.Status {
	case recommend.StatusNotFound:
		if req.MovieID != "" {
			return fmt.Sprintf("Movie id %q not found in catalog", req.MovieID), ""
		}
		return fmt.Sprintf("Movie %q not found in catalog", req.Title), ""
	case recommend.StatusNoEligibleCandidates:
		return fmt.Sprintf("No %s available to recommend", subject), ""
	}

	if res.Shortfall(limit) {
		warning = fmt.Sprintf("Only %d %s available", len(res.Items), subject)
	}
	if res.Ambiguous {
		message = "Several movies share this title; using the first one in the catalog"
		if req.MovieID != "" {
			message = "Several movies share this id; using the first one in the catalog"
		}
	}
	return message, warning
}

// enrich attaches TMDB details in place. Failures leave Details nil.
func (h *Handler) enrich(ctx context.Context, views []RecommendationView) {
	ctx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.MovieID
	}
	details := h.meta.Enrich(ctx, ids)
	for i := range views {
		views[i].Details = details[views[i].MovieID]
	}
	logging.Ctx(ctx).Debug().
		Int("requested", len(ids)).
		Int("enriched", len(details)).
		Msg("Recommendations enriched")
}
