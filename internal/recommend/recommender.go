// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package recommend

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/metrics"
)

// Recommender ranks catalog items by precomputed similarity.
type Recommender struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// New returns a Recommender over c. c must come from catalog.New.
func New(c *catalog.Catalog) *Recommender {
	r := &Recommender{
		catalog: c,
		logger:  logging.WithComponent("recommend"),
	}
	if dups := c.DuplicateTitles(); len(dups) > 0 {
		r.logger.Warn().
			Int("count", len(dups)).
			Strs("sample", sample(dups, 5)).
			Msg("Catalog contains duplicate titles; lookups resolve to the first row")
	}
	if dups := c.DuplicateMovieIDs(); len(dups) > 0 {
		r.logger.Warn().
			Int("count", len(dups)).
			Strs("sample", sample(dups, 5)).
			Msg("Catalog contains duplicate movie ids; lookups resolve to the first row")
	}
	metrics.CatalogItems.Set(float64(c.Len()))
	return r
}

// Catalog returns the catalog the recommender reads.
func (r *Recommender) Catalog() *catalog.Catalog {
	return r.catalog
}

// Recommend returns the movies most similar to title.
func (r *Recommender) Recommend(title string, opts Options) Result {
	start := time.Now()

	idx, ok := r.catalog.Index(title)
	if !ok {
		res := Result{Status: StatusNotFound, SourceIndex: -1, Items: []Scored{}}
		r.observe(title, opts, res, start)
		return res
	}

	res := r.rank(idx, opts)
	res.Ambiguous = r.catalog.IsDuplicateTitle(title)
	r.observe(title, opts, res, start)
	return res
}

// RecommendByMovieID is Recommend keyed by external movie id.
func (r *Recommender) RecommendByMovieID(movieID string, opts Options) Result {
	start := time.Now()

	idx, ok := r.catalog.IndexByMovieID(movieID)
	if !ok {
		res := Result{Status: StatusNotFound, SourceIndex: -1, Items: []Scored{}}
		r.observe(movieID, opts, res, start)
		return res
	}

	res := r.rank(idx, opts)
	res.Ambiguous = r.catalog.IsDuplicateMovieID(movieID)
	r.observe(movieID, opts, res, start)
	return res
}

type candidate struct {
	index int
	score float64
}

func (r *Recommender) rank(idx int, opts Options) Result {
	row := r.catalog.Matrix().Row(idx)

	candidates := make([]candidate, 0, len(row))
	for j, s := range row {
		if j == idx && !opts.IncludeSelf {
			continue
		}
		if opts.RestrictTo != nil && !opts.RestrictTo(r.catalog.Item(j)) {
			continue
		}
		candidates = append(candidates, candidate{index: j, score: float64(s)})
	}

	res := Result{
		Status:      StatusOK,
		SourceIndex: idx,
		Eligible:    len(candidates),
		Items:       []Scored{},
	}
	if opts.Limit <= 0 {
		return res
	}
	if len(candidates) == 0 {
		res.Status = StatusNoEligibleCandidates
		return res
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].index < candidates[b].index
	})

	n := min(opts.Limit, len(candidates))
	res.Items = make([]Scored, n)
	for i := 0; i < n; i++ {
		res.Items[i] = Scored{
			Item:  r.catalog.Item(candidates[i].index),
			Score: candidates[i].score,
			Rank:  i + 1,
		}
	}
	return res
}

func (r *Recommender) observe(key string, opts Options, res Result, start time.Time) {
	elapsed := time.Since(start)
	metrics.RecordRecommendation(res.Status.String(), opts.RestrictTo != nil, elapsed)

	r.logger.Debug().
		Str("key", key).
		Str("status", res.Status.String()).
		Bool("restricted", opts.RestrictTo != nil).
		Int("limit", opts.Limit).
		Int("returned", len(res.Items)).
		Int("eligible", res.Eligible).
		Dur("elapsed", elapsed).
		Msg("Recommendation lookup")
}

func sample(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
