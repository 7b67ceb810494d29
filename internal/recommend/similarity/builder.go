// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package similarity

import (
	"context"
	"errors"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/logging"
)

// Config weights the similarity terms.
type Config struct {
	GenreWeight       float64
	YearWeight        float64
	MaxYearDifference int
	// Workers bounds row-level parallelism. 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig leans on genres, with release year as a tie-breaker.
func DefaultConfig() Config {
	return Config{
		GenreWeight:       0.85,
		YearWeight:        0.15,
		MaxYearDifference: 20,
	}
}

// ErrInvalidConfig is returned for negative weights or a zero weight sum.
var ErrInvalidConfig = errors.New("similarity: invalid config")

func (c Config) normalized() (Config, error) {
	if c.GenreWeight < 0 || c.YearWeight < 0 || c.MaxYearDifference < 0 {
		return c, ErrInvalidConfig
	}
	total := c.GenreWeight + c.YearWeight
	if total == 0 {
		return c, ErrInvalidConfig
	}
	c.GenreWeight /= total
	c.YearWeight /= total
	if c.MaxYearDifference == 0 {
		c.MaxYearDifference = 20
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}

// features is the precomputed per-item input to the scorer.
type features struct {
	tags map[string]struct{}
	year int
	norm float64
}

// Build scores every pair of items.
func Build(ctx context.Context, items []catalog.Item, cfg Config) (*catalog.Matrix, error) {
	cfg, err := cfg.normalized()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	n := len(items)
	feats := extract(items)
	m := catalog.NewMatrix(n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.Set(i, i, 1)
			for j := i + 1; j < n; j++ {
				s := float32(score(feats[i], feats[j], cfg))
				m.Set(i, j, s)
				m.Set(j, i, s)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.Info().
		Int("items", n).
		Int("workers", cfg.Workers).
		Dur("elapsed", time.Since(start)).
		Msg("Similarity matrix built")
	return m, nil
}

func extract(items []catalog.Item) []features {
	fold := cases.Fold()
	out := make([]features, len(items))
	for i, it := range items {
		tags := make(map[string]struct{}, len(it.Genres))
		for _, g := range it.Genres {
			tags[fold.String(g)] = struct{}{}
		}
		f := features{tags: tags, norm: math.Sqrt(float64(len(tags)))}
		if y, ok := it.Year(); ok {
			f.year = y
		}
		out[i] = f
	}
	return out
}

// unknownYearScore is the year term used when either side has no year.
const unknownYearScore = 0.5

func score(a, b features, cfg Config) float64 {
	genre := cosine(a, b)
	year := unknownYearScore
	if a.year != 0 && b.year != 0 {
		diff := math.Abs(float64(a.year - b.year))
		year = math.Max(0, 1-diff/float64(cfg.MaxYearDifference))
	}
	return cfg.GenreWeight*genre + cfg.YearWeight*year
}

func cosine(a, b features) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	small, large := a.tags, b.tags
	if len(small) > len(large) {
		small, large = large, small
	}
	var shared int
	for t := range small {
		if _, ok := large[t]; ok {
			shared++
		}
	}
	return float64(shared) / (a.norm * b.norm)
}
