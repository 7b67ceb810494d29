// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/nextbinge/internal/logging"
)

// DefaultMaxConcurrency bounds the Enrich fan-out.
const DefaultMaxConcurrency = 4

// Service answers metadata lookups from the cache, falling back to the
// upstream source. A nil *Service is valid and reports ErrNotConfigured.
type Service struct {
	source         Source
	cache          *Cache
	maxConcurrency int
}

// NewService wires a source and a cache. cache may be nil.
func NewService(source Source, cache *Cache, maxConcurrency int) *Service {
	if maxConcurrency < 1 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Service{source: source, cache: cache, maxConcurrency: maxConcurrency}
}

// Enabled reports whether the service can answer lookups.
func (s *Service) Enabled() bool {
	return s != nil && s.source != nil
}

// Cache exposes the backing cache for maintenance jobs.
func (s *Service) Cache() *Cache {
	if s == nil {
		return nil
	}
	return s.cache
}

// ParseID converts a catalog movie id into a TMDB id.
func ParseID(movieID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(movieID))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, movieID)
	}
	return id, nil
}

// Movie returns details, top cast and trailer for one id. Credits and
// videos are best effort; details are required.
func (s *Service) Movie(ctx context.Context, id int) (*Movie, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if s.cache != nil {
		if m, ok := s.cache.GetMovie(id); ok {
			return m, nil
		}
	}

	details, err := s.source.MovieDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	m := &Movie{
		ID:          details.ID,
		Title:       details.Title,
		Overview:    details.Overview,
		ReleaseDate: details.ReleaseDate,
		Rating:      details.VoteAverage,
		VoteCount:   details.VoteCount,
		Runtime:     details.Runtime,
		PosterURL:   s.source.PosterURL(details.PosterPath),
		IMDbURL:     details.IMDbURL(),
	}
	if m.ID == 0 {
		m.ID = id
	}
	for _, g := range details.Genres {
		m.Genres = append(m.Genres, g.Name)
	}

	log := logging.Ctx(ctx)
	if credits, err := s.source.MovieCredits(ctx, id); err != nil {
		log.Debug().Err(err).Int("tmdb_id", id).Msg("Credits unavailable")
	} else {
		m.Cast = credits.TopCast(topCastSize)
	}
	if videos, err := s.source.MovieVideos(ctx, id); err != nil {
		log.Debug().Err(err).Int("tmdb_id", id).Msg("Videos unavailable")
	} else {
		m.TrailerURL = TrailerURL(videos)
	}

	if s.cache != nil {
		if err := s.cache.SetMovie(id, m); err != nil {
			log.Warn().Err(err).Int("tmdb_id", id).Msg("Metadata cache write failed")
		}
	}
	return m, nil
}

// Enrich looks up every id it can. Ids that are invalid, unknown upstream
// or fail to fetch are left out of the result and logged. Duplicates are
// fetched once. The returned map is keyed by the ids as given.
func (s *Service) Enrich(ctx context.Context, movieIDs []string) map[string]*Movie {
	out := make(map[string]*Movie, len(movieIDs))
	if !s.Enabled() || len(movieIDs) == 0 {
		return out
	}

	log := logging.Ctx(ctx)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	seen := make(map[string]struct{}, len(movieIDs))
	for _, raw := range movieIDs {
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}

		id, err := ParseID(raw)
		if err != nil {
			log.Debug().Str("movie_id", raw).Msg("Skipping enrichment for non-TMDB id")
			continue
		}

		g.Go(func() error {
			m, err := s.Movie(gctx, id)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					log.Debug().Int("tmdb_id", id).Msg("Movie not found upstream")
				} else {
					log.Warn().Err(err).Int("tmdb_id", id).Msg("Enrichment failed")
				}
				return nil
			}
			mu.Lock()
			out[raw] = m
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// castNames returns the billed cast of id, from the cache when possible.
func (s *Service) castNames(ctx context.Context, id int) ([]string, error) {
	if s.cache != nil {
		if names, ok := s.cache.GetCastNames(id); ok {
			return names, nil
		}
	}
	credits, err := s.source.MovieCredits(ctx, id)
	if err != nil {
		return nil, err
	}
	names := credits.TopCast(len(credits.Cast))
	if s.cache != nil {
		if err := s.cache.SetCastNames(id, names); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Int("tmdb_id", id).Msg("Credits cache write failed")
		}
	}
	return names, nil
}

// MoviesWithCast returns the movie ids whose cast includes a member whose
// name contains name, compared case-insensitively. Matches keep the order
// of movieIDs and duplicates are reported once.
//
// Ids that are not TMDB ids, unknown upstream or fail to fetch are skipped.
// If every fetch fails the first failure is returned. If ctx ends first the
// matches found so far are returned with ctx.Err().
func (s *Service) MoviesWithCast(ctx context.Context, name string, movieIDs []string) ([]string, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" || len(movieIDs) == 0 {
		return nil, nil
	}

	log := logging.Ctx(ctx)
	matched := make([]bool, len(movieIDs))
	var (
		mu       sync.Mutex
		attempts int
		failures int
		firstErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	seen := make(map[string]struct{}, len(movieIDs))
	for pos, raw := range movieIDs {
		if gctx.Err() != nil {
			break
		}
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}

		id, err := ParseID(raw)
		if err != nil {
			continue
		}
		attempts++

		g.Go(func() error {
			names, err := s.castNames(gctx, id)
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				if errors.Is(err, ErrNotFound) {
					log.Debug().Int("tmdb_id", id).Msg("Credits not found upstream")
					return nil
				}
				log.Warn().Err(err).Int("tmdb_id", id).Msg("Credits lookup failed")
				mu.Lock()
				failures++
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return nil
			}
			for _, n := range names {
				if strings.Contains(strings.ToLower(n), needle) {
					mu.Lock()
					matched[pos] = true
					mu.Unlock()
					break
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0)
	for pos, ok := range matched {
		if ok {
			out = append(out, movieIDs[pos])
		}
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	if attempts > 0 && failures == attempts {
		return nil, firstErr
	}
	return out, nil
}

// Trending returns the weekly trending list, cached for up to an hour.
func (s *Service) Trending(ctx context.Context) ([]TrendingMovie, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}
	if s.cache != nil {
		if list, ok := s.cache.GetTrending(); ok {
			return list, nil
		}
	}
	list, err := s.source.TrendingMovies(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetTrending(list); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Trending cache write failed")
		}
	}
	return list, nil
}
