// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/metrics"
)

const breakerName = "tmdb-api"

// BreakerClient wraps a Source with a circuit breaker so a TMDB outage
// fails fast instead of tying up request goroutines.
//
// The breaker uses real time for its interval and timeout. Tests drive it
// through request outcomes, not the clock.
type BreakerClient struct {
	source Source
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// BreakerSettings tunes the breaker. Zero values take the defaults.
type BreakerSettings struct {
	MaxRequests  uint32        // trial requests allowed while half-open
	Interval     time.Duration // count reset period while closed
	Timeout      time.Duration // open -> half-open delay
	MinRequests  uint32        // requests needed before tripping
	FailureRatio float64       // trip threshold
}

// DefaultBreakerSettings: 3 half-open trial requests, 1 minute window, 2 minute
// cool-down, trips at a 60% failure rate over at least 10 requests.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// NewBreakerClient wraps source with the default settings.
func NewBreakerClient(source Source) *BreakerClient {
	return NewBreakerClientWithSettings(source, DefaultBreakerSettings())
}

// NewBreakerClientWithSettings wraps source with custom settings.
func NewBreakerClientWithSettings(source Source, s BreakerSettings) *BreakerClient {
	def := DefaultBreakerSettings()
	if s.MaxRequests == 0 {
		s.MaxRequests = def.MaxRequests
	}
	if s.Interval <= 0 {
		s.Interval = def.Interval
	}
	if s.Timeout <= 0 {
		s.Timeout = def.Timeout
	}
	if s.MinRequests == 0 {
		s.MinRequests = def.MinRequests
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = def.FailureRatio
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A missing movie is a valid answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerClient{source: source, cb: cb, name: breakerName}
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

// IsOpen reports whether err came from a breaker rejection.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func (b *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if IsOpen(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// PosterURL needs no upstream call.
func (b *BreakerClient) PosterURL(path string) string {
	return b.source.PosterURL(path)
}

// MovieDetails fetches details with breaker protection.
func (b *BreakerClient) MovieDetails(ctx context.Context, id int) (*Details, error) {
	return castResult[Details](b.execute(func() (interface{}, error) {
		return b.source.MovieDetails(ctx, id)
	}))
}

// MovieCredits fetches credits with breaker protection.
func (b *BreakerClient) MovieCredits(ctx context.Context, id int) (*Credits, error) {
	return castResult[Credits](b.execute(func() (interface{}, error) {
		return b.source.MovieCredits(ctx, id)
	}))
}

// MovieVideos fetches videos with breaker protection.
func (b *BreakerClient) MovieVideos(ctx context.Context, id int) ([]Video, error) {
	videos, err := castResult[[]Video](b.execute(func() (interface{}, error) {
		v, err := b.source.MovieVideos(ctx, id)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}))
	if err != nil {
		return nil, err
	}
	return *videos, nil
}

// TrendingMovies fetches trending titles with breaker protection.
func (b *BreakerClient) TrendingMovies(ctx context.Context) ([]TrendingMovie, error) {
	movies, err := castResult[[]TrendingMovie](b.execute(func() (interface{}, error) {
		m, err := b.source.TrendingMovies(ctx)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}))
	if err != nil {
		return nil, err
	}
	return *movies, nil
}
