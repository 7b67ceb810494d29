// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package main

import (
	"github.com/tomtom215/nextbinge/internal/config"
	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/metadata"
)

// initMetadata wires TMDB enrichment. It returns a nil service when
// enrichment is off or cannot start; recommendations work either way.
func initMetadata(cfg *config.MetadataConfig) (*metadata.Service, *metadata.Cache) {
	if !cfg.Active() {
		logging.Info().Msg("TMDB enrichment disabled (set TMDB_API_KEY to enable)")
		return nil, nil
	}

	client, err := metadata.New(cfg.APIKey, cfg.BaseURL, cfg.Language,
		metadata.WithTimeout(cfg.Timeout),
		metadata.WithImageBaseURL(cfg.ImageBaseURL),
		metadata.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst),
	)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create TMDB client; enrichment disabled")
		return nil, nil
	}

	cache, err := metadata.OpenCache(cfg.CachePath, cfg.CacheTTL)
	if err != nil {
		logging.Error().Err(err).Str("path", cfg.CachePath).Msg("Failed to open metadata cache; enrichment disabled")
		return nil, nil
	}

	svc := metadata.NewService(metadata.NewBreakerClient(client), cache, cfg.MaxConcurrency)
	logging.Info().
		Str("base_url", cfg.BaseURL).
		Str("cache_path", cfg.CachePath).
		Dur("cache_ttl", cfg.CacheTTL).
		Float64("rps", cfg.RequestsPerSecond).
		Msg("TMDB enrichment enabled")
	return svc, cache
}
