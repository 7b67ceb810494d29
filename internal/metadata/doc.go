// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package metadata enriches catalog movies with TMDB details: overview,
// rating, runtime, poster, top cast and trailer link.
//
// Enrichment sits outside the recommender. A recommendation never waits on
// TMDB; the API asks for metadata only when a caller opts in.
//
// # Layers
//
//	Service       batch lookup, cache first, bounded fan-out for misses
//	  Cache       badger store keyed by movie id, per-entry TTL
//	  BreakerClient
//	    Client    REST calls, shared outbound rate limiter
//
// A failed lookup inside Enrich degrades to "no details" for that id and is
// logged; the batch itself still succeeds. Movie and Trending return the
// error so the API can map it to a status code:
//
//	ErrNotFound                  404
//	ErrNotConfigured             503
//	gobreaker.ErrOpenState       503
//	anything else                502
//
// # Usage
//
//	client, err := metadata.New(cfg.APIKey, cfg.BaseURL, cfg.Language,
//	    metadata.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst))
//	cache, err := metadata.OpenCache(cfg.CachePath, cfg.CacheTTL)
//	svc := metadata.NewService(metadata.NewBreakerClient(client), cache, cfg.MaxConcurrency)
//	details := svc.Enrich(ctx, []string{"862", "8587"})
package metadata
