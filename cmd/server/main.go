// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/nextbinge/internal/api"
	"github.com/tomtom215/nextbinge/internal/artifact"
	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/config"
	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/recommend"
	"github.com/tomtom215/nextbinge/internal/supervisor"
	"github.com/tomtom215/nextbinge/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger still has its defaults here.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LogConfig())
	logging.Info().Msg("Starting NextBinge with supervisor tree")

	// The artifact must load completely before anything serves requests.
	loadStart := time.Now()
	cat, err := artifact.Load(cfg.Catalog.ArtifactPath)
	if err != nil {
		msg := "Failed to load artifact"
		if errors.Is(err, catalog.ErrStructural) {
			msg = "Artifact is structurally invalid"
		}
		logging.Fatal().Err(err).Str("path", cfg.Catalog.ArtifactPath).Msg(msg)
	}
	logging.Info().
		Int("items", cat.Len()).
		Dur("took", time.Since(loadStart)).
		Msg("Artifact loaded")

	rec := recommend.New(cat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	meta, cache := initMetadata(&cfg.Metadata)
	if cache != nil {
		defer func() {
			if err := cache.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing metadata cache")
			}
		}()
		if cfg.Metadata.CachePath != "" {
			tree.AddDataService(services.NewCacheGCService(cache, cfg.Metadata.GCInterval))
		}
	}

	handler := api.NewHandler(rec, meta, cfg.Catalog)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().
		Str("addr", server.Addr).
		Str("kids_genre", cfg.Catalog.KidsGenre).
		Bool("metadata", meta.Enabled()).
		Msg("Server listening")

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}
	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		logging.Warn().Int("count", len(report)).Msg("Some services did not stop in time")
	}
	logging.Info().Msg("Server stopped")
}
