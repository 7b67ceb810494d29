// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

/*
Package api provides the HTTP REST API for NextBinge.

The API is a thin presentation layer over the recommender. Every handler
reads the immutable catalog, so no handler takes a lock.

Endpoints (all under /api/v1):

  - health/live, health/ready: liveness and readiness
  - recommendations: ranked similar movies by title or movie_id, with an
    optional kids profile and optional TMDB enrichment
  - catalog/genres, catalog/years, catalog/movies, catalog/random: browse
  - catalog/cast: catalog movies whose TMDB cast contains a name
  - movies/{movieID}: TMDB details, top cast and trailer
  - trending: TMDB weekly trending list

GET /metrics serves the Prometheus registry.

Response format:

	{
	  "status": "success",
	  "data": { ... },
	  "metadata": {"timestamp": "...", "query_time_ms": 1, "request_id": "..."}
	}

Errors carry "status": "error" and an error object with a machine-readable
code. A title that is not in the catalog is not an error: the recommendations
endpoint answers 200 with data.status set to "not_found".

Middleware stack (outermost first): request id, real IP, panic recovery,
CORS, rate limiting, security headers, Prometheus metrics.

Usage:

	handler := api.NewHandler(rec, metaSvc, cfg.Catalog)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
*/
package api
