// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

/*
Package main is the entry point for the NextBinge API server.

NextBinge serves content-based movie recommendations from a precomputed
similarity artifact, optionally enriched with TMDB posters, cast and
trailers.

# Application Architecture

	RootSupervisor ("nextbinge")
	├── DataSupervisor ("data-layer")
	│   └── Metadata cache GC (only with an on-disk cache)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog, json or console
 3. Artifact: the parquet catalog and similarity matrix; any structural
    error is fatal and the server never starts listening
 4. Metadata (optional): TMDB client, circuit breaker, badger cache
 5. HTTP server under the supervisor tree

# Configuration

Common environment variables:

	ARTIFACT_PATH=movie_data.parquet
	HTTP_PORT=8080
	KIDS_GENRE=Animation
	TMDB_API_KEY=...           # enables enrichment
	METADATA_CACHE_PATH=/data/tmdb # on-disk metadata cache
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for SHUTDOWN_TIMEOUT, then the metadata cache
is closed.
*/
package main
