// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package config loads NextBinge configuration with Koanf v2.
//
// Sources are layered, later layers winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/nextbinge/config.yaml
//  3. Environment variables, mapped explicitly (HTTP_PORT -> server.port)
//
// A .env file in the working directory (or at $DOTENV_PATH) is read into the
// process environment before layer 3; variables already set are not
// overwritten.
//
// # Environment Variables
//
//	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
//	ARTIFACT_PATH, KIDS_GENRE, DEFAULT_LIMIT, MAX_LIMIT
//	TMDB_ENABLED, TMDB_API_KEY, TMDB_BASE_URL, TMDB_LANGUAGE, TMDB_TIMEOUT,
//	TMDB_REQUESTS_PER_SECOND, TMDB_BURST, TMDB_MAX_CONCURRENCY,
//	METADATA_CACHE_PATH, METADATA_CACHE_TTL, METADATA_CACHE_GC_INTERVAL
//	CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Unknown variables are ignored so the environment cannot inject arbitrary keys.
package config
