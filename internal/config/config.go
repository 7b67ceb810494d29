// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package config

import "time"

// Config is the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Metadata MetadataConfig `koanf:"metadata"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`          // read/write timeout
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // graceful drain
}

// CatalogConfig locates the artifact and sets recommendation defaults.
type CatalogConfig struct {
	ArtifactPath string `koanf:"artifact_path"`
	KidsGenre    string `koanf:"kids_genre"`    // child-safe tag for the kids profile
	DefaultLimit int    `koanf:"default_limit"` // used when a request omits limit
	MaxLimit     int    `koanf:"max_limit"`
}

// MetadataConfig configures TMDB enrichment. Enrichment is optional; with no
// API key the API serves recommendations without posters or details.
type MetadataConfig struct {
	Enabled           bool          `koanf:"enabled"`
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	Language          string        `koanf:"language"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	MaxConcurrency    int           `koanf:"max_concurrency"` // batch enrichment fan-out
	CachePath         string        `koanf:"cache_path"`      // empty keeps the cache in memory
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	GCInterval        time.Duration `koanf:"gc_interval"` // badger value log GC
}

// Active reports whether enrichment should be wired.
func (m MetadataConfig) Active() bool {
	return m.Enabled && m.APIKey != ""
}

// SecurityConfig holds browser-facing protections.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
