// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/nextbinge/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.ArtifactPath) == "" {
		return fmt.Errorf("ARTIFACT_PATH is required")
	}
	if strings.TrimSpace(c.Catalog.KidsGenre) == "" {
		return fmt.Errorf("KIDS_GENRE must not be empty")
	}
	if c.Catalog.MaxLimit < 1 || c.Catalog.MaxLimit > 1000 {
		return fmt.Errorf("MAX_LIMIT must be between 1 and 1000")
	}
	if c.Catalog.DefaultLimit < 1 || c.Catalog.DefaultLimit > c.Catalog.MaxLimit {
		return fmt.Errorf("DEFAULT_LIMIT must be between 1 and MAX_LIMIT (%d)", c.Catalog.MaxLimit)
	}
	return nil
}

// validateMetadata only checks settings that matter once enrichment is active.
func (c *Config) validateMetadata() error {
	m := c.Metadata
	if !m.Active() {
		return nil
	}
	if err := validateHTTPURL(m.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(m.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if m.RequestsPerSecond <= 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must be positive")
	}
	if m.Burst < 1 {
		return fmt.Errorf("TMDB_BURST must be at least 1")
	}
	if m.MaxConcurrency < 1 || m.MaxConcurrency > 64 {
		return fmt.Errorf("TMDB_MAX_CONCURRENCY must be between 1 and 64")
	}
	if m.CacheTTL < time.Minute {
		return fmt.Errorf("METADATA_CACHE_TTL must be at least 1m")
	}
	if m.GCInterval < time.Minute {
		return fmt.Errorf("METADATA_CACHE_GC_INTERVAL must be at least 1m")
	}
	return nil
}

func validateHTTPURL(rawURL, fieldName string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters", fieldName)
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000")
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
}

// LogConfig converts the logging section for logging.Init.
func (c *Config) LogConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.Caller = c.Logging.Caller
	return lc
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
