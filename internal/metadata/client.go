// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/metrics"
)

// DefaultImageBaseURL serves w500 posters.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"

// Source is what the service needs from an upstream. Client and
// BreakerClient both implement it.
type Source interface {
	MovieDetails(ctx context.Context, id int) (*Details, error)
	MovieCredits(ctx context.Context, id int) (*Credits, error)
	MovieVideos(ctx context.Context, id int) ([]Video, error)
	TrendingMovies(ctx context.Context) ([]TrendingMovie, error)
	PosterURL(path string) string
}

// Client talks to the TMDB v3 REST API.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithImageBaseURL sets the prefix used to build poster URLs.
func WithImageBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.imageBaseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithRateLimit caps outbound requests. rps <= 0 disables the limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New constructs a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key required", ErrNotConfigured)
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("metadata: base url required")
	}
	c := &Client{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: DefaultImageBaseURL,
		language:     language,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PosterURL joins a TMDB poster path onto the image base. Empty in, empty out.
func (c *Client) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.imageBaseURL + path
}

// MovieDetails fetches /movie/{id}.
func (c *Client) MovieDetails(ctx context.Context, id int) (*Details, error) {
	var out Details
	if err := c.get(ctx, "details", fmt.Sprintf("/movie/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieCredits fetches /movie/{id}/credits.
func (c *Client) MovieCredits(ctx context.Context, id int) (*Credits, error) {
	var out Credits
	if err := c.get(ctx, "credits", fmt.Sprintf("/movie/%d/credits", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieVideos fetches /movie/{id}/videos.
func (c *Client) MovieVideos(ctx context.Context, id int) ([]Video, error) {
	var out struct {
		Results []Video `json:"results"`
	}
	if err := c.get(ctx, "videos", fmt.Sprintf("/movie/%d/videos", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// TrendingMovies fetches the first page of /trending/movie/week.
func (c *Client) TrendingMovies(ctx context.Context) ([]TrendingMovie, error) {
	var out struct {
		Results []TrendingMovie `json:"results"`
	}
	if err := c.get(ctx, "trending", "/trending/movie/week", nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Results {
		out.Results[i].PosterURL = c.PosterURL(out.Results[i].PosterPath)
	}
	return out.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	endpointURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpointURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordMetadataRequest(endpoint, "error", time.Since(start))
		return fmt.Errorf("tmdb %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RecordMetadataRequest(endpoint, "not_found", time.Since(start))
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		metrics.RecordMetadataRequest(endpoint, "error", time.Since(start))
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tmdb %s: status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordMetadataRequest(endpoint, "error", time.Since(start))
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	metrics.RecordMetadataRequest(endpoint, "success", time.Since(start))

	logging.Debug().
		Str("endpoint", endpoint).
		Dur("latency", time.Since(start)).
		Msg("TMDB request complete")
	return nil
}
