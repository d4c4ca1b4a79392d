// Package tmdb bridges TVDB ids to TMDB ids via the TMDB find endpoint. It
// exists only as a fallback for series whose availability identity cannot be
// matched by IMDB id.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound     = errors.New("no TMDB match")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a minimal TMDB API v3 client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// New creates a TMDB client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindByTVDBID resolves a TVDB series id to its TMDB id. Returns ErrNotFound
// when TMDB has no record for the id.
func (c *Client) FindByTVDBID(ctx context.Context, tvdbID int) (int, error) {
	query := url.Values{
		"api_key":         []string{c.apiKey},
		"external_source": []string{"tvdb_id"},
	}
	endpoint := fmt.Sprintf("%s/find/%d?%s", c.baseURL, tvdbID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return 0, ErrUnauthorized
	case http.StatusNotFound:
		return 0, ErrNotFound
	case http.StatusTooManyRequests:
		return 0, ErrRateLimited
	default:
		return 0, fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	var findResp struct {
		TVResults []struct {
			ID int `json:"id"`
		} `json:"tv_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&findResp); err != nil {
		return 0, fmt.Errorf("decode find response: %w", err)
	}

	if len(findResp.TVResults) == 0 {
		if c.log != nil {
			c.log.Debug("no TMDB match", "tvdb_id", tvdbID)
		}
		return 0, ErrNotFound
	}

	tmdbID := findResp.TVResults[0].ID
	if c.log != nil {
		c.log.Debug("bridged external id", "tvdb_id", tvdbID, "tmdb_id", tmdbID)
	}
	return tmdbID, nil
}
