// Package availability queries the streaming directory for provider
// catalogs, title identities, and per-title offers.
package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultContentURL = "https://apis.justwatch.com/content"
	defaultGraphQLURL = "https://apis.justwatch.com/graphql"

	defaultSearchLimit = 4

	// The directory returns 403 for requests without a browser User-Agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/111.0.0.0 Safari/537.36"
)

// Sentinel errors for directory responses.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited: too many requests")
)

// Client talks to the availability directory. Construct with New, resolve a
// locale, then call SetLocale before any search or offer query.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
	contentURL string
	graphqlURL string

	language string
	country  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the REST and GraphQL endpoints (for testing).
func WithBaseURLs(contentURL, graphqlURL string) Option {
	return func(c *Client) {
		c.contentURL = strings.TrimRight(contentURL, "/")
		c.graphqlURL = graphqlURL
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
		c.log = log.With("component", "availability")
	}
}

// New creates a directory client with the default en_US locale.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		contentURL: defaultContentURL,
		graphqlURL: defaultGraphQLURL,
		language:   "en",
		country:    "US",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLocale switches the client to a full locale of the form language_COUNTRY.
func (c *Client) SetLocale(full string) error {
	language, country, ok := strings.Cut(full, "_")
	if !ok || language == "" || country == "" {
		return fmt.Errorf("malformed locale %q", full)
	}
	c.language = language
	c.country = country
	return nil
}

// Locale returns the full locale the client is currently using.
func (c *Client) Locale() string {
	return c.language + "_" + c.country
}

// Locales lists the markets the directory serves.
func (c *Client) Locales(ctx context.Context) ([]Locale, error) {
	var locales []Locale
	if err := c.getJSON(ctx, "/locales/state", &locales); err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}

// Providers lists the provider catalog for the client's locale.
func (c *Client) Providers(ctx context.Context) ([]Provider, error) {
	var providers []Provider
	if err := c.getJSON(ctx, "/providers/locale/"+c.Locale(), &providers); err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return providers, nil
}

// SearchMovies searches movie titles in the directory's popularity order.
func (c *Client) SearchMovies(ctx context.Context, title string, opts SearchOptions) ([]SearchResult, error) {
	return c.search(ctx, title, TypeMovie, opts)
}

// SearchShows searches show titles in the directory's popularity order.
func (c *Client) SearchShows(ctx context.Context, title string, opts SearchOptions) ([]SearchResult, error) {
	return c.search(ctx, title, TypeShow, opts)
}

func (c *Client) search(ctx context.Context, title string, objectType ObjectType, opts SearchOptions) ([]SearchResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	filter := map[string]any{
		"searchQuery": title,
		"objectTypes": []ObjectType{objectType},
	}
	if opts.Year != nil {
		filter["releaseYear"] = map[string]int{"min": *opts.Year, "max": *opts.Year}
	}
	if len(opts.Providers) > 0 {
		filter["packages"] = opts.Providers
	}
	if opts.FlatrateOnly {
		filter["monetizationTypes"] = []MonetizationType{MonetizationFlatrate}
	}

	variables := map[string]any{
		"first":              limit,
		"searchTitlesFilter": filter,
		"language":           c.language,
		"country":            c.country,
	}

	var resp struct {
		PopularTitles struct {
			Edges []struct {
				Node searchNode `json:"node"`
			} `json:"edges"`
		} `json:"popularTitles"`
	}
	if err := c.graphql(ctx, "GetSearchTitles", searchQuery, variables, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}

	results := make([]SearchResult, 0, len(resp.PopularTitles.Edges))
	for _, edge := range resp.PopularTitles.Edges {
		results = append(results, edge.Node.toSearchResult())
	}

	if c.log != nil {
		c.log.Debug("title search", "title", title, "type", objectType, "results", len(results))
	}
	return results, nil
}

// MovieOffers fetches the current offers for a movie identity.
func (c *Client) MovieOffers(ctx context.Context, id string, providers []string, flatrateOnly bool) (MovieOffers, error) {
	var resp struct {
		Node struct {
			Offers []offerNode `json:"offers"`
		} `json:"node"`
	}
	if err := c.offers(ctx, id, providers, flatrateOnly, &resp); err != nil {
		return nil, fmt.Errorf("movie offers %s: %w", id, err)
	}

	result := make(MovieOffers, 0, len(resp.Node.Offers))
	for _, o := range resp.Node.Offers {
		result = append(result, o.toOffer())
	}
	return result, nil
}

// ShowOffers fetches the season/episode offer tree for a show identity.
func (c *Client) ShowOffers(ctx context.Context, id string, providers []string, flatrateOnly bool) (ShowOffers, error) {
	var resp struct {
		Node struct {
			Seasons []struct {
				Content struct {
					SeasonNumber int `json:"seasonNumber"`
				} `json:"content"`
				Episodes []struct {
					Content struct {
						EpisodeNumber int `json:"episodeNumber"`
					} `json:"content"`
					Offers []offerNode `json:"offers"`
				} `json:"episodes"`
			} `json:"seasons"`
		} `json:"node"`
	}
	if err := c.offers(ctx, id, providers, flatrateOnly, &resp); err != nil {
		return nil, fmt.Errorf("show offers %s: %w", id, err)
	}

	result := make(ShowOffers, len(resp.Node.Seasons))
	for _, season := range resp.Node.Seasons {
		episodes := make(map[int][]Offer, len(season.Episodes))
		for _, ep := range season.Episodes {
			offers := make([]Offer, 0, len(ep.Offers))
			for _, o := range ep.Offers {
				offers = append(offers, o.toOffer())
			}
			episodes[ep.Content.EpisodeNumber] = offers
		}
		result[season.Content.SeasonNumber] = episodes
	}
	return result, nil
}

func (c *Client) offers(ctx context.Context, id string, providers []string, flatrateOnly bool, out any) error {
	filter := map[string]any{"bestOnly": true}
	if flatrateOnly {
		filter["monetizationTypes"] = []MonetizationType{MonetizationFlatrate}
	}
	if len(providers) > 0 {
		filter["packages"] = providers
	}

	variables := map[string]any{
		"nodeId":      id,
		"language":    c.language,
		"country":     c.country,
		"offerFilter": filter,
	}
	return c.graphql(ctx, "GetTitleOffers", offersQuery, variables, out)
}

// wire types

type searchNode struct {
	ID         string     `json:"id"`
	ObjectType ObjectType `json:"objectType"`
	Content    struct {
		Title               string `json:"title"`
		OriginalReleaseYear int    `json:"originalReleaseYear"`
		ExternalIDs         struct {
			IMDBID string      `json:"imdbId"`
			TMDBID json.Number `json:"tmdbId"`
		} `json:"externalIds"`
	} `json:"content"`
}

func (n searchNode) toSearchResult() SearchResult {
	result := SearchResult{
		ID:         n.ID,
		ObjectType: n.ObjectType,
		Title:      n.Content.Title,
		Year:       n.Content.OriginalReleaseYear,
		IMDBID:     n.Content.ExternalIDs.IMDBID,
	}
	if raw := n.Content.ExternalIDs.TMDBID.String(); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			result.TMDBID = &id
		}
	}
	return result
}

type offerNode struct {
	MonetizationType  MonetizationType `json:"monetizationType"`
	PresentationType  string           `json:"presentationType"`
	SubtitleLanguages []string         `json:"subtitleLanguages"`
	AudioLanguages    []string         `json:"audioLanguages"`
	Package           struct {
		PackageID     int    `json:"packageId"`
		ClearName     string `json:"clearName"`
		ShortName     string `json:"shortName"`
		TechnicalName string `json:"technicalName"`
	} `json:"package"`
}

func (n offerNode) toOffer() Offer {
	return Offer{
		MonetizationType:  n.MonetizationType,
		PresentationType:  n.PresentationType,
		ProviderID:        n.Package.PackageID,
		ClearName:         n.Package.ClearName,
		ShortName:         n.Package.ShortName,
		TechnicalName:     n.Package.TechnicalName,
		SubtitleLanguages: n.SubtitleLanguages,
		AudioLanguages:    n.AudioLanguages,
	}
}

// transport

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) graphql(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"operationName": operation,
		"query":         query,
		"variables":     variables,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%s: %s", operation, envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", operation, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("directory error: %s", resp.Status)
	}
}
