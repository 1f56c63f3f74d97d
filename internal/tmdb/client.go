package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"reelsync/internal/catalog"
)

// Searcher defines the TMDB operations used by the resolver and fetcher.
type Searcher interface {
	Search(ctx context.Context, media catalog.MediaType, query string, year *int) (*SearchResponse, error)
	Details(ctx context.Context, media catalog.MediaType, id int64) (*Details, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search performs a title search scoped to the media type's endpoint. The
// year, when present, is sent under the parameter name the endpoint expects.
// Catalog titles are free text; normalize to NFC so composed and decomposed
// spellings hit the same search results.
func (c *Client) Search(ctx context.Context, media catalog.MediaType, query string, year *int) (*SearchResponse, error) {
	query = norm.NFC.String(strings.TrimSpace(query))
	if query == "" {
		return nil, errors.New("query must not be empty")
	}

	params := url.Values{}
	params.Set("query", query)
	if year != nil {
		params.Set(media.YearParam(), strconv.Itoa(*year))
	}

	var payload SearchResponse
	if err := c.get(ctx, media.SearchPath(), params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	return &payload, nil
}

// Details fetches the full detail record for a resolved identifier with the
// videos and credits sub-resources attached in the same request.
func (c *Client) Details(ctx context.Context, media catalog.MediaType, id int64) (*Details, error) {
	if id <= 0 {
		return nil, errors.New("tmdb id must be positive")
	}

	params := url.Values{}
	params.Set("append_to_response", "videos,credits")

	var payload Details
	if err := c.get(ctx, media.DetailPath(id), params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb details: %w", err)
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
