package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"reelsync/internal/catalog"
)

// notionVersion pins the Notion API revision the payload shapes were written
// against.
const notionVersion = "2022-06-28"

// Catalog defines the catalog database operations used by the session.
type Catalog interface {
	QueryEntries(ctx context.Context) ([]catalog.Entry, error)
	UpdatePage(ctx context.Context, pageID string, properties map[string]Property) error
}

// Client talks to the Notion API for one configured database.
type Client struct {
	apiKey     string
	baseURL    string
	databaseID string
	mediaType  catalog.MediaType
	pageSize   int
	httpClient *http.Client
}

var _ Catalog = (*Client)(nil)

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

// New creates a Notion client scoped to a single catalog database.
func New(apiKey, baseURL, databaseID string, mediaType catalog.MediaType, pageSize int, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("notion api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("notion base url required")
	}
	databaseID = strings.TrimSpace(databaseID)
	if databaseID == "" {
		return nil, errors.New("notion database id required")
	}
	if pageSize <= 0 {
		pageSize = 100
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		databaseID: databaseID,
		mediaType:  mediaType,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type queryRequest struct {
	Filter   map[string]any `json:"filter"`
	PageSize int            `json:"page_size"`
}

type queryResponse struct {
	Results []queryPage `json:"results"`
}

type queryPage struct {
	ID         string `json:"id"`
	Properties struct {
		Title struct {
			Title []struct {
				PlainText string `json:"plain_text"`
			} `json:"title"`
		} `json:"Title"`
		Year struct {
			Number *int `json:"number"`
		} `json:"Year"`
		Type struct {
			Select *struct {
				Name string `json:"name"`
			} `json:"select"`
		} `json:"Type"`
	} `json:"properties"`
}

// QueryEntries reads catalog rows of the configured media type with a
// non-empty title. Filtering happens server-side; the filter shape is part of
// the wire contract with the database.
func (c *Client) QueryEntries(ctx context.Context) ([]catalog.Entry, error) {
	request := queryRequest{
		Filter: map[string]any{
			"and": []map[string]any{
				{
					"property": "Type",
					"select":   map[string]any{"equals": string(c.mediaType)},
				},
				{
					"property": "Title",
					"title":    map[string]any{"is_not_empty": true},
				},
			},
		},
		PageSize: c.pageSize,
	}

	var payload queryResponse
	path := fmt.Sprintf("databases/%s/query", c.databaseID)
	if err := c.do(ctx, http.MethodPost, path, request, &payload); err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	entries := make([]catalog.Entry, 0, len(payload.Results))
	for _, page := range payload.Results {
		if len(page.Properties.Title.Title) == 0 {
			continue
		}
		typeName := ""
		if page.Properties.Type.Select != nil {
			typeName = page.Properties.Type.Select.Name
		}
		mediaType, err := catalog.ParseMediaType(typeName)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.ID, err)
		}
		entries = append(entries, catalog.Entry{
			ID:        page.ID,
			Title:     page.Properties.Title.Title[0].PlainText,
			Year:      page.Properties.Year.Number,
			MediaType: mediaType,
		})
	}
	return entries, nil
}

type updateRequest struct {
	Properties map[string]Property `json:"properties"`
}

// UpdatePage applies a partial property update to one catalog page. Keys
// absent from the map are left untouched by the API.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]Property) error {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return errors.New("page id required")
	}
	if len(properties) == 0 {
		return errors.New("no properties to update")
	}
	path := fmt.Sprintf("pages/%s", pageID)
	if err := c.do(ctx, http.MethodPatch, path, updateRequest{Properties: properties}, nil); err != nil {
		return fmt.Errorf("update page %s: %w", pageID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notion %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
