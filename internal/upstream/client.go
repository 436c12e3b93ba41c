package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// API is the subset of the commerce API the catalog service consumes.
type API interface {
	// ListLocations fetches every location in a single call.
	ListLocations(ctx context.Context) ([]Location, error)

	// SearchCatalog fetches one page of ITEM objects with their related
	// objects. An empty cursor requests the first page.
	SearchCatalog(ctx context.Context, cursor string) (*SearchPage, error)
}

// Config holds commerce API client settings.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// Client talks to the commerce API over HTTP.
type Client struct {
	config Config
	client *http.Client
}

// NewClient creates a commerce API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://connect.squareup.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// ListLocations fetches all locations via GET /v2/locations.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var result listLocationsResponse
	if err := c.do(ctx, http.MethodGet, "/v2/locations", nil, &result); err != nil {
		return nil, err
	}
	return result.Locations, nil
}

// SearchCatalog fetches one catalog page via POST /v2/catalog/search,
// requesting item objects with related objects included.
func (c *Client) SearchCatalog(ctx context.Context, cursor string) (*SearchPage, error) {
	reqBody := searchCatalogRequest{
		ObjectTypes:           []string{ObjectTypeItem},
		IncludeRelatedObjects: true,
		Cursor:                cursor,
	}

	var page SearchPage
	if err := c.do(ctx, http.MethodPost, "/v2/catalog/search", reqBody, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// do issues one API call and decodes the response into out. Non-2xx
// responses become errors carrying only the status code; the upstream body
// is logged, never returned.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream marshal %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("upstream request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream http %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("upstream read body %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[Upstream] %s %s returned status %d: %s", method, path, resp.StatusCode, respBody)
		return fmt.Errorf("upstream %s: status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("upstream unmarshal %s: %w", path, err)
	}
	return nil
}
