package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the public known-good-versions document with
	// per-platform download URLs.
	DefaultEndpoint = "https://googlechromelabs.github.io/chrome-for-testing/known-good-versions-with-downloads.json"

	// fetchTimeout bounds the catalog request. There are no retries; a
	// failed fetch is fatal to the run.
	fetchTimeout = 30 * time.Second

	userAgent = "drivermatch/1.0"
)

// Client fetches the version catalog over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a catalog client for the given endpoint. An empty
// endpoint selects DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		endpoint:   endpoint,
	}
}

// Fetch retrieves and decodes the catalog. Any transport, status, or decode
// failure propagates to the caller; there is no partial or degraded
// catalog.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status code: %d", resp.StatusCode)
	}

	var catalog Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return &catalog, nil
}
