package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
)

// Client fetches JSON payloads from the upstream mock API
type Client interface {
	// Fetch issues one GET to baseURL+endpoint and decodes the JSON body
	Fetch(ctx context.Context, endpoint string) (any, error)

	// Stores fetches the raw store list payload
	Stores(ctx context.Context) (any, error)

	// StoreByID fetches one store's raw payload
	StoreByID(ctx context.Context, storeID string) (any, error)

	// StoreOrders fetches one store's raw order list payload
	StoreOrders(ctx context.Context, storeID string) (any, error)
}

type MockAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	return &MockAPIClient{
		httpClient: &http.Client{
			Timeout: cfg.MockAPI.Timeout(),
		},
		baseURL: cfg.MockAPI.BaseURL,
	}
}

func (c *MockAPIClient) Fetch(ctx context.Context, endpoint string) (any, error) {
	target, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing upstream base URL")
	}
	target.Path = path.Join(target.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building upstream request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamUnavailableError{URL: target.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &UpstreamStatusError{Status: resp.StatusCode, URL: target.String()}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamFormatError{URL: target.String(), Err: err}
	}

	return payload, nil
}

func (c *MockAPIClient) Stores(ctx context.Context) (any, error) {
	return c.Fetch(ctx, "/api/stores")
}

func (c *MockAPIClient) StoreByID(ctx context.Context, storeID string) (any, error) {
	return c.Fetch(ctx, fmt.Sprintf("/api/stores/%s", storeID))
}

func (c *MockAPIClient) StoreOrders(ctx context.Context, storeID string) (any, error) {
	return c.Fetch(ctx, fmt.Sprintf("/api/stores/%s/orders", storeID))
}
