package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Cupertino&format=json&addressdetails=1&limit=1
const (
	baseSearchURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires an identifying User-Agent.
	defaultUserAgent = "forecast-service/1.0"
)

type Client struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewClient creates a Nominatim client. Empty baseURL or userAgent fall back
// to the public endpoint and the service's default agent string.
func NewClient(baseURL, userAgent string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = baseSearchURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)

	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search geocodes a free-text address, requesting at most one candidate with
// the address block expanded. An empty slice means the address matched
// nothing.
func (c *Client) Search(ctx context.Context, address string) ([]Place, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":              address,
			"format":         "json",
			"addressdetails": "1",
			"limit":          "1",
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode(), upstreamError(resp.Body()))
	}

	var places []Place
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("geocode search completed", "address", address, "candidates", len(places))

	return places, nil
}

// upstreamError pulls Nominatim's error field out of a failure body, falling
// back to the raw body when the shape is unexpected.
func upstreamError(body []byte) string {
	var e errorBody
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return string(body)
}
