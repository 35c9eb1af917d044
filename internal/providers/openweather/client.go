package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// API Docs: https://openweathermap.org/current and https://openweathermap.org/forecast16
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=37.33&lon=-122.03&appid=KEY&units=imperial
const (
	baseWeatherURL = "https://api.openweathermap.org"

	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast/daily"

	defaultUnits = "imperial"
)

type Client struct {
	httpClient *resty.Client
	apiKey     string
	units      string
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. Empty baseURL or units fall
// back to the public endpoint and imperial units.
func NewClient(baseURL, apiKey, units string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = baseWeatherURL
	}
	if units == "" {
		units = defaultUnits
	}
	return &Client{
		httpClient: resty.New().SetBaseURL(baseURL),
		apiKey:     apiKey,
		units:      units,
		logger:     logger.With("component", "openweather-client"),
	}
}

// CurrentWeather fetches current conditions for a coordinate pair.
func (c *Client) CurrentWeather(ctx context.Context, latitude, longitude float64) (*CurrentConditions, error) {
	var conditions CurrentConditions
	if err := c.get(ctx, currentPath, latitude, longitude, nil, &conditions); err != nil {
		return nil, err
	}
	return &conditions, nil
}

// DailyForecast fetches the multi-day forecast for a coordinate pair, bounded
// to days entries.
func (c *Client) DailyForecast(ctx context.Context, latitude, longitude float64, days int) (*DailyForecast, error) {
	extra := map[string]string{"cnt": strconv.Itoa(days)}

	var forecast DailyForecast
	if err := c.get(ctx, forecastPath, latitude, longitude, extra, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (c *Client) get(ctx context.Context, path string, latitude, longitude float64, extra map[string]string, out any) error {
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(latitude, 'f', -1, 64),
			"lon":   strconv.FormatFloat(longitude, 'f', -1, 64),
			"appid": c.apiKey,
			"units": c.units,
		}).
		SetQueryParams(extra)

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode(), upstreamError(resp.Body()))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("weather fetch completed", "path", path, "lat", latitude, "lon", longitude)

	return nil
}

// upstreamError pulls OpenWeatherMap's message field out of a failure body,
// falling back to the raw body when the shape is unexpected.
func upstreamError(body []byte) string {
	var e errorBody
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(body)
}
