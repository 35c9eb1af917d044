// Package weather fetches and merges the two upstream weather datasets for a
// coordinate pair: current conditions and the multi-day forecast.
package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"forecast-service/internal/providers/openweather"
	"forecast-service/internal/types"
)

// DefaultForecastDays is how many forecast entries are requested when the
// caller does not say otherwise.
const DefaultForecastDays = 4

// ConditionsProvider fetches current conditions for a coordinate pair.
type ConditionsProvider interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) (*openweather.CurrentConditions, error)
}

// ForecastProvider fetches the multi-day forecast for a coordinate pair.
type ForecastProvider interface {
	DailyForecast(ctx context.Context, latitude, longitude float64, days int) (*openweather.DailyForecast, error)
}

// Service produces normalized weather reports.
type Service interface {
	// Fetch returns the merged current-and-forecast report for a coordinate
	// pair, failing with *WeatherError. days <= 0 falls back to
	// DefaultForecastDays.
	Fetch(ctx context.Context, latitude, longitude float64, days int) (types.WeatherReport, error)
}

type weatherService struct {
	conditionsProvider ConditionsProvider
	forecastProvider   ForecastProvider
	apiKey             string
	timeout            time.Duration
	logger             *slog.Logger
}

// NewService creates a weather service backed by OpenWeatherMap. timeout
// bounds the two concurrent upstream calls together; zero means no shared
// deadline beyond what the HTTP client enforces.
func NewService(baseURL, apiKey, units string, timeout time.Duration, logger *slog.Logger) Service {
	client := openweather.NewClient(baseURL, apiKey, units, logger)
	return NewServiceWithProviders(client, client, apiKey, timeout, logger)
}

// NewServiceWithProviders creates a weather service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	conditionsProvider ConditionsProvider,
	forecastProvider ForecastProvider,
	apiKey string,
	timeout time.Duration,
	logger *slog.Logger,
) Service {
	return &weatherService{
		conditionsProvider: conditionsProvider,
		forecastProvider:   forecastProvider,
		apiKey:             apiKey,
		timeout:            timeout,
		logger:             logger.With("component", "weather-service"),
	}
}

// Fetch launches the current-conditions and forecast calls concurrently and
// joins on both. A failure in either branch cancels the other and fails the
// whole fetch; there is no partial-success merge.
func (s *weatherService) Fetch(ctx context.Context, latitude, longitude float64, days int) (types.WeatherReport, error) {
	if days <= 0 {
		days = DefaultForecastDays
	}

	if s.apiKey == "" {
		return types.WeatherReport{}, newWeatherError("Weather API key is missing")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		current  *openweather.CurrentConditions
		forecast *openweather.DailyForecast
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.conditionsProvider.CurrentWeather(ctx, latitude, longitude)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = s.forecastProvider.DailyForecast(ctx, latitude, longitude, days)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("weather fetch failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.WeatherReport{}, newWeatherError(fmt.Sprintf("Error fetching weather data: %v", err))
	}

	if current == nil || len(current.Weather) == 0 {
		return types.WeatherReport{}, newWeatherError("Invalid weather response")
	}

	return mergeReport(current, forecast), nil
}

// mergeReport combines the two upstream payloads into one report. The
// current-conditions block is authoritative for the top-level fields; the
// forecast list is appended in upstream order, never re-sorted.
func mergeReport(current *openweather.CurrentConditions, forecast *openweather.DailyForecast) types.WeatherReport {
	report := types.WeatherReport{
		Temperature:    current.Main.Temp,
		TemperatureMin: current.Main.TempMin,
		TemperatureMax: current.Main.TempMax,
		Description:    current.Weather[0].Main,
		ObservedAt:     current.Dt,
	}

	if forecast == nil {
		return report
	}

	report.ForecastDays = make([]types.DayForecast, 0, len(forecast.List))
	for _, day := range forecast.List {
		entry := types.DayForecast{
			Date:           day.Dt,
			Temperature:    day.Temp.Day,
			TemperatureMin: day.Temp.Min,
			TemperatureMax: day.Temp.Max,
		}
		if len(day.Weather) > 0 {
			entry.Description = day.Weather[0].Main
		}
		report.ForecastDays = append(report.ForecastDays, entry)
	}

	return report
}
