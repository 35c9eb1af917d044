// Package forecast chains the geocode and weather lookups behind a
// read-through cache and is the single entry point the HTTP layer consumes.
package forecast

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"forecast-service/internal/cache"
	"forecast-service/internal/types"
)

// DefaultAddress is substituted when the caller provides a blank address, so
// a lookup always has a non-empty query string.
const DefaultAddress = "10503 N Tantau Ave, Cupertino, CA 95014"

// GeocodeResolver resolves a free-text address into a Geocode.
type GeocodeResolver interface {
	Resolve(ctx context.Context, address string) (types.Geocode, error)
}

// WeatherFetcher fetches the merged weather report for a coordinate pair.
type WeatherFetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64, days int) (types.WeatherReport, error)
}

// Result is the aggregate outcome of one lookup. The cache-hit flags record
// whether each key already existed before this lookup's read-through.
type Result struct {
	Geocode         types.Geocode       `json:"geocode"`
	GeocodeCacheHit bool                `json:"geocodeCacheHit"`
	Weather         types.WeatherReport `json:"weather"`
	WeatherCacheHit bool                `json:"weatherCacheHit"`
}

// Orchestrator wires the resolver and fetcher together with the cache store.
type Orchestrator struct {
	resolver     GeocodeResolver
	fetcher      WeatherFetcher
	store        cache.Store
	ttl          time.Duration
	forecastDays int
	logger       *slog.Logger
}

// NewOrchestrator creates an orchestrator. ttl <= 0 falls back to
// cache.DefaultTTL; forecastDays <= 0 defers to the fetcher's default.
func NewOrchestrator(
	resolver GeocodeResolver,
	fetcher WeatherFetcher,
	store cache.Store,
	ttl time.Duration,
	forecastDays int,
	logger *slog.Logger,
) *Orchestrator {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Orchestrator{
		resolver:     resolver,
		fetcher:      fetcher,
		store:        store,
		ttl:          ttl,
		forecastDays: forecastDays,
		logger:       logger.With("component", "forecast-orchestrator"),
	}
}

// Lookup resolves rawAddress to a geocode and fetches its weather, reading
// through the cache on both steps. Resolver and fetcher failures propagate
// unchanged; weather is never fetched after a failed geocode. Only successes
// are cached, so a failed lookup retries upstream next time.
func (o *Orchestrator) Lookup(ctx context.Context, rawAddress string) (*Result, error) {
	address := strings.TrimSpace(rawAddress)
	if address == "" {
		address = DefaultAddress
	}

	result := &Result{}

	geocodeKey := cache.GeocodeKey(address)
	result.GeocodeCacheHit = o.exists(ctx, geocodeKey)

	geocode, err := o.fetchGeocode(ctx, geocodeKey, address)
	if err != nil {
		return nil, err
	}
	result.Geocode = geocode

	// A missing postal code is too coarse to dedupe safely, so those lookups
	// bypass the cache entirely.
	if geocode.PostalCode == "" {
		weather, err := o.fetcher.Fetch(ctx, geocode.Latitude, geocode.Longitude, o.forecastDays)
		if err != nil {
			return nil, err
		}
		result.Weather = weather
		return result, nil
	}

	weatherKey := cache.WeatherKey(geocode.CountryCode, geocode.PostalCode)
	result.WeatherCacheHit = o.exists(ctx, weatherKey)

	weather, err := o.fetchWeather(ctx, weatherKey, geocode)
	if err != nil {
		return nil, err
	}
	result.Weather = weather

	return result, nil
}

func (o *Orchestrator) fetchGeocode(ctx context.Context, key, address string) (types.Geocode, error) {
	var cached types.Geocode
	if o.get(ctx, key, &cached) {
		return cached, nil
	}

	geocode, err := o.resolver.Resolve(ctx, address)
	if err != nil {
		return types.Geocode{}, err
	}

	o.set(ctx, key, geocode)
	return geocode, nil
}

func (o *Orchestrator) fetchWeather(ctx context.Context, key string, geocode types.Geocode) (types.WeatherReport, error) {
	var cached types.WeatherReport
	if o.get(ctx, key, &cached) {
		return cached, nil
	}

	weather, err := o.fetcher.Fetch(ctx, geocode.Latitude, geocode.Longitude, o.forecastDays)
	if err != nil {
		return types.WeatherReport{}, err
	}

	o.set(ctx, key, weather)
	return weather, nil
}

// exists records the pre-fetch cache-hit flag. Store errors are logged and
// reported as a miss; cache trouble never fails a lookup.
func (o *Orchestrator) exists(ctx context.Context, key string) bool {
	found, err := o.store.Exists(ctx, key)
	if err != nil {
		o.logger.Warn("cache exists check failed", "key", key, "error", err)
		return false
	}
	return found
}

// get reads and unmarshals a cached value into out, treating store and
// decode errors as misses.
func (o *Orchestrator) get(ctx context.Context, key string, out any) bool {
	value, found, err := o.store.Get(ctx, key)
	if err != nil {
		o.logger.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(value, out); err != nil {
		o.logger.Warn("cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// set marshals and stores a successful lookup. Store errors are logged; the
// lookup result is returned regardless.
func (o *Orchestrator) set(ctx context.Context, key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		o.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := o.store.Set(ctx, key, encoded, o.ttl); err != nil {
		o.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
