// Package geocode resolves free-text addresses into normalized Geocode
// records. It is cache-agnostic: callers layer memoization on top.
package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"forecast-service/internal/providers/nominatim"
	"forecast-service/internal/types"
)

// SearchProvider fetches geocoding candidates for a free-text address.
type SearchProvider interface {
	Search(ctx context.Context, address string) ([]nominatim.Place, error)
}

// Service resolves addresses into Geocode records.
type Service interface {
	// Resolve turns an address into a Geocode, failing with *ResolutionError
	// when no usable candidate exists.
	Resolve(ctx context.Context, address string) (types.Geocode, error)
}

type geocodeService struct {
	provider SearchProvider
	logger   *slog.Logger
}

// NewService creates a geocode service backed by the public Nominatim
// endpoint.
func NewService(baseURL, userAgent string, logger *slog.Logger) Service {
	return NewServiceWithProvider(nominatim.NewClient(baseURL, userAgent, logger), logger)
}

// NewServiceWithProvider creates a geocode service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider SearchProvider, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

// Resolve queries the provider for at most one candidate and validates it
// into a Geocode. Every failure mode is a *ResolutionError; the upstream
// error text is preserved when the provider call itself fails.
func (s *geocodeService) Resolve(ctx context.Context, address string) (types.Geocode, error) {
	places, err := s.provider.Search(ctx, address)
	if err != nil {
		s.logger.Error("geocode fetch failed", "address", address, "error", err)
		return types.Geocode{}, newResolutionError(fmt.Sprintf("Error fetching geocode: %v", err))
	}

	if len(places) == 0 {
		return types.Geocode{}, newResolutionError("Location not found")
	}

	place := places[0]
	if place.Lat == "" || place.Lon == "" || place.Address == nil {
		return types.Geocode{}, newResolutionError("Missing coordinates")
	}
	if place.Address.CountryCode == "" {
		return types.Geocode{}, newResolutionError("Missing country code")
	}

	latitude, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return types.Geocode{}, newResolutionError("Missing coordinates")
	}
	longitude, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return types.Geocode{}, newResolutionError("Missing coordinates")
	}

	geocode := types.Geocode{
		Latitude:    latitude,
		Longitude:   longitude,
		CountryCode: strings.ToLower(place.Address.CountryCode),
		PostalCode:  place.Address.Postcode,
		FullAddress: place.DisplayName,
	}

	s.logger.Debug("resolved address",
		"address", address,
		"latitude", geocode.Latitude,
		"longitude", geocode.Longitude,
		"country_code", geocode.CountryCode,
	)

	return geocode, nil
}
