package cache

const (
	geocodePrefix = "geocode/"
	weatherPrefix = "weather/"
)

// GeocodeKey builds the cache key for a resolved address. The key is built
// from the effective address the orchestrator queries with, not the raw
// request input.
func GeocodeKey(address string) string {
	return geocodePrefix + address
}

// WeatherKey builds the cache key for a weather report, scoped by country
// code and postal code. Callers must not build a key without a postal code;
// a missing postal code means the location is too coarse to dedupe safely.
func WeatherKey(countryCode, postalCode string) string {
	return weatherPrefix + countryCode + "/" + postalCode
}
