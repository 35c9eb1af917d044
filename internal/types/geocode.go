package types

// Geocode is the normalized result of resolving a free-text address into
// coordinates plus administrative identifiers. Latitude and longitude are
// always present; a candidate without coordinates is a resolution failure,
// never a Geocode.
type Geocode struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"countryCode,omitempty"` // lowercase ISO-3166 alpha-2 when present
	PostalCode  string  `json:"postalCode,omitempty"`
	FullAddress string  `json:"fullAddress"`
}
