package nominatim

// Place is a single geocoding candidate from the Nominatim search endpoint.
// Coordinates arrive as decimal strings.
type Place struct {
	PlaceID     int64    `json:"place_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	DisplayName string   `json:"display_name"`
	Address     *Address `json:"address"`
}

// Address is the detailed address block returned when addressdetails=1 is
// requested.
type Address struct {
	Road        string `json:"road"`
	City        string `json:"city"`
	County      string `json:"county"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// errorBody is the shape Nominatim uses to report failures.
type errorBody struct {
	Error string `json:"error"`
}
