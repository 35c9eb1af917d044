package types

// WeatherReport is the normalized merge of a current-conditions reading and a
// multi-day forecast. Temperatures are in the provider's configured units
// (imperial by default). ForecastDays preserves the upstream forecast order;
// the first entry conventionally covers the current/nearest day.
type WeatherReport struct {
	Temperature    float64       `json:"temperature"`
	TemperatureMin float64       `json:"temperatureMin"`
	TemperatureMax float64       `json:"temperatureMax"`
	Description    string        `json:"description"`
	ObservedAt     int64         `json:"observedAt"` // epoch seconds of the current reading
	ForecastDays   []DayForecast `json:"forecastDays"`
}

// DayForecast is a single day's entry in the forecast list.
type DayForecast struct {
	Date           int64   `json:"date"` // epoch seconds
	Temperature    float64 `json:"temperature"`
	TemperatureMin float64 `json:"temperatureMin"`
	TemperatureMax float64 `json:"temperatureMax"`
	Description    string  `json:"description"`
}

// FutureDays returns the forecast entries after the first one, which covers
// the current day. Useful for presentation layers that only want days ahead.
func (w WeatherReport) FutureDays() []DayForecast {
	if len(w.ForecastDays) <= 1 {
		return nil
	}
	return w.ForecastDays[1:]
}
