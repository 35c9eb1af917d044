package weather

// WeatherError reports that weather data could not be obtained or is
// malformed. Message is intended for direct display.
type WeatherError struct {
	Message string
}

func (e *WeatherError) Error() string {
	return e.Message
}

func newWeatherError(message string) *WeatherError {
	return &WeatherError{Message: message}
}
