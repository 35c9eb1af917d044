package openweather

// ConditionSummary is the short textual condition block both endpoints share.
type ConditionSummary struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// CurrentConditions is the response of the current-weather endpoint.
type CurrentConditions struct {
	Main struct {
		Temp    float64 `json:"temp"`
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []ConditionSummary `json:"weather"`
	Dt      int64              `json:"dt"`
	Name    string             `json:"name"`
}

// DailyForecast is the response of the daily-forecast endpoint. List holds
// one entry per requested day, in provider order.
type DailyForecast struct {
	List []ForecastDay `json:"list"`
}

// ForecastDay is a single day in the daily forecast list.
type ForecastDay struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Day float64 `json:"day"`
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Weather []ConditionSummary `json:"weather"`
}

// errorBody is OpenWeatherMap's failure shape; cod is a string on errors.
type errorBody struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
