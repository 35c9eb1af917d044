package openweather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("path = %q, want /data/2.5/weather", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("lat") != "37.33182" || q.Get("lon") != "-122.03118" {
			t.Errorf("coordinates = %q/%q", q.Get("lat"), q.Get("lon"))
		}
		if q.Get("appid") != "test-key" {
			t.Errorf("appid = %q", q.Get("appid"))
		}
		if q.Get("units") != "imperial" {
			t.Errorf("units = %q", q.Get("units"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 72.0, "temp_min": 60.0, "temp_max": 80.0},
			"weather": [{"id": 800, "main": "Clear", "description": "clear sky"}],
			"dt": 1678000000,
			"name": "Cupertino"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "imperial", testLogger())

	conditions, err := client.CurrentWeather(context.Background(), 37.33182, -122.03118)
	if err != nil {
		t.Fatalf("CurrentWeather returned error: %v", err)
	}

	if conditions.Main.Temp != 72.0 || conditions.Main.TempMin != 60.0 || conditions.Main.TempMax != 80.0 {
		t.Errorf("temperatures = %v/%v/%v", conditions.Main.Temp, conditions.Main.TempMin, conditions.Main.TempMax)
	}
	if len(conditions.Weather) != 1 || conditions.Weather[0].Main != "Clear" {
		t.Errorf("weather block = %+v", conditions.Weather)
	}
	if conditions.Dt != 1678000000 {
		t.Errorf("dt = %d, want 1678000000", conditions.Dt)
	}
}

func TestDailyForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/forecast/daily" {
			t.Errorf("path = %q, want /data/2.5/forecast/daily", r.URL.Path)
		}
		if cnt := r.URL.Query().Get("cnt"); cnt != "4" {
			t.Errorf("cnt = %q, want 4", cnt)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"list": [
				{"dt": 1678000000, "temp": {"day": 72.0, "min": 60.0, "max": 80.0}, "weather": [{"main": "Clear"}]},
				{"dt": 1678086400, "temp": {"day": 68.0, "min": 55.0, "max": 74.0}, "weather": [{"main": "Clouds"}]}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "imperial", testLogger())

	forecast, err := client.DailyForecast(context.Background(), 37.33182, -122.03118, 4)
	if err != nil {
		t.Fatalf("DailyForecast returned error: %v", err)
	}

	if len(forecast.List) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(forecast.List))
	}
	if forecast.List[0].Dt != 1678000000 || forecast.List[1].Dt != 1678086400 {
		t.Errorf("list order not preserved: %d, %d", forecast.List[0].Dt, forecast.List[1].Dt)
	}
	if forecast.List[1].Temp.Day != 68.0 {
		t.Errorf("list[1].temp.day = %v, want 68", forecast.List[1].Temp.Day)
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "imperial", testLogger())

	_, err := client.CurrentWeather(context.Background(), 37.33182, -122.03118)
	if err == nil {
		t.Fatal("CurrentWeather returned no error")
	}
	if !strings.Contains(err.Error(), "Invalid API key") {
		t.Errorf("error %q does not carry the upstream message", err)
	}

	_, err = client.DailyForecast(context.Background(), 37.33182, -122.03118, 4)
	if err == nil {
		t.Fatal("DailyForecast returned no error")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q does not carry the status code", err)
	}
}

func TestMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "", testLogger())

	if _, err := client.CurrentWeather(context.Background(), 1, 2); err == nil {
		t.Fatal("CurrentWeather returned no error for a malformed body")
	}
}
