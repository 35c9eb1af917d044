package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"forecast-service/internal/forecast"
	"forecast-service/internal/geocode"
	"forecast-service/internal/types"
	"forecast-service/internal/weather"
)

type stubLookup struct {
	result *forecast.Result
	err    error
}

func (s *stubLookup) Lookup(_ context.Context, _ string) (*forecast.Result, error) {
	return s.result, s.err
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/forecast?address=Cupertino", nil)
	return c, recorder
}

func testApp() *App {
	return &App{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestLookupForecastSuccess(t *testing.T) {
	c, _ := newTestContext(t)
	expected := &forecast.Result{
		Geocode:         types.Geocode{Latitude: 37.33182, Longitude: -122.03118},
		GeocodeCacheHit: true,
	}

	result, err := testApp().lookupForecast(c, &stubLookup{result: expected}, "Cupertino")
	if err != nil {
		t.Fatalf("lookupForecast returned error: %v", err)
	}
	if result != expected {
		t.Error("lookupForecast did not return the orchestrator result")
	}
}

func TestLookupForecastErrorStatus(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "resolution error",
			err:            &geocode.ResolutionError{Message: "Location not found"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "Location not found",
		},
		{
			name:           "weather error",
			err:            &weather.WeatherError{Message: "Weather API key is missing"},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Weather API key is missing",
		},
		{
			name:           "unexpected error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to get forecast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestContext(t)

			_, err := testApp().lookupForecast(c, &stubLookup{err: tt.err}, "Cupertino")
			if err == nil {
				t.Fatal("lookupForecast returned no error")
			}

			if recorder.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.expectedStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not JSON: %v", err)
			}
			if body["error"] != tt.expectedError {
				t.Errorf("error body = %q, want %q", body["error"], tt.expectedError)
			}
		})
	}
}
