package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forecast-service/internal/forecast"
	"forecast-service/internal/geocode"
	"forecast-service/internal/weather"
)

// forecastLookup is the orchestrator call the handler depends on; narrowed
// for testing with a stub.
type forecastLookup interface {
	Lookup(ctx context.Context, rawAddress string) (*forecast.Result, error)
}

// handleGetForecast godoc
// @Summary Get weather near an address
// @Description Resolve a free-text address to coordinates and return current conditions plus a short-range forecast. A blank address falls back to a default.
// @Tags forecast
// @Produce json
// @Param address query string false "Free-text address" example(10503 N Tantau Ave, Cupertino, CA 95014)
// @Success 200 {object} forecast.Result
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	address := c.Query("address")

	result, err := app.lookupForecast(c, app.orchestrator, address)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, result)
}

// lookupForecast runs the lookup and writes the error response when it
// fails. The two lookup error kinds carry display-ready messages; anything
// else is an internal error.
func (app *App) lookupForecast(c *gin.Context, lookup forecastLookup, address string) (*forecast.Result, error) {
	result, err := lookup.Lookup(c.Request.Context(), address)
	if err == nil {
		return result, nil
	}

	var resolutionErr *geocode.ResolutionError
	var weatherErr *weather.WeatherError

	switch {
	case errors.As(err, &resolutionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": resolutionErr.Message})
	case errors.As(err, &weatherErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": weatherErr.Message})
	default:
		app.logger.Error("forecast lookup failed", "address", address, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forecast"})
	}

	return nil, err
}
