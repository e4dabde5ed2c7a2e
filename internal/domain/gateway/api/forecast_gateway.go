package api

import (
	"context"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/model/external"
)

// ForecastGateway defines the interface for fetching current weather conditions
// by coordinates.
type ForecastGateway interface {
	// CurrentConditions fetches current conditions plus the hourly auxiliary
	// series (humidity, pressure, visibility, apparent temperature) aligned so
	// that index 0 of each series is the current hour.
	CurrentConditions(ctx context.Context, latitude, longitude float64) (*external.ForecastResponse, error)

	// Health reports the gateway's configuration status.
	Health() model.ComponentHealthStatus
}
