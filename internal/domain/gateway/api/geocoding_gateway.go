package api

import (
	"context"

	"city-weather/internal/domain/model"
)

// GeocodingGateway defines the interface for resolving a free-text city name
// to a ranked list of candidate locations.
type GeocodingGateway interface {
	// Search resolves a city name to at most count candidates in the given language.
	// The returned slice preserves the geocoder's ranking order.
	Search(ctx context.Context, name string, count int, language string) ([]model.LocationCandidate, error)

	// Health reports the gateway's configuration status.
	Health() model.ComponentHealthStatus
}
