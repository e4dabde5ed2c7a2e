package weather

import (
	"context"

	"city-weather/internal/domain/model"
)

type UseCase interface {
	// Lookup resolves a city name to a current weather report.
	// candidateCount bounds how many geocoder candidates are considered.
	// It returns model.ErrNoMatch when the geocoder finds nothing; other
	// failures carry the error kinds declared in the model package.
	Lookup(ctx context.Context, requestID string, city string, candidateCount int) (*model.WeatherReport, error)
}
