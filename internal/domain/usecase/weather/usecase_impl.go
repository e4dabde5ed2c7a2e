package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"city-weather/internal/domain/gateway/api"
	"city-weather/internal/domain/model"
	"city-weather/pkg/log"
)

type weatherUseCase struct {
	language        string
	geocodingGw     api.GeocodingGateway
	forecastGateway api.ForecastGateway
}

func NewWeatherUseCase(language string, geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway) UseCase {
	return &weatherUseCase{
		language:        language,
		geocodingGw:     geocodingGateway,
		forecastGateway: forecastGateway,
	}
}

// Lookup resolves a city name to a current weather report: geocode the name,
// select the best candidate, fetch conditions for its coordinates, format.
// The two outbound calls run sequentially; nothing is retried.
func (uc *weatherUseCase) Lookup(ctx context.Context, requestID string, city string, candidateCount int) (*model.WeatherReport, error) {
	candidates, err := uc.geocodingGw.Search(ctx, city, candidateCount, uc.language)
	if err != nil {
		return nil, fmt.Errorf("city search failed: %w", err)
	}

	if len(candidates) == 0 {
		log.Info("No geocoding results",
			zap.String("request_id", requestID),
			zap.String("city", city))
		return nil, model.ErrNoMatch
	}

	selected, ok := selectCandidate(candidates)
	if !ok {
		return nil, model.ErrNoMatch
	}

	log.Info("Selected location",
		zap.String("request_id", requestID),
		zap.String("city", selected.Name),
		zap.String("country", selected.CountryCode),
		zap.String("region", selected.Admin1),
		zap.Int64("population", selected.Population),
		zap.Int("candidates", len(candidates)))

	reading, err := uc.forecastGateway.CurrentConditions(ctx, selected.Latitude, selected.Longitude)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed for %s: %w", selected.Name, err)
	}

	report, err := buildReport(selected, reading)
	if err != nil {
		return nil, err
	}

	log.Info("Weather report built",
		zap.String("request_id", requestID),
		zap.String("city", report.City),
		zap.Int("temperature", report.Temperature),
		zap.String("conditions", report.Main))

	return report, nil
}
