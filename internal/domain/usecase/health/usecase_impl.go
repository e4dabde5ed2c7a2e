package health

import (
	"city-weather/internal/domain/gateway/api"
	"city-weather/internal/domain/model"
	"city-weather/pkg/msg"
)

type healthUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
}

func NewHealthUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway) UseCase {
	return &healthUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	geocoderHealth := useCase.geocodingGateway.Health()
	providerHealth := useCase.forecastGateway.Health()

	overallStatus := model.StatusUp
	message := msg.GetMessage("health.up")
	if geocoderHealth.Status != model.StatusUp || providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
		message = msg.GetMessage("health.down")
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Message:  message,
		Geocoder: geocoderHealth,
		Provider: providerHealth,
	}
}
