package health

import "city-weather/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
