package api

import (
	"context"
	"strconv"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/model/external"
	"city-weather/pkg/http"
)

// hourlySeries lists the auxiliary series fetched alongside current conditions.
const hourlySeries = "apparent_temperature,relative_humidity_2m,surface_pressure,visibility"

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client.
// apiKey may be empty; the public endpoint is keyless.
func NewForecastGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) ForecastGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = newHTTPLogger("weather")
	}
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &forecastGatewayImpl{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// CurrentConditions fetches current conditions plus the current-hour auxiliary series
func (f *forecastGatewayImpl) CurrentConditions(ctx context.Context, latitude, longitude float64) (*external.ForecastResponse, error) {
	params := map[string]string{
		"latitude":        strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude":       strconv.FormatFloat(longitude, 'f', -1, 64),
		"current_weather": "true",
		"hourly":          hourlySeries,
		// Aligns index 0 of every hourly series to the current hour.
		"forecast_hours": "1",
	}
	if f.apiKey != "" {
		params["apikey"] = f.apiKey
	}

	successResp, errResp, status, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classifyCallError("weather", status, errResp, err)
	}

	return successResp.(*external.ForecastResponse), nil
}

// Health reports the gateway's configuration status
func (f *forecastGatewayImpl) Health() model.ComponentHealthStatus {
	status := model.StatusUp
	if f.baseURL == "" {
		status = model.StatusDown
	}
	details := map[string]string{"endpoint": f.baseURL}
	if f.apiKey != "" {
		details["auth"] = "api-key"
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
