package api

import (
	"context"
	"strconv"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/model/external"
	"city-weather/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseURL string, clientOptions http.ClientOptions) GeocodingGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = newHTTPLogger("geocoder")
	}
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &geocodingGatewayImpl{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Search resolves a city name to at most count candidates in the given language
func (g *geocodingGatewayImpl) Search(ctx context.Context, name string, count int, language string) ([]model.LocationCandidate, error) {
	params := map[string]string{
		"name":     name,
		"count":    strconv.Itoa(count),
		"language": language,
		"format":   "json",
	}

	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(params).
		WithSuccessResp(&external.GeocodingSearchResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classifyCallError("geocoder", status, errResp, err)
	}

	response := successResp.(*external.GeocodingSearchResponse)
	candidates := make([]model.LocationCandidate, 0, len(response.Results))
	for _, result := range response.Results {
		candidates = append(candidates, model.LocationCandidate{
			Name:        result.Name,
			Country:     result.Country,
			CountryCode: result.CountryCode,
			Admin1:      result.Admin1,
			Latitude:    result.Latitude,
			Longitude:   result.Longitude,
			Population:  result.Population,
			FeatureCode: result.FeatureCode,
		})
	}

	return candidates, nil
}

// Health reports the gateway's configuration status
func (g *geocodingGatewayImpl) Health() model.ComponentHealthStatus {
	status := model.StatusUp
	if g.baseURL == "" {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: map[string]string{"endpoint": g.baseURL},
	}
}
