package weather

import (
	"context"
	"errors"
	"testing"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/model/external"
)

type fakeGeocodingGateway struct {
	candidates []model.LocationCandidate
	err        error
	lastName   string
	lastCount  int
}

func (f *fakeGeocodingGateway) Search(_ context.Context, name string, count int, _ string) ([]model.LocationCandidate, error) {
	f.lastName = name
	f.lastCount = count
	return f.candidates, f.err
}

func (f *fakeGeocodingGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

type fakeForecastGateway struct {
	reading *external.ForecastResponse
	err     error
	lastLat float64
	lastLon float64
	called  bool
}

func (f *fakeForecastGateway) CurrentConditions(_ context.Context, latitude, longitude float64) (*external.ForecastResponse, error) {
	f.called = true
	f.lastLat = latitude
	f.lastLon = longitude
	return f.reading, f.err
}

func (f *fakeForecastGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func TestLookupNoMatch(t *testing.T) {
	geocoder := &fakeGeocodingGateway{}
	provider := &fakeForecastGateway{}
	uc := NewWeatherUseCase("en", geocoder, provider)

	_, err := uc.Lookup(context.Background(), "req-1", "Xyzzyplace123", 5)
	if !errors.Is(err, model.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if provider.called {
		t.Fatal("weather provider must not be called without a selected location")
	}
	if geocoder.lastName != "Xyzzyplace123" || geocoder.lastCount != 5 {
		t.Fatalf("unexpected geocoder call: %q count %d", geocoder.lastName, geocoder.lastCount)
	}
}

func TestLookupTimeoutPropagates(t *testing.T) {
	geocoder := &fakeGeocodingGateway{candidates: []model.LocationCandidate{
		{Name: "London", Latitude: 51.5, Longitude: -0.12, Population: 8000000, FeatureCode: "PPLC"},
	}}
	provider := &fakeForecastGateway{err: model.ErrNetworkTimeout}
	uc := NewWeatherUseCase("en", geocoder, provider)

	report, err := uc.Lookup(context.Background(), "req-2", "London", 5)
	if !errors.Is(err, model.ErrNetworkTimeout) {
		t.Fatalf("expected ErrNetworkTimeout, got %v", err)
	}
	if report != nil {
		t.Fatal("no report must be returned on timeout")
	}
}

func TestLookupSelectsBestCandidateCoordinates(t *testing.T) {
	geocoder := &fakeGeocodingGateway{candidates: []model.LocationCandidate{
		{Name: "Springfield", Latitude: 1, Longitude: 1, Population: 2000, FeatureCode: "P"},
		{Name: "Springfield", Latitude: 39.8, Longitude: -89.6, Population: 150000, FeatureCode: "P", Admin1: "Illinois"},
	}}
	provider := &fakeForecastGateway{reading: &external.ForecastResponse{
		CurrentWeather: &external.CurrentWeatherDTO{Temperature: 10, WeatherCode: 0},
	}}
	uc := NewWeatherUseCase("en", geocoder, provider)

	report, err := uc.Lookup(context.Background(), "req-3", "Springfield", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastLat != 39.8 || provider.lastLon != -89.6 {
		t.Fatalf("weather fetched for wrong coordinates: %v,%v", provider.lastLat, provider.lastLon)
	}
	if report.Region != "Illinois" {
		t.Fatalf("expected the Illinois candidate in the report, got %+v", report)
	}
}

func TestLookupGeocoderFailurePropagates(t *testing.T) {
	geocoder := &fakeGeocodingGateway{err: model.ErrConnectionFailure}
	uc := NewWeatherUseCase("en", geocoder, &fakeForecastGateway{})

	_, err := uc.Lookup(context.Background(), "req-4", "Berlin", 5)
	if !errors.Is(err, model.ErrConnectionFailure) {
		t.Fatalf("expected ErrConnectionFailure, got %v", err)
	}
}

func TestLookupMalformedReading(t *testing.T) {
	geocoder := &fakeGeocodingGateway{candidates: []model.LocationCandidate{
		{Name: "Berlin", Population: 3600000, FeatureCode: "PPLC"},
	}}
	provider := &fakeForecastGateway{reading: &external.ForecastResponse{}}
	uc := NewWeatherUseCase("en", geocoder, provider)

	_, err := uc.Lookup(context.Background(), "req-5", "Berlin", 5)
	if !errors.Is(err, model.ErrMalformedReading) {
		t.Fatalf("expected ErrMalformedReading, got %v", err)
	}
}
