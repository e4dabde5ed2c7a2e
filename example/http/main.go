package main

import (
	"context"
	"time"

	"city-weather/pkg/http"
	"city-weather/pkg/log"
)

type GeocodingResult struct {
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Admin1     string  `json:"admin1"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int64   `json:"population"`
}

type GeocodingSearchResponse struct {
	Results []GeocodingResult `json:"results"`
}

type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}

type ForecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := http.ClientOptions{
		FollowRedirect:     true,
		Dismiss404:         false,
		DefaultContentType: "application/json",
		ReadTimeout:        10 * time.Second,
		ConnectionTimeout:  10 * time.Second,
	}

	// Geocoding lookup
	geocoder := http.NewHttpClient("https://geocoding-api.open-meteo.com", clientOptions)

	queryParams := map[string]string{
		"name":     "Berlin",
		"count":    "5",
		"language": "en",
		"format":   "json",
	}

	success, failure, status, err := geocoder.Get(ctx, "/v1/search", queryParams, nil, &GeocodingSearchResponse{}, &APIErrorResponse{})

	if err != nil {
		log.Errorw("Geocoding Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Geocoding Request Success", "status", status, "body", success)
	}

	// Current conditions using the Request builder
	forecast := http.NewHttpClient("https://api.open-meteo.com", clientOptions)

	requestSuccess, requestFailure, requestStatus, requestErr := forecast.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(map[string]string{
			"latitude":        "52.52437",
			"longitude":       "13.41053",
			"current_weather": "true",
		}).
		WithSuccessResp(&ForecastResponse{}).
		WithErrorResp(&APIErrorResponse{}).
		Execute()

	if requestErr != nil {
		log.Errorw("Forecast Request Error", "status", requestStatus, "error", requestErr, "body", requestFailure)
	} else {
		log.Infow("Forecast Request Success", "status", requestStatus, "body", requestSuccess)
	}

	// Error Request: an invalid latitude makes the provider answer with its error payload
	badSuccess, badFailure, badStatus, badErr := forecast.Get(ctx, "/v1/forecast",
		map[string]string{"latitude": "not-a-number", "longitude": "13.41053", "current_weather": "true"},
		nil, &ForecastResponse{}, &APIErrorResponse{})

	if badErr != nil {
		log.Errorw("Forecast Request Error", "status", badStatus, "error", badErr, "body", badFailure)
	} else {
		log.Infow("Forecast Request Success", "status", badStatus, "body", badSuccess)
	}

	// Example: text/plain endpoint
	textClient := http.NewHttpClient("https://geocoding-api.open-meteo.com", http.ClientOptions{DefaultContentType: "text/plain"})
	var textResponse string
	textSuccess, textFailure, textStatus, textErr := textClient.Get(ctx, "/robots.txt", nil, nil, &textResponse, nil)
	if textErr != nil {
		log.Errorw("Text Request Error", "status", textStatus, "error", textErr, "body", textFailure)
	} else {
		log.Infow("Text Request Success", "status", textStatus, "body", textSuccess)
	}
}
