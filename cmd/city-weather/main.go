package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "city-weather/configs"
	_ "city-weather/docs"
	"city-weather/internal/application/controller"
	"city-weather/internal/application/middleware"
	"city-weather/internal/application/view"
	apigateway "city-weather/internal/domain/gateway/api"
	"city-weather/internal/domain/usecase/health"
	"city-weather/internal/domain/usecase/weather"
	pkghttp "city-weather/pkg/http"
	"city-weather/pkg/log"
	"city-weather/pkg/msg"
	"city-weather/pkg/resource"
)

// @title City Weather API
// @version 1.0
// @description Current weather lookup by city name, backed by the Open-Meteo geocoding and forecast APIs.
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)
	e.Validator = controller.NewCustomValidator()

	renderer, err := view.NewRenderer("web/templates/*.html")
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	root := e.Group(resource.GetString("app.server.context-path"))
	apiGroup := root.Group("/api")

	// Init Gateways
	geocodingGateway := apigateway.NewGeocodingGateway(
		resource.GetString("app.geocoder.base-url"),
		pkghttp.ClientOptions{
			ReadTimeout:       resource.GetDuration("app.geocoder.read-timeout"),
			ConnectionTimeout: resource.GetDuration("app.geocoder.connection-timeout"),
		})
	forecastGateway := apigateway.NewForecastGateway(
		resource.GetString("app.provider.base-url"),
		resource.GetString("app.provider.api-key"),
		pkghttp.ClientOptions{
			ReadTimeout:       resource.GetDuration("app.provider.read-timeout"),
			ConnectionTimeout: resource.GetDuration("app.provider.connection-timeout"),
		})

	// Init UseCases
	weatherUseCase := weather.NewWeatherUseCase(
		resource.GetString("app.geocoder.language"),
		geocodingGateway,
		forecastGateway)
	healthUseCase := health.NewHealthUseCase(geocodingGateway, forecastGateway)

	// Init Controllers
	weatherController := controller.NewWeatherController(
		root, apiGroup, weatherUseCase, resource.GetInt("app.geocoder.candidate-count"))
	healthController := controller.NewHealthController(root, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()
	root.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server
	log.Info(msg.GetMessage("app.started", resource.GetString("app.server.port")))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
