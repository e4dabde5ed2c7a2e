package controller

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/usecase/weather"
	"city-weather/pkg/log"
	"city-weather/pkg/msg"
	"city-weather/pkg/util/numberutils"
)

// maxCandidateCount bounds the count override accepted on the JSON endpoint.
const maxCandidateCount = 10

type WeatherController struct {
	root           *echo.Group
	api            *echo.Group
	useCase        weather.UseCase
	candidateCount int
}

// pageData is the template payload for the search page. Flash carries the
// user-facing error text for the current render, empty when there is none.
type pageData struct {
	City    string
	Weather *model.WeatherReport
	Flash   string
}

func NewWeatherController(root *echo.Group, api *echo.Group, useCase weather.UseCase, candidateCount int) *WeatherController {
	return &WeatherController{root: root, api: api, useCase: useCase, candidateCount: candidateCount}
}

// InitWeatherRoutes initializes the page and API weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.root.GET("/", controller.ShowSearchPage)
	controller.root.POST("/", controller.SubmitSearch)
	controller.api.GET("/weather", controller.LookupWeather)
}

// ShowSearchPage renders the empty search form.
func (controller *WeatherController) ShowSearchPage(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{})
}

// SubmitSearch handles the form submission and renders the result on the same
// page: a populated report card, a not-found message, or a generic error.
func (controller *WeatherController) SubmitSearch(c echo.Context) error {
	var dto model.WeatherSearchDTO
	if err := c.Bind(&dto); err != nil {
		return c.Render(http.StatusOK, "index.html", pageData{Flash: msg.GetMessage("weather.invalid-city")})
	}
	dto.City = strings.TrimSpace(dto.City)

	if err := c.Validate(&dto); err != nil {
		return c.Render(http.StatusOK, "index.html", pageData{City: dto.City, Flash: msg.GetMessage("weather.invalid-city")})
	}

	requestID := uuid.NewString()
	report, err := controller.useCase.Lookup(c.Request().Context(), requestID, dto.City, controller.candidateCount)
	if err != nil {
		return c.Render(http.StatusOK, "index.html", pageData{City: dto.City, Flash: flashForError(requestID, dto.City, err)})
	}

	return c.Render(http.StatusOK, "index.html", pageData{City: dto.City, Weather: report})
}

// LookupWeather godoc
// @Summary Look up current weather for a city
// @Description Geocode a city name, pick the best matching location and return its current conditions
// @Tags weather
// @Accept json
// @Produce json
// @Param city query string true "City name"
// @Param count query int false "Number of geocoder candidates to consider (1-10)" default(5)
// @Success 200 {object} model.WeatherReport "Current weather report"
// @Failure 400 {object} map[string]string "Invalid city name"
// @Failure 404 {object} map[string]string "No matching location"
// @Failure 502 {object} map[string]string "Weather provider error"
// @Router /api/weather [get]
func (controller *WeatherController) LookupWeather(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if utf8.RuneCountInString(city) < 2 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.invalid-city")})
	}

	count := numberutils.ClampInt(
		numberutils.ToIntWithDefault(c.QueryParam("count"), controller.candidateCount),
		1, maxCandidateCount)

	requestID := uuid.NewString()
	report, err := controller.useCase.Lookup(c.Request().Context(), requestID, city, count)
	if err != nil {
		if errors.Is(err, model.ErrNoMatch) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("weather.not-found", city)})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": flashForError(requestID, city, err)})
	}

	return c.JSON(http.StatusOK, report)
}

// flashForError collapses lookup failures to the three user-facing outcomes.
// Internal detail goes to the log, never to the user.
func flashForError(requestID string, city string, err error) string {
	switch {
	case errors.Is(err, model.ErrNoMatch):
		return msg.GetMessage("weather.not-found", city)
	case errors.Is(err, model.ErrProviderAuth):
		log.Error("Provider rejected credentials",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Error(err))
		return msg.GetMessage("weather.auth-error")
	default:
		log.Error("Weather lookup failed",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Error(err))
		return msg.GetMessage("weather.service-error")
	}
}
