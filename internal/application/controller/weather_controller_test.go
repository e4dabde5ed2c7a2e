package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"city-weather/internal/application/view"
	apigateway "city-weather/internal/domain/gateway/api"
	"city-weather/internal/domain/model"
	"city-weather/internal/domain/usecase/health"
	pkghttp "city-weather/pkg/http"
	"city-weather/pkg/msg"
)

func TestMain(m *testing.M) {
	msg.Init("../../../configs/messages.yml")
	os.Exit(m.Run())
}

type fakeWeatherUseCase struct {
	report    *model.WeatherReport
	err       error
	lastCity  string
	lastCount int
}

func (f *fakeWeatherUseCase) Lookup(_ context.Context, _ string, city string, candidateCount int) (*model.WeatherReport, error) {
	f.lastCity = city
	f.lastCount = candidateCount
	return f.report, f.err
}

func newTestEcho(t *testing.T, uc *fakeWeatherUseCase) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = NewCustomValidator()

	renderer, err := view.NewRenderer("../../../web/templates/*.html")
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	root := e.Group("")
	api := root.Group("/api")
	controller := NewWeatherController(root, api, uc, 5)
	controller.InitWeatherRoutes()

	return e
}

func sampleReport() *model.WeatherReport {
	return &model.WeatherReport{
		City:        "Berlin",
		Country:     "Germany",
		Region:      "Berlin",
		Temperature: 16,
		FeelsLike:   13,
		Description: "Moderate Rain",
		Main:        "Rain",
		Humidity:    82,
		Pressure:    1008,
		WindSpeed:   5.1,
		Icon:        "10d",
		IconURL:     "https://openweathermap.org/img/wn/10d@2x.png",
		Visibility:  24.1,
	}
}

func postForm(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestShowSearchPage(t *testing.T) {
	e := newTestEcho(t, &fakeWeatherUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<form") {
		t.Error("expected the search form in the page")
	}
}

func TestSubmitSearchInvalidCity(t *testing.T) {
	uc := &fakeWeatherUseCase{}
	e := newTestEcho(t, uc)

	rec := postForm(e, "city=x")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please enter a valid city name.") {
		t.Error("expected the invalid city message")
	}
	if uc.lastCity != "" {
		t.Error("lookup must not run for an invalid city")
	}
}

func TestSubmitSearchTrimsWhitespace(t *testing.T) {
	uc := &fakeWeatherUseCase{report: sampleReport()}
	e := newTestEcho(t, uc)

	rec := postForm(e, "city=++Berlin++")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if uc.lastCity != "Berlin" {
		t.Errorf("expected trimmed city, got %q", uc.lastCity)
	}
}

func TestSubmitSearchRendersReport(t *testing.T) {
	e := newTestEcho(t, &fakeWeatherUseCase{report: sampleReport()})

	rec := postForm(e, "city=Berlin")
	body := rec.Body.String()
	if !strings.Contains(body, "Berlin") || !strings.Contains(body, "Moderate Rain") {
		t.Error("expected the report card on the page")
	}
	if !strings.Contains(body, "16") {
		t.Error("expected the temperature on the page")
	}
}

func TestSubmitSearchNotFound(t *testing.T) {
	e := newTestEcho(t, &fakeWeatherUseCase{err: model.ErrNoMatch})

	rec := postForm(e, "city=Xyzzyplace123")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Could not find weather data") {
		t.Error("expected the not-found message")
	}
}

func TestSubmitSearchServiceError(t *testing.T) {
	e := newTestEcho(t, &fakeWeatherUseCase{err: model.ErrNetworkTimeout})

	rec := postForm(e, "city=Berlin")
	if !strings.Contains(rec.Body.String(), "Please try again later.") {
		t.Error("expected the generic service error message")
	}
}

func TestLookupWeatherJSON(t *testing.T) {
	e := newTestEcho(t, &fakeWeatherUseCase{report: sampleReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Berlin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report model.WeatherReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if report.City != "Berlin" || report.Temperature != 16 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestLookupWeatherJSONStatuses(t *testing.T) {
	tests := []struct {
		name   string
		target string
		uc     *fakeWeatherUseCase
		status int
	}{
		{"missing city", "/api/weather", &fakeWeatherUseCase{}, http.StatusBadRequest},
		{"short city", "/api/weather?city=x", &fakeWeatherUseCase{}, http.StatusBadRequest},
		{"single rune city", "/api/weather?city=%E4%BA%AC", &fakeWeatherUseCase{}, http.StatusBadRequest},
		{"two rune city", "/api/weather?city=%E8%A5%BF%E5%AE%89", &fakeWeatherUseCase{report: sampleReport()}, http.StatusOK},
		{"no match", "/api/weather?city=Nowhere", &fakeWeatherUseCase{err: model.ErrNoMatch}, http.StatusNotFound},
		{"provider error", "/api/weather?city=Berlin", &fakeWeatherUseCase{err: &model.ProviderHTTPError{Provider: "weather", Status: 500}}, http.StatusBadGateway},
		{"auth error", "/api/weather?city=Berlin", &fakeWeatherUseCase{err: model.ErrProviderAuth}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, tt.uc)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestLookupWeatherCountClamped(t *testing.T) {
	uc := &fakeWeatherUseCase{report: sampleReport()}
	e := newTestEcho(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Berlin&count=50", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if uc.lastCount != maxCandidateCount {
		t.Errorf("expected count clamped to %d, got %d", maxCandidateCount, uc.lastCount)
	}
}

func TestCheckHealth(t *testing.T) {
	geocodingGateway := apigateway.NewGeocodingGateway("https://geocoding.example", pkghttp.ClientOptions{})
	forecastGateway := apigateway.NewForecastGateway("https://forecast.example", "", pkghttp.ClientOptions{})
	healthUseCase := health.NewHealthUseCase(geocodingGateway, forecastGateway)

	e := echo.New()
	root := e.Group("")
	controller := NewHealthController(root, healthUseCase)
	controller.InitHealthRoutes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var response model.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if response.Status != model.StatusUp {
		t.Errorf("expected UP, got %s", response.Status)
	}
	if response.Geocoder.Details["endpoint"] != "https://geocoding.example" {
		t.Errorf("unexpected geocoder details: %+v", response.Geocoder)
	}
}
