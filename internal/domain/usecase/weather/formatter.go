package weather

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/model/external"
	"city-weather/pkg/util/numberutils"
)

// iconURLTemplate produces a display URL from an icon code. No network
// validation is performed.
const iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

var titleCaser = cases.Title(language.English)

// buildReport normalizes a raw provider reading into a WeatherReport.
// Wind speed converts from km/h to m/s, visibility from meters to km, both
// rounded to one decimal; temperatures, humidity and pressure round to the
// nearest integer. A reading without a current conditions block fails with
// ErrMalformedReading instead of producing a zero-filled report.
func buildReport(location model.LocationCandidate, reading *external.ForecastResponse) (*model.WeatherReport, error) {
	if reading == nil || reading.CurrentWeather == nil {
		return nil, fmt.Errorf("current conditions missing for %s: %w", location.Name, model.ErrMalformedReading)
	}

	current := reading.CurrentWeather
	info := lookupWeatherCode(current.WeatherCode)

	country := location.Country
	if country == "" {
		country = location.CountryCode
	}

	return &model.WeatherReport{
		City:          location.Name,
		Country:       country,
		Region:        location.Admin1,
		Temperature:   numberutils.RoundToInt(current.Temperature),
		FeelsLike:     numberutils.RoundToInt(currentHourValue(reading, func(h *external.HourlySeriesDTO) []float64 { return h.ApparentTemperature })),
		Description:   titleCaser.String(info.description),
		Main:          info.main,
		Humidity:      numberutils.RoundToInt(currentHourValue(reading, func(h *external.HourlySeriesDTO) []float64 { return h.RelativeHumidity })),
		Pressure:      numberutils.RoundToInt(currentHourValue(reading, func(h *external.HourlySeriesDTO) []float64 { return h.SurfacePressure })),
		WindSpeed:     numberutils.Round1(current.WindSpeed / 3.6),
		WindDirection: numberutils.RoundToInt(current.WindDirection),
		Icon:          info.icon,
		IconURL:       fmt.Sprintf(iconURLTemplate, info.icon),
		Visibility:    numberutils.Round1(currentHourValue(reading, func(h *external.HourlySeriesDTO) []float64 { return h.Visibility }) / 1000),
	}, nil
}

// currentHourValue returns index 0 of an hourly series, the value aligned to
// the current hour, or 0 when the series is absent.
func currentHourValue(reading *external.ForecastResponse, series func(*external.HourlySeriesDTO) []float64) float64 {
	if reading.Hourly == nil {
		return 0
	}
	values := series(reading.Hourly)
	if len(values) == 0 {
		return 0
	}
	return values[0]
}
