package external

// GeocodingResult represents a single location record from the geocoding search API
type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Population  int64   `json:"population"`
}

// GeocodingSearchResponse represents the response from the geocoding search API
type GeocodingSearchResponse struct {
	Results []GeocodingResult `json:"results"`
}

// CurrentWeatherDTO represents the current conditions block of the forecast API
type CurrentWeatherDTO struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
	Time          string  `json:"time"`
}

// HourlySeriesDTO represents the hourly auxiliary series of the forecast API.
// Index 0 of each series is aligned to the current hour.
type HourlySeriesDTO struct {
	Time                []string  `json:"time"`
	ApparentTemperature []float64 `json:"apparent_temperature"`
	RelativeHumidity    []float64 `json:"relative_humidity_2m"`
	SurfacePressure     []float64 `json:"surface_pressure"`
	Visibility          []float64 `json:"visibility"`
}

// ForecastResponse represents the response from the forecast API
type ForecastResponse struct {
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	CurrentWeather *CurrentWeatherDTO `json:"current_weather"`
	Hourly         *HourlySeriesDTO   `json:"hourly"`
}

// APIErrorResponse represents error responses from the Open-Meteo APIs
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
