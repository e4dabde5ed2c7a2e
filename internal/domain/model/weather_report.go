package model

// WeatherReport is the normalized display record for current conditions in a city.
// It is only built from a successfully selected location and a successfully
// fetched reading; a report is never partially populated.
type WeatherReport struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Region        string  `json:"region,omitempty"`
	Temperature   int     `json:"temperature"`
	FeelsLike     int     `json:"feelsLike"`
	Description   string  `json:"description"`
	Main          string  `json:"main"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
	Icon          string  `json:"icon"`
	IconURL       string  `json:"iconUrl"`
	Visibility    float64 `json:"visibility"`
}
