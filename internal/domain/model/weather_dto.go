package model

// WeatherSearchDTO carries the city lookup input from the form or query string.
type WeatherSearchDTO struct {
	City string `form:"city" query:"city" json:"city" validate:"required,min=2"`
}
