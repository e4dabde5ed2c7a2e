package model

// LocationCandidate is a single geocoder result for a free-text city search.
// Candidates are immutable; one of them is selected and the rest are discarded.
type LocationCandidate struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Admin1      string  `json:"admin1,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Population  int64   `json:"population,omitempty"`
	FeatureCode string  `json:"featureCode,omitempty"`
}
