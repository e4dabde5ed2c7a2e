package weather

import "testing"

func TestLookupWeatherCodeKnown(t *testing.T) {
	tests := []struct {
		code        int
		description string
		main        string
		icon        string
	}{
		{0, "Clear sky", "Clear", "01d"},
		{3, "Overcast", "Clouds", "04d"},
		{45, "Fog", "Fog", "50d"},
		{55, "Dense drizzle", "Drizzle", "09d"},
		{63, "Moderate rain", "Rain", "10d"},
		{75, "Heavy snow fall", "Snow", "13d"},
		{82, "Violent rain showers", "Rain", "09d"},
		{95, "Thunderstorm", "Thunderstorm", "11d"},
		{99, "Thunderstorm with heavy hail", "Thunderstorm", "11d"},
	}

	for _, tt := range tests {
		info := lookupWeatherCode(tt.code)
		if info.description != tt.description || info.main != tt.main || info.icon != tt.icon {
			t.Errorf("code %d: got (%q, %q, %q), want (%q, %q, %q)",
				tt.code, info.description, info.main, info.icon,
				tt.description, tt.main, tt.icon)
		}
	}
}

// TestLookupWeatherCodeTotal verifies the lookup never misses: unknown codes
// resolve to the default triple.
func TestLookupWeatherCodeTotal(t *testing.T) {
	for _, code := range []int{-1, 4, 42, 100, 255} {
		info := lookupWeatherCode(code)
		if info != defaultCodeInfo {
			t.Errorf("code %d: expected default triple, got %+v", code, info)
		}
	}

	if defaultCodeInfo.description != "Unknown" || defaultCodeInfo.main != "Unknown" || defaultCodeInfo.icon != "01d" {
		t.Fatalf("unexpected default triple: %+v", defaultCodeInfo)
	}
}
