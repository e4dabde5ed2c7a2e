package weather

// codeInfo is the display triple for one WMO weather code: human-readable
// description, coarse category, and OpenWeatherMap-convention icon id.
type codeInfo struct {
	description string
	main        string
	icon        string
}

// defaultCodeInfo is returned for codes absent from the table.
var defaultCodeInfo = codeInfo{description: "Unknown", main: "Unknown", icon: "01d"}

// weatherCodes maps WMO interpretation codes to their display triples.
// The icon ids follow the OpenWeatherMap naming used by the icon assets.
var weatherCodes = map[int]codeInfo{
	0:  {"Clear sky", "Clear", "01d"},
	1:  {"Mainly clear", "Clouds", "02d"},
	2:  {"Partly cloudy", "Clouds", "03d"},
	3:  {"Overcast", "Clouds", "04d"},
	45: {"Fog", "Fog", "50d"},
	48: {"Depositing rime fog", "Fog", "50d"},
	51: {"Light drizzle", "Drizzle", "09d"},
	53: {"Moderate drizzle", "Drizzle", "09d"},
	55: {"Dense drizzle", "Drizzle", "09d"},
	56: {"Light freezing drizzle", "Drizzle", "09d"},
	57: {"Dense freezing drizzle", "Drizzle", "09d"},
	61: {"Slight rain", "Rain", "10d"},
	63: {"Moderate rain", "Rain", "10d"},
	65: {"Heavy rain", "Rain", "10d"},
	66: {"Light freezing rain", "Rain", "10d"},
	67: {"Heavy freezing rain", "Rain", "10d"},
	71: {"Slight snow fall", "Snow", "13d"},
	73: {"Moderate snow fall", "Snow", "13d"},
	75: {"Heavy snow fall", "Snow", "13d"},
	77: {"Snow grains", "Snow", "13d"},
	80: {"Slight rain showers", "Rain", "09d"},
	81: {"Moderate rain showers", "Rain", "09d"},
	82: {"Violent rain showers", "Rain", "09d"},
	85: {"Slight snow showers", "Snow", "13d"},
	86: {"Heavy snow showers", "Snow", "13d"},
	95: {"Thunderstorm", "Thunderstorm", "11d"},
	96: {"Thunderstorm with slight hail", "Thunderstorm", "11d"},
	99: {"Thunderstorm with heavy hail", "Thunderstorm", "11d"},
}

// lookupWeatherCode resolves a numeric weather code to its display triple.
// The lookup is total; unrecognized codes get the default triple.
func lookupWeatherCode(code int) codeInfo {
	if info, ok := weatherCodes[code]; ok {
		return info
	}
	return defaultCodeInfo
}
