package weather

// Icon categories understood by the front-end.
const (
	IconSun       = "sun"
	IconCloudSun  = "cloud-sun"
	IconCloud     = "cloud"
	IconCloudRain = "cloud-rain"
)

// CodeInfo is the human-facing translation of a WMO weather code.
type CodeInfo struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// wmoCodes maps the WMO code subset reported by Open-Meteo. Read-only
// after init.
var wmoCodes = map[int]CodeInfo{
	0:  {"Clear Sky", IconSun},
	1:  {"Mostly Clear", IconSun},
	2:  {"Partly Cloudy", IconCloudSun},
	3:  {"Overcast", IconCloud},
	45: {"Foggy", IconCloud},
	48: {"Freezing Fog", IconCloud},
	51: {"Light Drizzle", IconCloudRain},
	53: {"Drizzle", IconCloudRain},
	55: {"Heavy Drizzle", IconCloudRain},
	61: {"Light Rain", IconCloudRain},
	63: {"Rain", IconCloudRain},
	65: {"Heavy Rain", IconCloudRain},
	71: {"Light Snow", IconCloud},
	73: {"Snow", IconCloud},
	75: {"Heavy Snow", IconCloud},
	80: {"Rain Showers", IconCloudRain},
	81: {"Heavy Showers", IconCloudRain},
	82: {"Violent Showers", IconCloudRain},
	95: {"Thunderstorm", IconCloudRain},
	96: {"Thunderstorm + Hail", IconCloudRain},
	99: {"Severe Thunderstorm", IconCloudRain},
}

// WeatherInfo translates a WMO weather code to a description and icon.
// Codes outside the table map to "Unknown"/cloud; never fails.
func WeatherInfo(code int) CodeInfo {
	if info, ok := wmoCodes[code]; ok {
		return info
	}
	return CodeInfo{"Unknown", IconCloud}
}
