package weather

import "fmt"

// AlertLevel is the per-day severity assigned by the classifier.
type AlertLevel string

const (
	LevelNone    AlertLevel = ""
	LevelWarning AlertLevel = "warning"
	LevelDanger  AlertLevel = "danger"
)

// MarshalJSON emits null for LevelNone so consumers see the same
// three-valued field (null/"warning"/"danger") the front-end expects.
func (l AlertLevel) MarshalJSON() ([]byte, error) {
	if l == LevelNone {
		return []byte("null"), nil
	}
	return []byte(`"` + string(l) + `"`), nil
}

// UnmarshalJSON accepts null as LevelNone. Anything that is neither null
// nor a string is an error, so corrupt data surfaces to the caller
// instead of panicking mid-decode.
func (l *AlertLevel) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*l = LevelNone
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid alert level %s", s)
	}
	*l = AlertLevel(s[1 : len(s)-1])
	return nil
}

// WeatherResult aggregates everything the pipeline produces for one fetch.
type WeatherResult struct {
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
	Advisory string            `json:"advisory"`
	Alerts   []Alert           `json:"alerts"`
}

// CurrentConditions is the instantaneous snapshot at the requested location.
type CurrentConditions struct {
	Temperature int    `json:"temperature"` // °C, rounded
	Humidity    int    `json:"humidity"`    // %, rounded
	WindSpeed   int    `json:"windSpeed"`   // km/h, rounded
	RainChance  int    `json:"rainChance"`  // %, 0 when upstream omits it
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ForecastDay is one day of the 5-day outlook. Index 0 is always "Today".
type ForecastDay struct {
	Day         string     `json:"day"`  // "Today" or 3-letter weekday
	Date        string     `json:"date"` // ISO date from upstream
	Temp        string     `json:"temp"` // e.g. "31°C"
	Rain        string     `json:"rain"` // e.g. "40%"
	RainValue   int        `json:"rainValue"`
	Description string     `json:"desc"`
	Icon        string     `json:"icon"`
	Alert       AlertLevel `json:"alert"`
}

// Alert is a discrete, categorized notification for the UI. At most one
// alert per ID is produced per fetch.
type Alert struct {
	ID          string `json:"id"`   // storm, rain, spray-window, humidity
	Type        string `json:"type"` // danger, warning, info
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"` // provenance stamp, e.g. "Tue • MetMalaysia"
}
