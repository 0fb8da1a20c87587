package weather

import (
	"fmt"
	"strings"
)

// Classification thresholds. These are the policy cut points the rest of
// the pipeline is tuned around; changing them changes every downstream
// alert and advisory.
const (
	dangerCode  = 95 // thunderstorm codes
	dangerRain  = 80 // % precipitation probability
	warningCode = 61 // rain codes
	warningRain = 60
)

// ClassifyAlertLevel assigns a severity to a forecast day from its max
// precipitation probability and WMO weather code. Danger takes precedence
// over warning; most days are LevelNone.
func ClassifyAlertLevel(rainProbability, weatherCode int) AlertLevel {
	if weatherCode >= dangerCode || rainProbability >= dangerRain {
		return LevelDanger
	}
	if weatherCode >= warningCode || rainProbability >= warningRain {
		return LevelWarning
	}
	return LevelNone
}

// GenerateAdvisory produces the free-text farming advisory for a
// classified forecast window.
func GenerateAdvisory(forecast []ForecastDay) string {
	var rainy, clear []ForecastDay
	for _, d := range forecast {
		if d.Alert != LevelNone {
			rainy = append(rainy, d)
		} else {
			clear = append(clear, d)
		}
	}

	if len(rainy) == 0 {
		return "Good weather conditions all week. Suitable for spraying, fertilizer application, and harvesting operations."
	}

	var clearNames []string
	for _, d := range clear {
		if d.Day != "Today" {
			clearNames = append(clearNames, d.Day)
		}
	}

	advisory := fmt.Sprintf("Heavy rain expected %s. Consider delaying fertilizer application and pausing tapping operations.", joinDays(rainy))
	if len(clearNames) > 0 {
		advisory += fmt.Sprintf(" Optimal spray window: %s.", strings.Join(clearNames, ", "))
	}
	return advisory
}

// GenerateAlerts builds the ordered alert list for a classified forecast
// window and the current conditions. Emission order is fixed by category:
// storm, rain, spray-window, humidity. Storm suppresses the separate rain
// alert; the humidity alert is independent of the forecast.
func GenerateAlerts(forecast []ForecastDay, current CurrentConditions) []Alert {
	var alerts []Alert

	var stormDays, rainyDays, clearWindow []ForecastDay
	for _, d := range forecast {
		switch d.Alert {
		case LevelDanger:
			stormDays = append(stormDays, d)
		case LevelWarning:
			rainyDays = append(rainyDays, d)
		default:
			if d.Day != "Today" {
				clearWindow = append(clearWindow, d)
			}
		}
	}

	if len(stormDays) > 0 {
		alerts = append(alerts, Alert{
			ID:          "storm",
			Type:        "danger",
			Title:       "Thunderstorm Warning",
			Description: fmt.Sprintf("Heavy rainfall expected %s. Secure loose equipment and check drainage channels.", joinDays(stormDays)),
			Time:        stormDays[0].Day + " • MetMalaysia",
		})
	}

	if len(rainyDays) > 0 && len(stormDays) == 0 {
		alerts = append(alerts, Alert{
			ID:          "rain",
			Type:        "warning",
			Title:       "Heavy Rain Expected",
			Description: fmt.Sprintf("Rain forecast for %s. Delay pesticide spraying for better effectiveness.", joinDays(rainyDays)),
			Time:        rainyDays[0].Day + " • Open-Meteo",
		})
	}

	if len(clearWindow) > 0 {
		alerts = append(alerts, Alert{
			ID:          "spray-window",
			Type:        "info",
			Title:       "Optimal Spray Window",
			Description: fmt.Sprintf("%s: Clear skies expected. Good for spraying or fertilizer application.", joinDays(clearWindow)),
			Time:        clearWindow[0].Day + " • FarmGPT",
		})
	}

	if current.Humidity >= 85 {
		alerts = append(alerts, Alert{
			ID:          "humidity",
			Type:        "warning",
			Title:       "High Humidity — Disease Risk",
			Description: fmt.Sprintf("Humidity at %d%%. Increased risk of fungal diseases (Ganoderma, Rice Blast). Monitor crops closely.", current.Humidity),
			Time:        "Now • FarmGPT",
		})
	}

	return alerts
}

// joinDays comma-joins day labels in forecast order.
func joinDays(days []ForecastDay) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.Day
	}
	return strings.Join(names, ", ")
}
