package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day builds a classified forecast day for synthesizer tests.
func day(label string, code, rain int) ForecastDay {
	return ForecastDay{
		Day:       label,
		RainValue: rain,
		Alert:     ClassifyAlertLevel(rain, code),
	}
}

// TestClassifyAlertLevel_Boundaries pins the exact policy cut points
func TestClassifyAlertLevel_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		rain int
		code int
		want AlertLevel
	}{
		{"calm day", 10, 2, LevelNone},
		{"rain just below warning", 59, 0, LevelNone},
		{"rain at warning threshold", 60, 0, LevelWarning},
		{"rain just below danger", 79, 0, LevelWarning},
		{"rain at danger threshold", 80, 0, LevelDanger},
		{"code just below warning", 0, 60, LevelNone},
		{"code at warning threshold", 0, 61, LevelWarning},
		{"code just below danger", 0, 94, LevelWarning},
		{"code at danger threshold", 0, 95, LevelDanger},
		{"danger code overrides low rain", 5, 99, LevelDanger},
		{"danger rain overrides low code", 100, 0, LevelDanger},
		{"both at maximum", 100, 99, LevelDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAlertLevel(tt.rain, tt.code))
		})
	}
}

// TestClassifyAlertLevel_TotalityAndExclusivity checks that every
// (rain, code) pair lands in exactly one branch of the precedence order
func TestClassifyAlertLevel_TotalityAndExclusivity(t *testing.T) {
	for rain := 0; rain <= 100; rain++ {
		for code := 0; code <= 99; code++ {
			got := ClassifyAlertLevel(rain, code)

			var want AlertLevel
			switch {
			case code >= 95 || rain >= 80:
				want = LevelDanger
			case code >= 61 || rain >= 60:
				want = LevelWarning
			default:
				want = LevelNone
			}

			if got != want {
				t.Fatalf("ClassifyAlertLevel(%d, %d) = %q, want %q", rain, code, got, want)
			}
		}
	}
}

// TestGenerateAdvisory_AllClear tests the fixed good-conditions sentence
func TestGenerateAdvisory_AllClear(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 0, 0), day("Tue", 1, 5), day("Wed", 2, 10), day("Thu", 0, 0), day("Fri", 1, 15),
	}

	want := "Good weather conditions all week. Suitable for spraying, fertilizer application, and harvesting operations."
	assert.Equal(t, want, GenerateAdvisory(forecast))
}

// TestGenerateAdvisory_RainWithWindow tests rainy-day naming plus the
// spray-window sentence
func TestGenerateAdvisory_RainWithWindow(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 2, 10), day("Tue", 96, 85), day("Wed", 3, 20), day("Thu", 1, 5), day("Fri", 2, 15),
	}

	got := GenerateAdvisory(forecast)
	assert.Equal(t, "Heavy rain expected Tue. Consider delaying fertilizer application and pausing tapping operations. Optimal spray window: Wed, Thu, Fri.", got)
}

// TestGenerateAdvisory_AllRainy tests that no spray-window sentence is
// appended when every day carries an alert
func TestGenerateAdvisory_AllRainy(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 95, 90), day("Tue", 96, 85), day("Wed", 63, 70), day("Thu", 65, 75), day("Fri", 95, 88),
	}

	got := GenerateAdvisory(forecast)
	assert.Equal(t, "Heavy rain expected Today, Tue, Wed, Thu, Fri. Consider delaying fertilizer application and pausing tapping operations.", got)
}

// TestGenerateAdvisory_OnlyTodayClear tests that a clear "Today" does not
// count toward the spray window
func TestGenerateAdvisory_OnlyTodayClear(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 0, 0), day("Tue", 96, 85), day("Wed", 63, 70), day("Thu", 65, 75), day("Fri", 95, 88),
	}

	got := GenerateAdvisory(forecast)
	assert.NotContains(t, got, "Optimal spray window")
}

// TestGenerateAlerts_StormSuppressesRain tests that a danger day prevents
// the separate rain alert even when warning days exist
func TestGenerateAlerts_StormSuppressesRain(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 2, 10), day("Tue", 96, 85), day("Wed", 63, 70), day("Thu", 1, 5), day("Fri", 2, 15),
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 70})

	ids := alertIDs(alerts)
	assert.Contains(t, ids, "storm")
	assert.NotContains(t, ids, "rain")
}

// TestGenerateAlerts_RainWithoutStorm tests the rain alert when warning
// days exist and no danger days do
func TestGenerateAlerts_RainWithoutStorm(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 2, 10), day("Tue", 63, 65), day("Wed", 63, 70), day("Thu", 1, 5), day("Fri", 2, 15),
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 70})
	require.Len(t, alerts, 2)

	assert.Equal(t, "rain", alerts[0].ID)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, "Heavy Rain Expected", alerts[0].Title)
	assert.Equal(t, "Rain forecast for Tue, Wed. Delay pesticide spraying for better effectiveness.", alerts[0].Description)
	assert.Equal(t, "Tue • Open-Meteo", alerts[0].Time)

	assert.Equal(t, "spray-window", alerts[1].ID)
	assert.Equal(t, "Thu, Fri: Clear skies expected. Good for spraying or fertilizer application.", alerts[1].Description)
}

// TestGenerateAlerts_HumidityIndependence tests that high current humidity
// emits the humidity alert regardless of forecast alerts, and that a clear
// forecast still yields the spray-window alert
func TestGenerateAlerts_HumidityIndependence(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 0, 0), day("Tue", 1, 5), day("Wed", 2, 10), day("Thu", 0, 0), day("Fri", 1, 15),
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 90})
	require.Len(t, alerts, 2)

	assert.Equal(t, "spray-window", alerts[0].ID)
	assert.Equal(t, "humidity", alerts[1].ID)
	assert.Equal(t, "warning", alerts[1].Type)
	assert.Equal(t, "High Humidity — Disease Risk", alerts[1].Title)
	assert.Equal(t, "Humidity at 90%. Increased risk of fungal diseases (Ganoderma, Rice Blast). Monitor crops closely.", alerts[1].Description)
	assert.Equal(t, "Now • FarmGPT", alerts[1].Time)
}

// TestGenerateAlerts_HumidityAllRainy tests the humidity alert with an
// all-rainy forecast, confirming spray-window is absent
func TestGenerateAlerts_HumidityAllRainy(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 95, 90), day("Tue", 96, 85), day("Wed", 95, 88), day("Thu", 99, 95), day("Fri", 95, 82),
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 90})
	require.Len(t, alerts, 2)
	assert.Equal(t, "storm", alerts[0].ID)
	assert.Equal(t, "humidity", alerts[1].ID)
}

// TestGenerateAlerts_HumidityBoundary tests the 85% threshold
func TestGenerateAlerts_HumidityBoundary(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 95, 90), day("Tue", 96, 85), day("Wed", 95, 88), day("Thu", 99, 95), day("Fri", 95, 82),
	}

	assert.NotContains(t, alertIDs(GenerateAlerts(forecast, CurrentConditions{Humidity: 84})), "humidity")
	assert.Contains(t, alertIDs(GenerateAlerts(forecast, CurrentConditions{Humidity: 85})), "humidity")
}

// TestGenerateAlerts_ScenarioA reproduces a single danger day among clear
// days: storm alert naming Tue, spray window naming Wed, Thu, Fri
func TestGenerateAlerts_ScenarioA(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 2, 10), day("Tue", 96, 85), day("Wed", 3, 20), day("Thu", 1, 5), day("Fri", 2, 15),
	}

	require.Equal(t, LevelDanger, forecast[1].Alert)
	for _, i := range []int{0, 2, 3, 4} {
		require.Equal(t, LevelNone, forecast[i].Alert, "day %d", i)
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 70})
	require.Len(t, alerts, 2)

	assert.Equal(t, "storm", alerts[0].ID)
	assert.Equal(t, "danger", alerts[0].Type)
	assert.Equal(t, "Thunderstorm Warning", alerts[0].Title)
	assert.Equal(t, "Heavy rainfall expected Tue. Secure loose equipment and check drainage channels.", alerts[0].Description)
	assert.Equal(t, "Tue • MetMalaysia", alerts[0].Time)

	assert.Equal(t, "spray-window", alerts[1].ID)
	assert.Equal(t, "info", alerts[1].Type)
	assert.Equal(t, "Wed, Thu, Fri: Clear skies expected. Good for spraying or fertilizer application.", alerts[1].Description)
	assert.Equal(t, "Wed • FarmGPT", alerts[1].Time)

	advisory := GenerateAdvisory(forecast)
	assert.Contains(t, advisory, "Heavy rain expected Tue.")
	assert.Contains(t, advisory, "Optimal spray window: Wed, Thu, Fri.")
}

// TestGenerateAlerts_ScenarioB reproduces an all-clear week: only the
// spray-window alert
func TestGenerateAlerts_ScenarioB(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 0, 0), day("Tue", 0, 0), day("Wed", 0, 0), day("Thu", 0, 0), day("Fri", 0, 0),
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 70})
	require.Len(t, alerts, 1)
	assert.Equal(t, "spray-window", alerts[0].ID)
	assert.Equal(t, "Tue, Wed, Thu, Fri: Clear skies expected. Good for spraying or fertilizer application.", alerts[0].Description)

	want := "Good weather conditions all week. Suitable for spraying, fertilizer application, and harvesting operations."
	assert.Equal(t, want, GenerateAdvisory(forecast))
}

// TestGenerateAlerts_CategoryOrder tests that alert order follows the
// fixed category sequence, not severity or recency
func TestGenerateAlerts_CategoryOrder(t *testing.T) {
	forecast := []ForecastDay{
		day("Today", 2, 10), day("Tue", 63, 65), day("Wed", 1, 5), day("Thu", 0, 0), day("Fri", 2, 15),
	}

	alerts := GenerateAlerts(forecast, CurrentConditions{Humidity: 92})
	assert.Equal(t, []string{"rain", "spray-window", "humidity"}, alertIDs(alerts))
}

func alertIDs(alerts []Alert) []string {
	ids := make([]string, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ID
	}
	return ids
}
