package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/farmgpt/agroweather/internal/db"
)

// cacheTTL keeps forecasts fresh across a farming morning without hitting
// Open-Meteo on every widget refresh.
const cacheTTL = 30 * time.Minute

// Service runs the forecast pipeline: fetch, translate, classify,
// synthesize. The cache is optional; without one every call re-fetches.
type Service struct {
	client *Client
	cache  *db.DB
	log    *zap.Logger
}

// NewService creates a weather service. cache may be nil.
func NewService(client *Client, cache *db.DB, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// GetWeather returns the advisory result for a coordinate, using the cache
// when possible. Cache failures are logged and fall through to a fresh
// fetch; fetch failures propagate to the caller unrecovered.
func (s *Service) GetWeather(ctx context.Context, lat, lon float64) (*WeatherResult, error) {
	// Round to 2 decimal places (~1.1km) so nearby requests share a
	// cache entry.
	const precision = 100.0
	rLat := math.Round(lat*precision) / precision
	rLon := math.Round(lon*precision) / precision

	if s.cache != nil {
		cached, err := s.cache.GetForecast(rLat, rLon)
		if err != nil {
			s.log.Warn("cache lookup failed", zap.Error(err))
		}
		if cached != nil {
			var wr WeatherResult
			if err := json.Unmarshal([]byte(cached.Data), &wr); err != nil {
				s.log.Warn("cache entry corrupt, refetching", zap.Error(err))
			} else {
				return &wr, nil
			}
		}
	}

	fc, err := s.client.GetForecast(ctx, rLat, rLon)
	if err != nil {
		return nil, err
	}

	wr, err := buildResult(fc)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(wr); err == nil {
			if err := s.cache.SetForecast(rLat, rLon, string(data), cacheTTL); err != nil {
				s.log.Warn("cache update failed", zap.Error(err))
			}
		}
	}

	return wr, nil
}

// buildResult transforms a raw forecast response into the advisory result.
// Pure; no network or cache access.
func buildResult(fc *ForecastResponse) (*WeatherResult, error) {
	if len(fc.Daily.Time) < forecastDays ||
		len(fc.Daily.WeatherCode) < forecastDays ||
		len(fc.Daily.TemperatureMax) < forecastDays ||
		len(fc.Daily.PrecipitationProbabilityMax) < forecastDays {
		return nil, fmt.Errorf("incomplete daily forecast: got %d days, want %d", len(fc.Daily.Time), forecastDays)
	}

	info := WeatherInfo(fc.Current.WeatherCode)
	current := CurrentConditions{
		Temperature: int(math.Round(fc.Current.Temperature)),
		Humidity:    int(math.Round(fc.Current.RelativeHumidity)),
		WindSpeed:   int(math.Round(fc.Current.WindSpeed)),
		Description: info.Description,
		Icon:        info.Icon,
	}
	if fc.Current.PrecipitationProbability != nil {
		current.RainChance = *fc.Current.PrecipitationProbability
	}

	forecast := make([]ForecastDay, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		dayInfo := WeatherInfo(fc.Daily.WeatherCode[i])
		rainProb := 0
		if p := fc.Daily.PrecipitationProbabilityMax[i]; p != nil {
			rainProb = *p
		}
		forecast = append(forecast, ForecastDay{
			Day:         dayLabel(fc.Daily.Time[i], i),
			Date:        fc.Daily.Time[i],
			Temp:        fmt.Sprintf("%d°C", int(math.Round(fc.Daily.TemperatureMax[i]))),
			Rain:        fmt.Sprintf("%d%%", rainProb),
			RainValue:   rainProb,
			Description: dayInfo.Description,
			Icon:        dayInfo.Icon,
			Alert:       ClassifyAlertLevel(rainProb, fc.Daily.WeatherCode[i]),
		})
	}

	return &WeatherResult{
		Current:  current,
		Forecast: forecast,
		Advisory: GenerateAdvisory(forecast),
		Alerts:   GenerateAlerts(forecast, current),
	}, nil
}

// dayLabel names a forecast day. The first entry is always "Today"; the
// rest use the 3-letter weekday of their date. Unparseable dates fall back
// to the raw string.
func dayLabel(dateStr string, index int) string {
	if index == 0 {
		return "Today"
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Mon")
}
