package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/farmgpt/agroweather/internal/db"
	"github.com/farmgpt/agroweather/internal/weather"
)

// WeatherService defines the weather operations needed by handlers.
type WeatherService interface {
	GetWeather(ctx context.Context, lat, lon float64) (*weather.WeatherResult, error)
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	weather WeatherService
	cache   *db.DB
	log     *zap.Logger
}

// New creates a new Handlers instance. cache may be nil.
func New(svc WeatherService, cache *db.DB, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		weather: svc,
		cache:   cache,
		log:     log,
	}
}

// HandleWeather serves the forecast-derived advisory for a coordinate.
// With no lat/lon parameters the demo farm coordinate is used; supplying
// only one of the pair is an error.
func (h *Handlers) HandleWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon := weather.DefaultLatitude, weather.DefaultLongitude

	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr != "" || lonStr != "" {
		var err error
		if lat, err = strconv.ParseFloat(latStr, 64); err != nil {
			writeError(w, http.StatusBadRequest, "invalid latitude")
			return
		}
		if lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
			writeError(w, http.StatusBadRequest, "invalid longitude")
			return
		}
	}

	wr, err := h.weather.GetWeather(r.Context(), lat, lon)
	if err != nil {
		var se *weather.StatusError
		if errors.As(err, &se) {
			h.log.Warn("weather API rejected request",
				zap.Int("status", se.StatusCode),
				zap.Float64("lat", lat),
				zap.Float64("lon", lon))
		} else {
			h.log.Error("weather fetch failed", zap.Error(err))
		}
		writeError(w, http.StatusBadGateway, "weather data unavailable")
		return
	}

	writeJSON(w, http.StatusOK, wr)
}

// HandleHealth handles the health check endpoint.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.cache == nil {
		status = "no_cache"
	} else if err := h.cache.Ping(); err != nil {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
