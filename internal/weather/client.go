package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Default coordinate: Kuala Lumpur area, matches the demo farm.
const (
	DefaultLatitude  = 3.139
	DefaultLongitude = 101.687
)

// Day boundaries are aligned to Malaysian farming hours.
const forecastTimezone = "Asia/Kuala_Lumpur"

const forecastDays = 5

// StatusError reports a non-2xx response from the weather API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather API error: %d", e.StatusCode)
}

// Client handles Open-Meteo API interactions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new Open-Meteo client.
func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ForecastResponse represents the Open-Meteo forecast response. The daily
// arrays are aligned by index.
type ForecastResponse struct {
	Current struct {
		Temperature              float64 `json:"temperature_2m"`
		RelativeHumidity         float64 `json:"relative_humidity_2m"`
		WeatherCode              int     `json:"weather_code"`
		WindSpeed                float64 `json:"wind_speed_10m"`
		PrecipitationProbability *int    `json:"precipitation_probability"`
	} `json:"current"`
	Daily struct {
		Time                        []string  `json:"time"`
		WeatherCode                 []int     `json:"weather_code"`
		TemperatureMax              []float64 `json:"temperature_2m_max"`
		PrecipitationProbabilityMax []*int    `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// GetForecast fetches current conditions plus the 5-day daily forecast for
// a coordinate. One request, no retries; a non-2xx status is returned as a
// *StatusError.
func (c *Client) GetForecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", lat))
	params.Set("longitude", fmt.Sprintf("%g", lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,precipitation_probability")
	params.Set("daily", "weather_code,temperature_2m_max,precipitation_probability_max")
	params.Set("timezone", forecastTimezone)
	params.Set("forecast_days", fmt.Sprintf("%d", forecastDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var fc ForecastResponse
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}
	return &fc, nil
}
