// Package openmeteo fetches hourly forecasts from the Open-Meteo API.
// The API is free and needs no key.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/safeoutdoor/backend/internal/domain/report"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

const hourlyFields = "temperature_2m,relative_humidity_2m,wind_speed_10m," +
	"wind_direction_10m,uv_index,precipitation,cloud_cover"

// Client fetches hourly weather from Open-Meteo.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(u, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forecast retrieves up to `hours` hourly readings for a coordinate.
// The API caps forecasts at 240 hours.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, hours int) ([]report.HourWeather, error) {
	if hours <= 0 {
		hours = 24
	}
	if hours > 240 {
		hours = 240
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("hourly", hourlyFields)
	q.Set("temperature_unit", "celsius")
	q.Set("wind_speed_unit", "kmh")
	q.Set("precipitation_unit", "mm")
	q.Set("forecast_hours", fmt.Sprintf("%d", hours))

	endpoint := c.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	if len(raw.Hourly.Time) == 0 {
		return nil, fmt.Errorf("weather response missing hourly data")
	}

	return normalizeHours(raw.Hourly, hours), nil
}

type apiResponse struct {
	Hourly hourly `json:"hourly"`
}

type hourly struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Humidity      []float64 `json:"relative_humidity_2m"`
	WindSpeed     []float64 `json:"wind_speed_10m"`
	WindDirection []float64 `json:"wind_direction_10m"`
	UVIndex       []float64 `json:"uv_index"`
	Precipitation []float64 `json:"precipitation"`
	CloudCover    []float64 `json:"cloud_cover"`
}

// normalizeHours zips the column-oriented response into rows, padding
// short columns with mild defaults.
func normalizeHours(h hourly, limit int) []report.HourWeather {
	n := len(h.Time)
	if n > limit {
		n = limit
	}
	out := make([]report.HourWeather, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, report.HourWeather{
			Timestamp:       h.Time[i],
			TempC:           at(h.Temperature, i, 20.0),
			Humidity:        int(at(h.Humidity, i, 50)),
			WindSpeedKmh:    at(h.WindSpeed, i, 10.0),
			WindDirection:   int(at(h.WindDirection, i, 180)),
			UVIndex:         at(h.UVIndex, i, 5.0),
			PrecipitationMm: at(h.Precipitation, i, 0.0),
			CloudCover:      int(at(h.CloudCover, i, 30)),
		})
	}
	return out
}

func at(values []float64, i int, def float64) float64 {
	if i < len(values) {
		return values[i]
	}
	return def
}
