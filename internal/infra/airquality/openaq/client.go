// Package openaq fetches PM2.5 and NO2 readings from the OpenAQ v3 API.
//
// v3 is a two-step protocol: list nearby locations (which carry sensor
// metadata), then fetch each location's latest values and map them back
// to parameters through the sensor ids.
package openaq

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

const defaultBaseURL = "https://api.openaq.org/v3"

// NO2 unit conversions. Values below 1 are assumed to be ppm.
const (
	no2PpmToUgm3 = 1880.0
	no2Ugm3ToPpb = 1.88
)

const maxLocations = 5

// Client fetches pollutant readings from OpenAQ.
type Client struct {
	baseURL    string
	apiKey     string
	radiusM    int
	httpClient *http.Client
}

// NewClient builds an API client. Radius is in kilometers.
func NewClient(baseURL, apiKey string, radiusKm int, timeout time.Duration) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	if radiusKm <= 0 {
		radiusKm = 25
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(u, "/"),
		apiKey:     apiKey,
		radiusM:    radiusKm * 1000,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Latest returns the averaged PM2.5 (ug/m3) and NO2 (ppb) readings from
// the nearest stations. It fails when no station is in range, letting
// the caller fall back to defaults.
func (c *Client) Latest(ctx context.Context, lat, lon float64) (report.AirSample, error) {
	locations, err := c.fetchLocations(ctx, lat, lon)
	if err != nil {
		return report.AirSample{}, err
	}
	if len(locations) == 0 {
		return report.AirSample{}, fmt.Errorf("no openaq stations within %dm", c.radiusM)
	}

	// sensor id -> parameter name, across all locations
	sensors := make(map[int64]string)
	for _, loc := range locations {
		for _, s := range loc.Sensors {
			name := s.Parameter.Name
			if name == "pm25" || name == "no2" {
				sensors[s.ID] = name
			}
		}
	}

	var (
		pm25Values []float64
		no2Values  []float64
		lastUpdate string
		stations   int
	)

	if len(locations) > maxLocations {
		locations = locations[:maxLocations]
	}
	for _, loc := range locations {
		results, err := c.fetchLatest(ctx, loc.ID)
		if err != nil {
			// One station failing should not sink the whole lookup.
			continue
		}
		stations++
		for _, r := range results {
			name, ok := sensors[r.SensorsID]
			if !ok || r.Value == nil {
				continue
			}
			switch name {
			case "pm25":
				pm25Values = append(pm25Values, *r.Value)
			case "no2":
				v := *r.Value
				if v < 1 {
					v *= no2PpmToUgm3
				}
				no2Values = append(no2Values, v)
			}
			if r.Datetime.UTC > lastUpdate {
				lastUpdate = r.Datetime.UTC
			}
		}
	}

	sample := report.AirSample{Stations: stations, LastUpdate: lastUpdate}
	if len(pm25Values) > 0 {
		sample.PM25 = ptr(mean(pm25Values))
	}
	if len(no2Values) > 0 {
		// EPA NO2 breakpoints are in ppb.
		sample.NO2 = ptr(mean(no2Values) / no2Ugm3ToPpb)
	}
	if sample.PM25 == nil && sample.NO2 == nil {
		return report.AirSample{}, fmt.Errorf("no pm25/no2 measurements from %d stations", stations)
	}
	return sample, nil
}

type location struct {
	ID      int64 `json:"id"`
	Sensors []struct {
		ID        int64 `json:"id"`
		Parameter struct {
			Name string `json:"name"`
		} `json:"parameter"`
	} `json:"sensors"`
}

type latestResult struct {
	SensorsID int64    `json:"sensorsId"`
	Value     *float64 `json:"value"`
	Datetime  struct {
		UTC string `json:"utc"`
	} `json:"datetime"`
}

func (c *Client) fetchLocations(ctx context.Context, lat, lon float64) ([]location, error) {
	q := url.Values{}
	q.Set("coordinates", fmt.Sprintf("%.4f,%.4f", lat, lon))
	q.Set("radius", fmt.Sprintf("%d", c.radiusM))
	q.Set("limit", "10")
	q.Set("sort", "distance")

	var out struct {
		Results []location `json:"results"`
	}
	if err := c.get(ctx, c.baseURL+"/locations?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) fetchLatest(ctx context.Context, locationID int64) ([]latestResult, error) {
	var out struct {
		Results []latestResult `json:"results"`
	}
	endpoint := fmt.Sprintf("%s/locations/%d/latest", c.baseURL, locationID)
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build openaq request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openaq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("openaq request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode openaq response: %w", err)
	}
	return nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func ptr(v float64) *float64 { return &v }
