// Package openelevation looks up terrain elevation via the
// Open-Elevation API (free, no key).
package openelevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/safeoutdoor/backend/internal/domain/report"
)

const defaultBaseURL = "https://api.open-elevation.com/api/v1/lookup"

// Client fetches elevation samples.
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

// Lookup returns the elevation at a coordinate, rounded to one decimal,
// with a coarse terrain classification.
func (c *Client) Lookup(ctx context.Context, lat, lon float64) (report.ElevationSample, error) {
	endpoint := fmt.Sprintf("%s?locations=%s", c.baseURL,
		url.QueryEscape(fmt.Sprintf("%.6f,%.6f", lat, lon)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return report.ElevationSample{}, fmt.Errorf("build elevation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return report.ElevationSample{}, fmt.Errorf("elevation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return report.ElevationSample{}, fmt.Errorf("elevation request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw struct {
		Results []struct {
			Elevation float64 `json:"elevation"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return report.ElevationSample{}, fmt.Errorf("decode elevation response: %w", err)
	}
	if len(raw.Results) == 0 {
		return report.ElevationSample{}, fmt.Errorf("elevation response missing results")
	}

	elev := math.Round(raw.Results[0].Elevation*10) / 10
	return report.ElevationSample{
		ElevationM:  elev,
		TerrainType: terrainType(elev),
	}, nil
}

func terrainType(elevationM float64) string {
	switch {
	case elevationM < 300:
		return "lowland"
	case elevationM < 1000:
		return "hills"
	case elevationM < 2500:
		return "mountains"
	default:
		return "high_mountains"
	}
}
