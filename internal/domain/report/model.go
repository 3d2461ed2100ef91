package report

import (
	"time"

	"github.com/safeoutdoor/backend/internal/domain/checklist"
	"github.com/safeoutdoor/backend/internal/domain/safety"
)

// Config configures the analysis orchestration.
type Config struct {
	CacheTTL         time.Duration
	MaxForecastHours int
}

// Request is a validated analyze request.
type Request struct {
	Activity      string  `json:"activity" binding:"required"`
	Lat           float64 `json:"lat" binding:"min=-90,max=90"`
	Lon           float64 `json:"lon" binding:"min=-180,max=180"`
	DurationHours int     `json:"duration_hours"`
}

// HourWeather is one hour of the provider forecast feed.
type HourWeather struct {
	Timestamp       string  `json:"timestamp"`
	TempC           float64 `json:"temp_c"`
	Humidity        int     `json:"humidity"`
	WindSpeedKmh    float64 `json:"wind_speed_kmh"`
	WindDirection   int     `json:"wind_direction"`
	UVIndex         float64 `json:"uv_index"`
	PrecipitationMm float64 `json:"precipitation_mm"`
	CloudCover      int     `json:"cloud_cover"`
}

// AirSample is the merged pollutant reading near a location.
type AirSample struct {
	PM25       *float64 `json:"pm25,omitempty"`
	NO2        *float64 `json:"no2,omitempty"`
	Stations   int      `json:"stations"`
	LastUpdate string   `json:"last_update,omitempty"`
}

// ElevationSample is the terrain reading for a location.
type ElevationSample struct {
	ElevationM  float64 `json:"elevation_m"`
	TerrainType string  `json:"terrain_type"`
}

// AirQuality is the merged AQI block of a report.
type AirQuality struct {
	AQI               int     `json:"aqi"`
	Category          string  `json:"category"`
	PM25              float64 `json:"pm25"`
	NO2               float64 `json:"no2"`
	DominantPollutant string  `json:"dominant_pollutant"`
}

// SafetyBreakdown is the coarse environmental/health/terrain split.
type SafetyBreakdown struct {
	Environmental float64 `json:"environmental"`
	Health        float64 `json:"health"`
	Terrain       float64 `json:"terrain"`
	Overall       float64 `json:"overall"`
}

// Report is the complete analysis result.
type Report struct {
	RequestID       string           `json:"request_id"`
	RiskScore       float64          `json:"risk_score"`
	Category        string           `json:"category"`
	OverallSafety   SafetyBreakdown  `json:"overall_safety"`
	AirQuality      AirQuality       `json:"air_quality"`
	WeatherForecast []HourWeather    `json:"weather_forecast"`
	Elevation       ElevationSample  `json:"elevation"`
	Checklist       []checklist.Item `json:"checklist"`
	Warnings        []string         `json:"warnings"`
	AISummary       string           `json:"ai_summary"`
	RiskFactors     []safety.Factor  `json:"risk_factors"`
	DataSources     []string         `json:"data_sources"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// ActivityCount is one trending activity entry.
type ActivityCount struct {
	Activity string `json:"activity"`
	Count    int64  `json:"count"`
}
