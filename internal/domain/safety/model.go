// Package safety computes the multi-factor outdoor safety score.
//
// The overall score is a weighted average of four sub-scores on a 0-10
// scale. Weights reflect relative health impact: air quality dominates
// because PM2.5 exposure causes immediate cardiopulmonary effects,
// weather covers heat and cold stress, UV is a cumulative long-term
// risk, and terrain only matters above roughly 2500m.
package safety

import "math"

// Factor weights. They sum to 1.0.
const (
	AirQualityWeight = 0.50
	WeatherWeight    = 0.30
	UVWeight         = 0.12
	TerrainWeight    = 0.08
)

// Conditions holds the environmental readings used for scoring.
// Nil fields mean the reading was unavailable; each sub-score
// documents its own fallback.
type Conditions struct {
	AQI             *int
	PM25            *float64
	TemperatureC    *float64
	WindSpeedKmh    *float64
	PrecipitationMm *float64
	Humidity        *float64
	UVIndex         *float64
	ElevationM      *float64
}

// Factor is one weighted component of the overall score.
type Factor struct {
	Factor string  `json:"factor"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// Score is the full scoring result for one activity and set of conditions.
type Score struct {
	Overall     float64  `json:"score"`
	Category    string   `json:"category"`
	Advice      string   `json:"advice"`
	RiskFactors []Factor `json:"risk_factors"`
	Warnings    []string `json:"warnings"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
