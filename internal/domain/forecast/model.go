package forecast

import "time"

// Day is one aggregated forecast day.
type Day struct {
	Date            string  `json:"date"`
	AQIAvg          int     `json:"aqi_avg"`
	AQIMax          int     `json:"aqi_max"`
	TempHigh        float64 `json:"temp_high"`
	TempLow         float64 `json:"temp_low"`
	UVIndexMax      float64 `json:"uv_index_max"`
	WindSpeedMax    float64 `json:"wind_speed_max"`
	PrecipitationMm float64 `json:"precipitation_mm"`
	SafetyScore     float64 `json:"safety_score"`
	Recommended     bool    `json:"recommended"`
}

// Location echoes the requested coordinates.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Forecast is the multi-day outlook for a location.
type Forecast struct {
	Location    Location  `json:"location"`
	Days        []Day     `json:"forecast"`
	GeneratedAt time.Time `json:"generated_at"`
}
