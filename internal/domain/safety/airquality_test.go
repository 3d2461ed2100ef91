package safety

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }

func TestAirQualityScoreFromAQI(t *testing.T) {
	require.InDelta(t, 9.7, AirQualityScore(iptr(30), nil), 0.001)
	require.InDelta(t, 8.0, AirQualityScore(iptr(50), nil), 0.001)
	require.InDelta(t, 6.8, AirQualityScore(iptr(100), nil), 0.001)
	require.InDelta(t, 3.2, AirQualityScore(iptr(160), nil), 0.001)
	require.InDelta(t, 0.5, AirQualityScore(iptr(300), nil), 0.001)
	require.Equal(t, 0.0, AirQualityScore(iptr(1000), nil))
}

func TestAirQualityScoreMonotonic(t *testing.T) {
	prev := 11.0
	for aqi := 10; aqi <= 400; aqi += 10 {
		s := AirQualityScore(iptr(aqi), nil)
		require.LessOrEqual(t, s, prev, "aqi %d", aqi)
		prev = s
	}
}

func TestAirQualityScorePM25Fallback(t *testing.T) {
	require.InDelta(t, 7.583, AirQualityScore(nil, fptr(20)), 0.01)
	require.InDelta(t, 10.0, AirQualityScore(nil, fptr(0)), 0.001)
	// AQI of zero is treated as unavailable.
	require.InDelta(t, 7.583, AirQualityScore(iptr(0), fptr(20)), 0.01)
}

func TestAirQualityScoreDefault(t *testing.T) {
	require.Equal(t, 7.0, AirQualityScore(nil, nil))
}
