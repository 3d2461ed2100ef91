package safety

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeIdealConditions(t *testing.T) {
	c := Conditions{
		AQI:             iptr(30),
		TemperatureC:    fptr(21),
		WindSpeedKmh:    fptr(8),
		PrecipitationMm: fptr(0),
		Humidity:        fptr(50),
		UVIndex:         fptr(4),
		ElevationM:      fptr(200),
	}
	score := Compute("hiking", c)

	require.InDelta(t, 9.7, score.Overall, 0.05)
	require.Equal(t, "Excellent", score.Category)
	require.Equal(t, "Perfect conditions for outdoor activities", score.Advice)
	require.Empty(t, score.Warnings)
}

func TestComputeFactorOrderAndWeights(t *testing.T) {
	score := Compute("hiking", Conditions{})

	require.Len(t, score.RiskFactors, 4)
	require.Equal(t, "Air Quality", score.RiskFactors[0].Factor)
	require.Equal(t, "Weather", score.RiskFactors[1].Factor)
	require.Equal(t, "UV Exposure", score.RiskFactors[2].Factor)
	require.Equal(t, "Terrain", score.RiskFactors[3].Factor)

	sum := 0.0
	for _, f := range score.RiskFactors {
		sum += f.Weight
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestComputeSevereConditions(t *testing.T) {
	c := Conditions{
		AQI:             iptr(210),
		TemperatureC:    fptr(40),
		WindSpeedKmh:    fptr(65),
		PrecipitationMm: fptr(30),
		Humidity:        fptr(95),
		UVIndex:         fptr(11),
		ElevationM:      fptr(4200),
	}
	score := Compute("mountaineering", c)

	require.Equal(t, "Poor", score.Category)
	require.Equal(t, "Unsafe conditions - consider postponing", score.Advice)
	require.Contains(t, score.Warnings, "Air quality is hazardous - outdoor activity not recommended")
	require.Contains(t, score.Warnings, "Climbing in high winds is dangerous - consider postponing")
}

func TestComputeDefaultsWithNoReadings(t *testing.T) {
	score := Compute("hiking", Conditions{})

	// Air defaults to 7.0, weather to 10.0, UV to 8.51, terrain to 10.0.
	require.InDelta(t, 8.3, score.Overall, 0.05)
	require.Equal(t, "Good", score.Category)
}

func TestComputeAirQualityDominates(t *testing.T) {
	good := Compute("hiking", Conditions{AQI: iptr(30)})
	bad := Compute("hiking", Conditions{AQI: iptr(180)})
	require.Greater(t, good.Overall-bad.Overall, 3.0)
}

func TestComputeOverallWithinRange(t *testing.T) {
	for _, aqi := range []int{1, 50, 150, 300, 500} {
		score := Compute("cycling", Conditions{AQI: iptr(aqi), ElevationM: fptr(5000)})
		require.GreaterOrEqual(t, score.Overall, 0.0)
		require.LessOrEqual(t, score.Overall, 10.0)
	}
}
