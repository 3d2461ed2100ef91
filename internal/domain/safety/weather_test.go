package safety

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeatherScoreIdeal(t *testing.T) {
	c := Conditions{
		TemperatureC:    fptr(21),
		WindSpeedKmh:    fptr(8),
		PrecipitationMm: fptr(0),
		Humidity:        fptr(50),
	}
	require.InDelta(t, 10.0, WeatherScore(c), 0.001)
}

func TestWeatherScoreDefaults(t *testing.T) {
	// All defaults: 20 C, 10 km/h, 0 mm, 50% humidity.
	require.InDelta(t, 10.0, WeatherScore(Conditions{}), 0.001)
}

func TestWeatherScoreWindChillPenalty(t *testing.T) {
	calm := WeatherScore(Conditions{TemperatureC: fptr(5), WindSpeedKmh: fptr(4)})
	windy := WeatherScore(Conditions{TemperatureC: fptr(5), WindSpeedKmh: fptr(20)})
	require.Less(t, windy, calm)
}

func TestWeatherScoreHeatIndexPenalty(t *testing.T) {
	dry := WeatherScore(Conditions{TemperatureC: fptr(32), Humidity: fptr(30)})
	humid := WeatherScore(Conditions{TemperatureC: fptr(32), Humidity: fptr(80)})
	require.Less(t, humid, dry)
}

func TestWeatherScoreHeavyRain(t *testing.T) {
	wet := WeatherScore(Conditions{PrecipitationMm: fptr(60)})
	dry := WeatherScore(Conditions{PrecipitationMm: fptr(0)})
	require.Less(t, wet, dry)
}

func TestHeatIndexBelowThresholdIsIdentity(t *testing.T) {
	require.Equal(t, 25.0, heatIndex(25, 90))
}

func TestWindChillOutOfRangeIsIdentity(t *testing.T) {
	require.Equal(t, 15.0, windChill(15, 40))
	require.Equal(t, 5.0, windChill(5, 3))
}
