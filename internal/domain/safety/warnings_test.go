package safety

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWarningsEmptyForBenignConditions(t *testing.T) {
	c := Conditions{
		AQI:             iptr(30),
		TemperatureC:    fptr(21),
		WindSpeedKmh:    fptr(8),
		PrecipitationMm: fptr(0),
		UVIndex:         fptr(4),
		ElevationM:      fptr(200),
	}
	require.Empty(t, Warnings("hiking", c))
}

func TestWarningsSkipMissingReadings(t *testing.T) {
	require.Empty(t, Warnings("hiking", Conditions{}))
}

func TestWarningsSevereConditions(t *testing.T) {
	c := Conditions{
		AQI:          iptr(180),
		PM25:         fptr(80),
		UVIndex:      fptr(9),
		TemperatureC: fptr(35),
		WindSpeedKmh: fptr(45),
		ElevationM:   fptr(3200),
	}
	got := Warnings("rock_climbing", c)
	require.Equal(t, []string{
		"Air quality unhealthy - limit outdoor exposure and take frequent breaks",
		"High particulate matter - respiratory protection recommended",
		"Very high UV - sunscreen SPF 50+, hat, and protective clothing required",
		"High temperature - stay hydrated, take frequent breaks in shade",
		"High winds - exercise extreme caution, especially on exposed terrain",
		"High altitude - monitor for symptoms of altitude sickness",
		"Climbing in high winds is dangerous - consider postponing",
	}, got)
}

func TestWarningsAerobicAirQuality(t *testing.T) {
	c := Conditions{AQI: iptr(120)}
	got := Warnings("running", c)
	require.Contains(t, got, "Aerobic activity with poor air quality - consider indoor alternative")

	// Non-aerobic activity gets only the general advisory.
	require.NotContains(t, Warnings("hiking", c),
		"Aerobic activity with poor air quality - consider indoor alternative")
}

func TestWarningsMostSeverePerGroupOnly(t *testing.T) {
	got := Warnings("hiking", Conditions{AQI: iptr(250)})
	require.Equal(t, []string{"Air quality is hazardous - outdoor activity not recommended"}, got)
}
