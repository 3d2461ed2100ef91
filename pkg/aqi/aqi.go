// Package aqi implements EPA Air Quality Index conversions for the
// pollutants the service receives from its providers (PM2.5 and NO2).
//
// Breakpoint intervals are upper-bound inclusive, matching the EPA's
// published tables; exact boundary concentrations belong to the lower band.
package aqi

import "math"

type breakpoint struct {
	concLo, concHi float64
	aqiLo, aqiHi   float64
}

// EPA PM2.5 breakpoints (ug/m3, 24-hour average).
var pm25Breakpoints = []breakpoint{
	{0.0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// EPA NO2 breakpoints (ppb, 1-hour average).
var no2Breakpoints = []breakpoint{
	{0, 53, 0, 50},
	{54, 100, 51, 100},
	{101, 360, 101, 150},
	{361, 649, 151, 200},
	{650, 1249, 201, 300},
	{1250, 2049, 301, 500},
}

// FromPM25 converts a PM2.5 concentration in ug/m3 to an AQI value.
func FromPM25(pm25 float64) int {
	return interpolate(pm25, pm25Breakpoints)
}

// FromNO2 converts an NO2 concentration in ppb to an AQI value.
func FromNO2(no2 float64) int {
	return interpolate(no2, no2Breakpoints)
}

func interpolate(value float64, table []breakpoint) int {
	for _, bp := range table {
		if value >= bp.concLo && value <= bp.concHi {
			aqi := (bp.aqiHi-bp.aqiLo)/(bp.concHi-bp.concLo)*(value-bp.concLo) + bp.aqiLo
			return int(math.Round(aqi))
		}
	}
	if value > table[len(table)-1].concHi {
		return 500
	}
	return 0
}

// FromPollutants merges the available pollutants into a single AQI using
// the EPA worst-pollutant rule, returning the AQI and the dominant
// pollutant name ("pm25", "no2", or "unknown" when nothing was measured).
func FromPollutants(pm25, no2 *float64) (int, string) {
	best, dominant := -1, "unknown"
	if pm25 != nil && *pm25 >= 0 {
		best, dominant = FromPM25(*pm25), "pm25"
	}
	if no2 != nil && *no2 >= 0 {
		if v := FromNO2(*no2); v > best {
			best, dominant = v, "no2"
		}
	}
	if best < 0 {
		// Nothing measured: conservative moderate estimate.
		return 50, "unknown"
	}
	return best, dominant
}

// Category returns the EPA category name for an AQI value.
func Category(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}

// Color returns the EPA hex color code for an AQI value.
func Color(aqi int) string {
	switch {
	case aqi <= 50:
		return "#00E400"
	case aqi <= 100:
		return "#FFFF00"
	case aqi <= 150:
		return "#FF7E00"
	case aqi <= 200:
		return "#FF0000"
	case aqi <= 300:
		return "#8F3F97"
	default:
		return "#7E0023"
	}
}
