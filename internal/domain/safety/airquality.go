package safety

import "math"

// AirQualityScore maps air pollution onto a 0-10 sub-score using EPA
// health-based AQI categories. AQI is the primary metric; PM2.5 serves
// as a fallback when no AQI is available. With neither reading the
// score defaults to 7.0, assuming acceptable conditions.
func AirQualityScore(aqi *int, pm25 *float64) float64 {
	if aqi != nil && *aqi > 0 {
		a := float64(*aqi)
		switch {
		case a <= 50:
			return 10.0 - a/50.0*0.5
		case a <= 100:
			return 8.0 - (a-50)/50.0*1.2
		case a <= 150:
			return 5.5 - (a-100)/50.0*1.5
		case a <= 200:
			return 3.5 - (a-150)/50.0*1.5
		case a <= 300:
			return 1.5 - (a-200)/100.0*1.0
		default:
			return math.Max(0.0, 0.5-(a-300)/200.0*0.5)
		}
	}

	if pm25 != nil && *pm25 >= 0 {
		p := *pm25
		switch {
		case p <= 12.0:
			return 10.0 - p/12.0*0.5
		case p <= 35.0:
			return 8.0 - (p-12.0)/23.0*1.2
		case p <= 55.0:
			return 5.5 - (p-35.0)/20.0*1.5
		case p <= 150.0:
			return 3.5 - (p-55.0)/95.0*1.5
		default:
			return math.Max(0.0, 1.5-(p-150.0)/100.0*1.0)
		}
	}

	return 7.0
}
