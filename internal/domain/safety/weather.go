package safety

import "math"

// WeatherScore computes the weather sub-score (0-10) from apparent
// temperature, wind, precipitation and humidity. The internal weights
// are temperature 50%, wind 30%, precipitation 15%, humidity 5%.
//
// Missing readings fall back to mild defaults: 20 C, 10 km/h wind,
// 0 mm precipitation, 50% humidity.
func WeatherScore(c Conditions) float64 {
	temp := 20.0
	if c.TemperatureC != nil {
		temp = *c.TemperatureC
	}
	wind := 10.0
	if c.WindSpeedKmh != nil {
		wind = *c.WindSpeedKmh
	}
	precip := 0.0
	if c.PrecipitationMm != nil {
		precip = *c.PrecipitationMm
	}
	humidity := 50.0
	if c.Humidity != nil {
		humidity = *c.Humidity
	}

	// Apparent temperature: heat index when hot and humid, wind chill
	// when cold and windy, raw temperature otherwise.
	apparent := temp
	if temp > 26 && humidity > 40 {
		apparent = heatIndex(temp, humidity)
	} else if temp < 10 && wind > 5 {
		apparent = windChill(temp, wind)
	}

	var tempScore float64
	switch {
	case apparent >= 18 && apparent <= 24:
		tempScore = 10.0
	case (apparent >= 15 && apparent < 18) || (apparent > 24 && apparent <= 27):
		tempScore = 9.0
	case (apparent >= 10 && apparent < 15) || (apparent > 27 && apparent <= 32):
		tempScore = 7.0
	case (apparent >= 5 && apparent < 10) || (apparent > 32 && apparent <= 38):
		tempScore = 4.0
	case (apparent >= 0 && apparent < 5) || (apparent > 38 && apparent <= 43):
		tempScore = 2.0
	default:
		tempScore = 1.0
	}

	var windScore float64
	switch {
	case wind < 15:
		windScore = 10.0
	case wind < 30:
		windScore = 9.0 - (wind-15)*0.067
	case wind < 50:
		windScore = 8.0 - (wind-30)*0.15
	case wind < 70:
		windScore = 5.0 - (wind-50)*0.15
	default:
		windScore = math.Max(0.0, 2.0-(wind-70)*0.05)
	}

	var precipScore float64
	switch {
	case precip < 2:
		precipScore = 10.0
	case precip < 10:
		precipScore = 8.0 - (precip-2)*0.25
	case precip < 25:
		precipScore = 6.0 - (precip-10)*0.2
	default:
		precipScore = math.Max(0.0, 3.0-(precip-25)*0.06)
	}

	var humidityScore float64
	switch {
	case humidity >= 30 && humidity <= 70:
		humidityScore = 10.0
	case (humidity >= 20 && humidity < 30) || (humidity > 70 && humidity <= 80):
		humidityScore = 8.0
	case humidity < 20 || (humidity > 80 && humidity <= 90):
		humidityScore = 6.0
	default:
		humidityScore = 4.0
	}

	score := tempScore*0.50 + windScore*0.30 + precipScore*0.15 + humidityScore*0.05
	return clamp(score, 0, 10)
}

// heatIndex returns the NOAA Rothfusz apparent temperature in Celsius.
// The regression only applies above 80 F.
func heatIndex(tempC, humidity float64) float64 {
	tf := tempC*9/5 + 32
	if tf < 80 {
		return tempC
	}
	hi := -42.379 + 2.04901523*tf + 10.14333127*humidity -
		0.22475541*tf*humidity - 0.00683783*tf*tf -
		0.05481717*humidity*humidity + 0.00122874*tf*tf*humidity +
		0.00085282*tf*humidity*humidity - 0.00000199*tf*tf*humidity*humidity
	return (hi - 32) * 5 / 9
}

// windChill returns the NWS wind chill temperature in Celsius. It only
// applies below 10 C with wind above 5 km/h.
func windChill(tempC, windKmh float64) float64 {
	if tempC > 10 || windKmh < 5 {
		return tempC
	}
	mph := windKmh * 0.621371
	tf := tempC*9/5 + 32
	wc := 35.74 + 0.6215*tf - 35.75*math.Pow(mph, 0.16) + 0.4275*tf*math.Pow(mph, 0.16)
	return (wc - 32) * 5 / 9
}
