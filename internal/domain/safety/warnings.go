package safety

import "strings"

// Warnings produces condition-specific advisories in a fixed order:
// air quality, particulates, UV, temperature, wind, precipitation,
// altitude, then activity-specific combinations. A nil reading skips
// its group entirely.
func Warnings(activity string, c Conditions) []string {
	warnings := []string{}
	act := strings.ToLower(activity)

	if c.AQI != nil {
		switch aqi := *c.AQI; {
		case aqi > 200:
			warnings = append(warnings, "Air quality is hazardous - outdoor activity not recommended")
		case aqi > 150:
			warnings = append(warnings, "Air quality unhealthy - limit outdoor exposure and take frequent breaks")
		case aqi > 100:
			warnings = append(warnings, "Air quality unhealthy for sensitive groups - consider N95 mask")
		}
	}

	if c.PM25 != nil && *c.PM25 > 35 {
		warnings = append(warnings, "High particulate matter - respiratory protection recommended")
	}

	if c.UVIndex != nil {
		switch uv := *c.UVIndex; {
		case uv >= 11:
			warnings = append(warnings, "Extreme UV - minimize sun exposure, full protection required")
		case uv >= 8:
			warnings = append(warnings, "Very high UV - sunscreen SPF 50+, hat, and protective clothing required")
		case uv >= 6:
			warnings = append(warnings, "High UV - sunscreen and hat recommended")
		}
	}

	if c.TemperatureC != nil {
		switch temp := *c.TemperatureC; {
		case temp > 38:
			warnings = append(warnings, "Extreme heat warning - high risk of heat stroke")
		case temp > 32:
			warnings = append(warnings, "High temperature - stay hydrated, take frequent breaks in shade")
		case temp < -15:
			warnings = append(warnings, "Extreme cold - risk of frostbite and hypothermia")
		case temp < 0:
			warnings = append(warnings, "Below freezing - dress in layers, protect extremities")
		}
	}

	if c.WindSpeedKmh != nil {
		switch wind := *c.WindSpeedKmh; {
		case wind > 60:
			warnings = append(warnings, "Dangerous wind speeds - outdoor activities extremely hazardous")
		case wind > 40:
			warnings = append(warnings, "High winds - exercise extreme caution, especially on exposed terrain")
		case wind > 25:
			warnings = append(warnings, "Moderate winds - be cautious on ridges and exposed areas")
		}
	}

	if c.PrecipitationMm != nil {
		switch precip := *c.PrecipitationMm; {
		case precip > 50:
			warnings = append(warnings, "Heavy precipitation forecast - trail conditions may be hazardous")
		case precip > 20:
			warnings = append(warnings, "Moderate rain expected - bring waterproof gear")
		}
	}

	if c.ElevationM != nil {
		switch elev := *c.ElevationM; {
		case elev > 4000:
			warnings = append(warnings, "Very high altitude - risk of altitude sickness, acclimatize gradually")
		case elev > 3000:
			warnings = append(warnings, "High altitude - monitor for symptoms of altitude sickness")
		case elev > 2500:
			warnings = append(warnings, "Moderate altitude - stay hydrated and pace yourself")
		}
	}

	aerobic := act == "running" || act == "cycling" || act == "trail_running"
	if aerobic && c.AQI != nil && *c.AQI > 100 {
		warnings = append(warnings, "Aerobic activity with poor air quality - consider indoor alternative")
	}

	climbing := act == "rock_climbing" || act == "mountaineering"
	if climbing && c.WindSpeedKmh != nil && *c.WindSpeedKmh > 30 {
		warnings = append(warnings, "Climbing in high winds is dangerous - consider postponing")
	}

	return warnings
}
