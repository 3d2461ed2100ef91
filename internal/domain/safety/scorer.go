package safety

// Compute produces the overall safety score for an activity under the
// given conditions. The category boundary check uses the unrounded
// weighted total; the reported score and factor scores are rounded to
// one decimal for display.
func Compute(activity string, c Conditions) Score {
	airScore := AirQualityScore(c.AQI, c.PM25)
	weatherScore := WeatherScore(c)
	uvScore := UVScore(c.UVIndex)
	terrainScore := TerrainScore(c.ElevationM, activity)

	total := airScore*AirQualityWeight +
		weatherScore*WeatherWeight +
		uvScore*UVWeight +
		terrainScore*TerrainWeight
	total = clamp(total, 0, 10)

	var category, advice string
	switch {
	case total >= 8.5:
		category = "Excellent"
		advice = "Perfect conditions for outdoor activities"
	case total >= 7.0:
		category = "Good"
		advice = "Good conditions with minor considerations"
	case total >= 5.5:
		category = "Fair"
		advice = "Acceptable conditions - take precautions"
	case total >= 4.0:
		category = "Caution"
		advice = "Challenging conditions - extra precautions needed"
	default:
		category = "Poor"
		advice = "Unsafe conditions - consider postponing"
	}

	return Score{
		Overall:  round1(total),
		Category: category,
		Advice:   advice,
		RiskFactors: []Factor{
			{Factor: "Air Quality", Score: round1(airScore), Weight: AirQualityWeight},
			{Factor: "Weather", Score: round1(weatherScore), Weight: WeatherWeight},
			{Factor: "UV Exposure", Score: round1(uvScore), Weight: UVWeight},
			{Factor: "Terrain", Score: round1(terrainScore), Weight: TerrainWeight},
		},
		Warnings: Warnings(activity, c),
	}
}
