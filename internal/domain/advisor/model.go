package advisor

// Config configures the insight generation.
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Input carries the analysis context the advisor summarizes.
type Input struct {
	Activity     string
	Location     string
	Score        float64
	Category     string
	AQI          int
	PM25         *float64
	TemperatureC *float64
	Warnings     []string
}
