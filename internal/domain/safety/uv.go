package safety

import "math"

// UVScore maps the WHO UV index onto a 0-10 sub-score. A nil reading
// assumes moderate UV (index 5). Inputs are clamped to [0, 20].
func UVScore(uvIndex *float64) float64 {
	uv := 5.0
	if uvIndex != nil {
		uv = *uvIndex
	}
	uv = clamp(uv, 0, 20)

	switch {
	case uv <= 2:
		return 10.0
	case uv <= 5:
		return 9.5 - (uv-2)*0.33
	case uv <= 7:
		return 8.0 - (uv-5)*0.75
	case uv <= 10:
		return 6.0 - (uv-7)*0.67
	default:
		return math.Max(0.0, 3.5-(uv-10)*0.35)
	}
}
