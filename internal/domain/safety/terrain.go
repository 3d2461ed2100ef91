package safety

import (
	"math"
	"strings"
)

// TerrainScore computes the altitude sub-score (0-10). The base curve
// follows the Lake Louise altitude zones, then an activity adjustment
// accounts for aerobic demand: technical climbers tolerate moderate
// altitude better, high-aerobic activities suffer above 1500m.
//
// Nil or negative elevation defaults to sea level. Elevation is capped
// at 8850m.
func TerrainScore(elevationM *float64, activity string) float64 {
	elev := 0.0
	if elevationM != nil && *elevationM >= 0 {
		elev = *elevationM
	}
	elev = math.Min(elev, 8850)

	var base float64
	switch {
	case elev < 1500:
		base = 10.0
	case elev < 2500:
		base = 9.5 - (elev-1500)/1000*0.5
	case elev < 3500:
		base = 8.5 - (elev-2500)/1000*1.5
	case elev < 5000:
		base = 6.5 - (elev-3500)/1500*2.5
	default:
		base = math.Max(0.0, 3.5-(elev-5000)/1000*0.9)
	}

	var adjustment float64
	switch strings.ToLower(activity) {
	case "mountaineering", "rock_climbing", "alpinism":
		if elev > 3500 {
			adjustment = -0.5
		} else {
			adjustment = 0.5
		}
	case "running", "trail_running", "cycling":
		switch {
		case elev > 2000:
			adjustment = -1.0
		case elev > 1500:
			adjustment = -0.5
		}
	}

	return clamp(base+adjustment, 0, 10)
}
