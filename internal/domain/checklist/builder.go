package checklist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/safeoutdoor/backend/internal/domain/safety"
)

// Build generates the gear checklist for an activity under the given
// conditions. Missing readings assume mild defaults (AQI 50, UV 5,
// 20 C, 10 km/h wind, no precipitation, sea level).
//
// Duplicate items keep their first occurrence; base items therefore win
// over conditional additions. The result is sorted with required items
// first, then by category and item name.
func Build(activity string, c safety.Conditions) []Item {
	activity = strings.ToLower(activity)
	items := BaseFor(activity)

	aqi := 50
	if c.AQI != nil {
		aqi = *c.AQI
	}
	uv := 5.0
	if c.UVIndex != nil {
		uv = *c.UVIndex
	}
	elevation := 0.0
	if c.ElevationM != nil {
		elevation = *c.ElevationM
	}
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

	if aqi > 150 {
		items = append(items, Item{
			Item:     "N95 or P100 respirator mask",
			Required: true,
			Reason:   fmt.Sprintf("Air quality is unhealthy (AQI %d)", aqi),
			Category: "respiratory",
		})
	} else if aqi > 100 {
		items = append(items, Item{
			Item:     "N95 mask (especially for sensitive individuals)",
			Required: false,
			Reason:   fmt.Sprintf("Air quality is moderate to unhealthy (AQI %d)", aqi),
			Category: "respiratory",
		})
	}
	if aqi > 150 {
		items = append(items, Item{
			Item:     "Eye drops or protective eyewear",
			Required: false,
			Reason:   "Poor air quality can irritate eyes",
			Category: "respiratory",
		})
	}

	if temp > 35 {
		items = append(items,
			Item{Item: "Extra water (4-6L minimum)", Required: true, Reason: fmt.Sprintf("Extreme heat forecast (%g°C)", temp), Category: "hydration"},
			Item{Item: "Electrolyte tablets or sports drinks", Required: true, Reason: "High risk of dehydration and electrolyte loss", Category: "hydration"},
			Item{Item: "Cooling towel or bandana", Required: false, Reason: "Helps manage body temperature", Category: "clothing"},
			Item{Item: "Wide-brimmed hat", Required: true, Reason: "Protection from intense sun", Category: "clothing"},
		)
	} else if temp > 30 {
		items = append(items,
			Item{Item: "Extra water (3L minimum)", Required: true, Reason: fmt.Sprintf("High temperatures forecast (%g°C)", temp), Category: "hydration"},
			Item{Item: "Hat with sun protection", Required: true, Reason: "Prevent heat exhaustion", Category: "clothing"},
		)
	}

	switch {
	case temp < -10:
		items = append(items,
			Item{Item: "Insulated winter jacket (down or synthetic)", Required: true, Reason: fmt.Sprintf("Extreme cold forecast (%g°C)", temp), Category: "clothing"},
			Item{Item: "Winter gloves (with liners)", Required: true, Reason: "Prevent frostbite", Category: "clothing"},
			Item{Item: "Balaclava or face mask", Required: true, Reason: "Protect face from freezing temperatures", Category: "clothing"},
			Item{Item: "Insulated boots (rated for temperature)", Required: true, Reason: "Prevent frostbite on feet", Category: "clothing"},
			Item{Item: "Emergency bivouac sack", Required: true, Reason: "Emergency shelter in extreme cold", Category: "safety"},
		)
	case temp < 0:
		items = append(items,
			Item{Item: "Winter jacket and layers", Required: true, Reason: fmt.Sprintf("Below freezing temperatures (%g°C)", temp), Category: "clothing"},
			Item{Item: "Gloves and warm hat", Required: true, Reason: "Protect extremities from cold", Category: "clothing"},
			Item{Item: "Hand warmers", Required: false, Reason: "Additional warmth for hands", Category: "comfort"},
		)
	case temp < 10:
		items = append(items,
			Item{Item: "Light jacket or fleece", Required: true, Reason: fmt.Sprintf("Cool temperatures (%g°C)", temp), Category: "clothing"},
			Item{Item: "Long sleeves base layer", Required: false, Reason: "Layering for warmth", Category: "clothing"},
		)
	}

	switch {
	case uv >= 11:
		items = append(items,
			Item{Item: "Sunscreen SPF 50+ (reapply every 2 hours)", Required: true, Reason: fmt.Sprintf("Extreme UV index (%g)", uv), Category: "sun_protection"},
			Item{Item: "UV-blocking sunglasses", Required: true, Reason: "Protect eyes from intense UV", Category: "sun_protection"},
			Item{Item: "Sun-protective clothing (UPF 50+)", Required: true, Reason: "Minimize skin exposure to UV", Category: "clothing"},
			Item{Item: "Lip balm with SPF", Required: false, Reason: "Protect lips from sun damage", Category: "sun_protection"},
		)
	case uv >= 8:
		items = append(items,
			Item{Item: "Sunscreen SPF 50+", Required: true, Reason: fmt.Sprintf("Very high UV index (%g)", uv), Category: "sun_protection"},
			Item{Item: "Sunglasses with UV protection", Required: true, Reason: "Protect eyes from UV damage", Category: "sun_protection"},
			Item{Item: "Hat with brim or neck flap", Required: true, Reason: "Shield face and neck from sun", Category: "clothing"},
		)
	case uv >= 6:
		items = append(items, Item{
			Item:     "Sunscreen SPF 30+",
			Required: true,
			Reason:   fmt.Sprintf("High UV index (%g)", uv),
			Category: "sun_protection",
		})
	}

	switch {
	case wind > 60:
		items = append(items,
			Item{Item: "Sturdy windproof shell jacket", Required: true, Reason: fmt.Sprintf("Dangerous wind speeds (%g km/h)", wind), Category: "clothing"},
			Item{Item: "Goggles or protective eyewear", Required: true, Reason: "Protect eyes from wind and debris", Category: "safety"},
		)
	case wind > 40:
		items = append(items, Item{
			Item:     "Windproof jacket",
			Required: true,
			Reason:   fmt.Sprintf("High winds forecast (%g km/h)", wind),
			Category: "clothing",
		})
	case wind > 25:
		items = append(items, Item{
			Item:     "Light windbreaker",
			Required: false,
			Reason:   fmt.Sprintf("Moderate winds (%g km/h)", wind),
			Category: "clothing",
		})
	}

	switch {
	case precip > 50:
		items = append(items,
			Item{Item: "Waterproof rain jacket and pants", Required: true, Reason: fmt.Sprintf("Heavy rain forecast (%gmm)", precip), Category: "rain_gear"},
			Item{Item: "Waterproof backpack cover or dry bags", Required: true, Reason: "Protect gear from getting soaked", Category: "rain_gear"},
			Item{Item: "Extra dry clothes in waterproof bag", Required: true, Reason: "Change if primary clothes get wet", Category: "clothing"},
			Item{Item: "Waterproof boots or gaiters", Required: true, Reason: "Keep feet dry", Category: "rain_gear"},
		)
	case precip > 20:
		items = append(items,
			Item{Item: "Rain jacket", Required: true, Reason: fmt.Sprintf("Moderate rain forecast (%gmm)", precip), Category: "rain_gear"},
			Item{Item: "Waterproof backpack cover", Required: false, Reason: "Protect gear from rain", Category: "rain_gear"},
		)
	case precip > 5:
		items = append(items, Item{
			Item:     "Light rain jacket",
			Required: false,
			Reason:   fmt.Sprintf("Light rain possible (%gmm)", precip),
			Category: "rain_gear",
		})
	}

	switch {
	case elevation > 4000:
		items = append(items,
			Item{Item: "Altitude sickness medication (Diamox)", Required: true, Reason: fmt.Sprintf("Very high altitude (%gm)", elevation), Category: "medical"},
			Item{Item: "Pulse oximeter", Required: false, Reason: "Monitor oxygen saturation", Category: "medical"},
			Item{Item: "Extra high-energy snacks", Required: true, Reason: "Body burns more calories at high altitude", Category: "nutrition"},
		)
	case elevation > 3000:
		items = append(items, Item{
			Item:     "Altitude sickness medication (optional)",
			Required: false,
			Reason:   fmt.Sprintf("High altitude (%gm)", elevation),
			Category: "medical",
		})
	}

	aerobic := activity == "running" || activity == "trail_running" || activity == "cycling"
	if aerobic && aqi > 100 {
		items = append(items, Item{
			Item:     "Consider indoor alternative",
			Required: false,
			Reason:   "Aerobic activity in poor air quality is hazardous",
			Category: "safety",
		})
	}

	climbing := activity == "rock_climbing" || activity == "mountaineering"
	if climbing && wind > 40 {
		items = append(items, Item{
			Item:     "Consider postponing activity",
			Required: false,
			Reason:   "Climbing in high winds is extremely dangerous",
			Category: "safety",
		})
	}

	if temp > 32 || temp < -5 || aqi > 150 {
		items = append(items, Item{
			Item:     "Emergency communication device (satellite phone/PLB)",
			Required: false,
			Reason:   "Hazardous conditions increase emergency risk",
			Category: "safety",
		})
	}

	return sortItems(dedupe(items))
}

func dedupe(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		key := strings.ToLower(it.Item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

func sortItems(items []Item) []Item {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Required != b.Required {
			return a.Required
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Item < b.Item
	})
	return items
}
