package checklist

// Base gear lists per activity. Unknown activities fall back to the
// hiking list.
var baseChecklists = map[string][]Item{
	"hiking": {
		{Item: "Hiking boots or trail shoes", Required: true, Reason: "Proper footwear for terrain", Category: "clothing"},
		{Item: "Backpack (20-30L)", Required: true, Reason: "Carry gear and supplies", Category: "gear"},
		{Item: "Water (2L minimum)", Required: true, Reason: "Stay hydrated", Category: "hydration"},
		{Item: "Trail map or GPS device", Required: true, Reason: "Navigation", Category: "navigation"},
		{Item: "First aid kit", Required: true, Reason: "Emergency medical care", Category: "medical"},
		{Item: "Sunscreen", Required: true, Reason: "Sun protection", Category: "sun_protection"},
		{Item: "Snacks or energy bars", Required: true, Reason: "Maintain energy levels", Category: "nutrition"},
		{Item: "Whistle", Required: false, Reason: "Emergency signaling", Category: "safety"},
		{Item: "Headlamp or flashlight", Required: false, Reason: "If return after dark", Category: "safety"},
		{Item: "Trekking poles", Required: false, Reason: "Stability and reduced joint impact", Category: "gear"},
	},
	"trail_running": {
		{Item: "Trail running shoes", Required: true, Reason: "Proper footwear for terrain", Category: "clothing"},
		{Item: "Hydration vest or handheld bottle", Required: true, Reason: "Stay hydrated while moving", Category: "hydration"},
		{Item: "Phone with emergency contacts", Required: true, Reason: "Emergency communication", Category: "safety"},
		{Item: "Energy gels or chews", Required: true, Reason: "Quick energy during run", Category: "nutrition"},
		{Item: "Sunscreen", Required: true, Reason: "Sun protection", Category: "sun_protection"},
		{Item: "Basic first aid supplies", Required: false, Reason: "Treat minor injuries", Category: "medical"},
		{Item: "Whistle", Required: false, Reason: "Emergency signaling", Category: "safety"},
	},
	"running": {
		{Item: "Running shoes", Required: true, Reason: "Proper footwear", Category: "clothing"},
		{Item: "Water bottle", Required: true, Reason: "Hydration", Category: "hydration"},
		{Item: "Phone", Required: true, Reason: "Emergency communication", Category: "safety"},
		{Item: "Sunscreen", Required: true, Reason: "Sun protection", Category: "sun_protection"},
	},
	"cycling": {
		{Item: "Helmet", Required: true, Reason: "Head protection (legal requirement)", Category: "safety"},
		{Item: "Water bottles (2x)", Required: true, Reason: "Stay hydrated", Category: "hydration"},
		{Item: "Bike repair kit (tire levers, patches)", Required: true, Reason: "Fix flat tires", Category: "gear"},
		{Item: "Spare tube", Required: true, Reason: "Quick tire replacement", Category: "gear"},
		{Item: "Pump or CO2 inflator", Required: true, Reason: "Inflate repaired tire", Category: "gear"},
		{Item: "Multi-tool", Required: true, Reason: "Bike adjustments", Category: "gear"},
		{Item: "Sunscreen", Required: true, Reason: "Sun protection", Category: "sun_protection"},
		{Item: "Sunglasses", Required: false, Reason: "Eye protection and visibility", Category: "sun_protection"},
		{Item: "Phone", Required: true, Reason: "Emergency communication", Category: "safety"},
		{Item: "Energy bars", Required: false, Reason: "Maintain energy on long rides", Category: "nutrition"},
	},
	"camping": {
		{Item: "Tent with rain fly", Required: true, Reason: "Shelter", Category: "shelter"},
		{Item: "Sleeping bag (temperature rated)", Required: true, Reason: "Warmth at night", Category: "shelter"},
		{Item: "Sleeping pad or mattress", Required: true, Reason: "Insulation and comfort", Category: "shelter"},
		{Item: "Camping stove and fuel", Required: true, Reason: "Cook meals", Category: "cooking"},
		{Item: "Cookware and utensils", Required: true, Reason: "Prepare and eat food", Category: "cooking"},
		{Item: "Food (planned meals)", Required: true, Reason: "Nutrition", Category: "nutrition"},
		{Item: "Water filter or purification tablets", Required: true, Reason: "Safe drinking water", Category: "hydration"},
		{Item: "Water containers (3L+)", Required: true, Reason: "Water storage", Category: "hydration"},
		{Item: "Headlamp with extra batteries", Required: true, Reason: "Night visibility", Category: "safety"},
		{Item: "First aid kit (comprehensive)", Required: true, Reason: "Medical emergencies", Category: "medical"},
		{Item: "Multi-tool or knife", Required: true, Reason: "Various tasks", Category: "gear"},
		{Item: "Fire starter (matches/lighter)", Required: true, Reason: "Cooking and warmth", Category: "gear"},
		{Item: "Trash bags", Required: true, Reason: "Leave no trace", Category: "gear"},
		{Item: "Bear canister or bag (if required)", Required: false, Reason: "Food storage in bear country", Category: "safety"},
	},
	"rock_climbing": {
		{Item: "Climbing shoes", Required: true, Reason: "Footwork and grip", Category: "clothing"},
		{Item: "Harness", Required: true, Reason: "Safety system", Category: "safety"},
		{Item: "Helmet", Required: true, Reason: "Head protection from falls/rockfall", Category: "safety"},
		{Item: "Rope (appropriate length/type)", Required: true, Reason: "Protection system", Category: "safety"},
		{Item: "Belay device", Required: true, Reason: "Control rope during belay", Category: "safety"},
		{Item: "Carabiners (locking and non-locking)", Required: true, Reason: "Connect protection", Category: "safety"},
		{Item: "Quickdraws (6-12)", Required: true, Reason: "Clip rope to protection", Category: "safety"},
		{Item: "Chalk bag", Required: false, Reason: "Hand grip", Category: "gear"},
		{Item: "First aid kit", Required: true, Reason: "Emergency medical care", Category: "medical"},
		{Item: "Water (2L+)", Required: true, Reason: "Hydration", Category: "hydration"},
	},
	"mountaineering": {
		{Item: "Mountaineering boots (crampon-compatible)", Required: true, Reason: "Protect feet in harsh conditions", Category: "clothing"},
		{Item: "Crampons", Required: true, Reason: "Ice and snow traction", Category: "gear"},
		{Item: "Ice axe", Required: true, Reason: "Self-arrest and climbing", Category: "gear"},
		{Item: "Helmet", Required: true, Reason: "Rockfall and ice fall protection", Category: "safety"},
		{Item: "Harness and rope", Required: true, Reason: "Glacier travel and protection", Category: "safety"},
		{Item: "Insulated jacket (down or synthetic)", Required: true, Reason: "Warmth at altitude", Category: "clothing"},
		{Item: "Layers (base, mid, shell)", Required: true, Reason: "Temperature regulation", Category: "clothing"},
		{Item: "Goggles and sunglasses", Required: true, Reason: "Snow blindness prevention", Category: "sun_protection"},
		{Item: "Sunscreen SPF 50+", Required: true, Reason: "UV reflection from snow", Category: "sun_protection"},
		{Item: "Headlamp", Required: true, Reason: "Early starts and emergencies", Category: "safety"},
		{Item: "Emergency bivouac gear", Required: true, Reason: "Unexpected night out", Category: "safety"},
		{Item: "First aid kit (comprehensive)", Required: true, Reason: "Medical emergencies", Category: "medical"},
		{Item: "Water (3L+) and insulated bottle", Required: true, Reason: "Prevent freezing", Category: "hydration"},
	},
}

// BaseFor returns a fresh copy of the base checklist for an activity.
func BaseFor(activity string) []Item {
	base, ok := baseChecklists[activity]
	if !ok {
		base = baseChecklists["hiking"]
	}
	out := make([]Item, len(base))
	copy(out, base)
	return out
}
