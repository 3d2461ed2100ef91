// Package checklist generates activity-specific gear checklists,
// starting from a per-activity base list and layering on items driven
// by the forecast conditions.
package checklist

// Item is one gear or preparation recommendation.
type Item struct {
	Item     string `json:"item"`
	Required bool   `json:"required"`
	Reason   string `json:"reason"`
	Category string `json:"category"`
}
