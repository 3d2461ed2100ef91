package trips

import (
	"encoding/json"
	"time"
)

// Config bounds trip listing.
type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// Location pins a trip to a point on the map.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

// Trip is a saved analysis for a planned outing.
type Trip struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"-"`
	Activity  string          `json:"activity"`
	Location  Location        `json:"location"`
	Analysis  json.RawMessage `json:"analysis,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateRequest captures the save-trip payload.
type CreateRequest struct {
	Activity string          `json:"activity" binding:"required"`
	Location Location        `json:"location"`
	Analysis json.RawMessage `json:"analysis,omitempty"`
}

// ListRequest pages through a user's saved trips.
type ListRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ListResponse wraps a page of trips.
type ListResponse struct {
	Trips  []Trip `json:"trips"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
