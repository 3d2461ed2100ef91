package triprepo

import (
	"context"
	"sort"
	"sync"

	"github.com/safeoutdoor/backend/internal/domain/trips"
)

// MemoryRepository provides an in-memory trip store for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	trips map[string]trips.Trip
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{trips: make(map[string]trips.Trip)}
}

// Insert stores the trip record.
func (r *MemoryRepository) Insert(_ context.Context, trip trips.Trip) (trips.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips[trip.ID] = trip
	return trip, nil
}

// ListByUser returns a page of the user's trips, newest first.
func (r *MemoryRepository) ListByUser(_ context.Context, userID int64, limit, offset int) ([]trips.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []trips.Trip
	for _, trip := range r.trips {
		if trip.UserID == userID {
			out = append(out, trip)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CountByUser returns the user's total trip count.
func (r *MemoryRepository) CountByUser(_ context.Context, userID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, trip := range r.trips {
		if trip.UserID == userID {
			count++
		}
	}
	return count, nil
}

// GetByID fetches by ID.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (trips.Trip, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	trip, ok := r.trips[id]
	return trip, ok, nil
}

// Delete removes the trip.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.trips, id)
	return nil
}

var _ trips.Repository = (*MemoryRepository)(nil)
