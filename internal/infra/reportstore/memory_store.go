package reportstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/safeoutdoor/backend/internal/domain/report"
)

type cachedReport struct {
	payload   report.Report
	expiresAt time.Time
}

// MemoryStore is an in-memory report store for tests and development.
type MemoryStore struct {
	mu       sync.RWMutex
	reports  map[string]cachedReport
	trending map[string]int64
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports:  make(map[string]cachedReport),
		trending: make(map[string]int64),
	}
}

// GetReport implements report.Store.
func (s *MemoryStore) GetReport(_ context.Context, key string) (report.Report, bool, error) {
	s.mu.RLock()
	cached, ok := s.reports[key]
	s.mu.RUnlock()
	if !ok {
		return report.Report{}, false, nil
	}
	if hasExpired(cached.expiresAt) {
		s.mu.Lock()
		delete(s.reports, key)
		s.mu.Unlock()
		return report.Report{}, false, nil
	}
	return cached.payload, true, nil
}

// SetReport caches the report with optional TTL.
func (s *MemoryStore) SetReport(_ context.Context, key string, rep report.Report, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.reports[key] = cachedReport{payload: rep, expiresAt: exp}
	return nil
}

// IncrActivity bumps the trending counter for an activity.
func (s *MemoryStore) IncrActivity(_ context.Context, activity string) error {
	if activity == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending[activity]++
	return nil
}

// TopActivities returns the most analyzed activities.
func (s *MemoryStore) TopActivities(_ context.Context, limit int) ([]report.ActivityCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.trending)
	}
	out := make([]report.ActivityCount, 0, len(s.trending))
	for activity, count := range s.trending {
		out = append(out, report.ActivityCount{Activity: activity, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Activity < out[j].Activity
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ report.Store = (*MemoryStore)(nil)
