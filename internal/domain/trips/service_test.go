package trips

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/safeoutdoor/backend/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memoryRepo struct {
	mu    sync.Mutex
	trips map[string]Trip
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{trips: make(map[string]Trip)}
}

func (m *memoryRepo) Insert(_ context.Context, trip Trip) (Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return trip, nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID int64, limit, offset int) ([]Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Trip
	for _, trip := range m.trips {
		if trip.UserID == userID {
			out = append(out, trip)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, trip := range m.trips {
		if trip.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (Trip, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[id]
	return trip, ok, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.trips, id)
	return nil
}

func TestCreateAndGetTrip(t *testing.T) {
	svc := NewService(Config{}, newMemoryRepo(), newTestLogger())

	created, err := svc.Create(context.Background(), 7, CreateRequest{
		Activity: "Hiking",
		Location: Location{Lat: 47.6, Lon: -122.3, Name: "Mount Si"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "hiking", created.Activity)
	require.Equal(t, int64(7), created.UserID)

	got, err := svc.Get(context.Background(), 7, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Mount Si", got.Location.Name)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(Config{}, newMemoryRepo(), newTestLogger())

	_, err := svc.Create(context.Background(), 7, CreateRequest{Activity: "  "})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Create(context.Background(), 7, CreateRequest{
		Activity: "hiking",
		Location: Location{Lat: 91},
	})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestOwnershipIsEnforced(t *testing.T) {
	svc := NewService(Config{}, newMemoryRepo(), newTestLogger())

	created, err := svc.Create(context.Background(), 1, CreateRequest{Activity: "cycling"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 2, created.ID)
	require.True(t, apperrors.IsCode(err, "forbidden"))

	err = svc.Delete(context.Background(), 2, created.ID)
	require.True(t, apperrors.IsCode(err, "forbidden"))

	// Owner can still read and remove it.
	require.NoError(t, svc.Delete(context.Background(), 1, created.ID))

	_, err = svc.Get(context.Background(), 1, created.ID)
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestListPagination(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(Config{DefaultLimit: 2, MaxLimit: 3}, repo, newTestLogger())

	for _, activity := range []string{"hiking", "cycling", "running", "climbing"} {
		_, err := svc.Create(context.Background(), 5, CreateRequest{Activity: activity})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), 6, CreateRequest{Activity: "skiing"})
	require.NoError(t, err)

	page, err := svc.List(context.Background(), 5, ListRequest{})
	require.NoError(t, err)
	require.Len(t, page.Trips, 2)
	require.Equal(t, 4, page.Total)
	require.Equal(t, 2, page.Limit)

	page, err = svc.List(context.Background(), 5, ListRequest{Limit: 50, Offset: 3})
	require.NoError(t, err)
	require.Len(t, page.Trips, 1)
	require.Equal(t, 3, page.Limit)
	require.Equal(t, 3, page.Offset)

	page, err = svc.List(context.Background(), 99, ListRequest{})
	require.NoError(t, err)
	require.Empty(t, page.Trips)
	require.Equal(t, 0, page.Total)
}
