package triprepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safeoutdoor/backend/internal/domain/trips"
)

func TestMemoryRepositoryOrderingAndPaging(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, trips.Trip{
			ID:        id,
			UserID:    1,
			Activity:  "hiking",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	page, err := repo.ListByUser(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "c", page[0].ID)
	require.Equal(t, "b", page[1].ID)

	page, err = repo.ListByUser(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "a", page[0].ID)

	count, err := repo.CountByUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	require.NoError(t, repo.Delete(ctx, "b"))
	_, found, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	require.False(t, found)
}
