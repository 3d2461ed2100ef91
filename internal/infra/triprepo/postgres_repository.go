package triprepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safeoutdoor/backend/internal/domain/trips"
)

// PostgresRepository persists trips in Postgres. Location and analysis
// payloads live in jsonb columns.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert stores a new trip row.
func (r *PostgresRepository) Insert(ctx context.Context, trip trips.Trip) (trips.Trip, error) {
	location, err := json.Marshal(trip.Location)
	if err != nil {
		return trips.Trip{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO trips (id, user_id, activity, location, analysis, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, activity, location, analysis, created_at, updated_at
	`, trip.ID, trip.UserID, trip.Activity, location, []byte(trip.Analysis), trip.CreatedAt, trip.UpdatedAt)
	return scanTrip(row)
}

// ListByUser returns a page of the user's trips, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]trips.Trip, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, activity, location, analysis, created_at, updated_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []trips.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, trip)
	}
	return out, rows.Err()
}

// CountByUser returns the user's total trip count.
func (r *PostgresRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM trips WHERE user_id = $1
	`, userID).Scan(&count)
	return count, err
}

// GetByID fetches by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (trips.Trip, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, activity, location, analysis, created_at, updated_at
		FROM trips
		WHERE id = $1
	`, id)
	trip, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return trips.Trip{}, false, nil
	}
	if err != nil {
		return trips.Trip{}, false, err
	}
	return trip, true, nil
}

// Delete removes the trip row.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (trips.Trip, error) {
	var (
		trip     trips.Trip
		location []byte
		analysis []byte
		created  time.Time
		updated  time.Time
	)
	if err := row.Scan(&trip.ID, &trip.UserID, &trip.Activity, &location, &analysis, &created, &updated); err != nil {
		return trips.Trip{}, err
	}
	if len(location) > 0 {
		if err := json.Unmarshal(location, &trip.Location); err != nil {
			return trips.Trip{}, err
		}
	}
	if len(analysis) > 0 {
		trip.Analysis = json.RawMessage(analysis)
	}
	trip.CreatedAt = created.UTC()
	trip.UpdatedAt = updated.UTC()
	return trip, nil
}

var _ trips.Repository = (*PostgresRepository)(nil)
