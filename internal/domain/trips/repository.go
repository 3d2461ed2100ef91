package trips

import "context"

// Repository abstracts trip persistence.
type Repository interface {
	Insert(ctx context.Context, trip Trip) (Trip, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Trip, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	GetByID(ctx context.Context, id string) (Trip, bool, error)
	Delete(ctx context.Context, id string) error
}
