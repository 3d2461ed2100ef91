package trips

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/safeoutdoor/backend/pkg/errors"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service exposes saved-trip workflows. Every operation is scoped to
// the authenticated user; a trip owned by someone else reads as
// forbidden, not as absent.
type Service interface {
	Create(ctx context.Context, userID int64, req CreateRequest) (Trip, error)
	List(ctx context.Context, userID int64, req ListRequest) (ListResponse, error)
	Get(ctx context.Context, userID int64, tripID string) (Trip, error)
	Delete(ctx context.Context, userID int64, tripID string) error
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = defaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = maxLimit
	}
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "trips.service"),
	}
}

func (s *service) Create(ctx context.Context, userID int64, req CreateRequest) (Trip, error) {
	activity := strings.ToLower(strings.TrimSpace(req.Activity))
	if activity == "" {
		return Trip{}, apperrors.Wrap("invalid_input", "activity cannot be empty", nil)
	}
	if req.Location.Lat < -90 || req.Location.Lat > 90 || req.Location.Lon < -180 || req.Location.Lon > 180 {
		return Trip{}, apperrors.Wrap("invalid_input", "coordinates out of range", nil)
	}

	now := time.Now().UTC()
	trip := Trip{
		ID:        uuid.NewString(),
		UserID:    userID,
		Activity:  activity,
		Location:  req.Location,
		Analysis:  req.Analysis,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := s.repo.Insert(ctx, trip)
	if err != nil {
		return Trip{}, apperrors.Wrap("trip_error", "failed to save trip", err)
	}
	s.logger.Info("trip saved", "trip_id", saved.ID, "activity", saved.Activity)
	return saved, nil
}

func (s *service) List(ctx context.Context, userID int64, req ListRequest) (ListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return ListResponse{}, apperrors.Wrap("trip_error", "failed to list trips", err)
	}
	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return ListResponse{}, apperrors.Wrap("trip_error", "failed to count trips", err)
	}
	if items == nil {
		items = []Trip{}
	}
	return ListResponse{
		Trips:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *service) Get(ctx context.Context, userID int64, tripID string) (Trip, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return Trip{}, err
	}
	return trip, nil
}

func (s *service) Delete(ctx context.Context, userID int64, tripID string) error {
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tripID); err != nil {
		return apperrors.Wrap("trip_error", "failed to delete trip", err)
	}
	s.logger.Info("trip deleted", "trip_id", tripID)
	return nil
}

func (s *service) ownedTrip(ctx context.Context, userID int64, tripID string) (Trip, error) {
	if strings.TrimSpace(tripID) == "" {
		return Trip{}, apperrors.Wrap("invalid_input", "trip id cannot be empty", nil)
	}
	trip, found, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return Trip{}, apperrors.Wrap("trip_error", "failed to load trip", err)
	}
	if !found {
		return Trip{}, apperrors.Wrap("not_found", "trip not found", nil)
	}
	if trip.UserID != userID {
		return Trip{}, apperrors.Wrap("forbidden", "trip belongs to another user", nil)
	}
	return trip, nil
}
