package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safeoutdoor/backend/internal/domain/trips"
)

// TripsHandler exposes saved-trip CRUD for authenticated users.
type TripsHandler struct {
	tripsSvc trips.Service
	logger   *slog.Logger
}

// NewTripsHandler constructs the trips handler.
func NewTripsHandler(tripsSvc trips.Service, logger *slog.Logger) *TripsHandler {
	return &TripsHandler{
		tripsSvc: tripsSvc,
		logger:   logger.With("component", "http.trips_handler"),
	}
}

// Create saves a trip for the authenticated user.
func (h *TripsHandler) Create(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	var req trips.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	trip, err := h.tripsSvc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "trip_failed"))
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// List returns a page of the user's saved trips.
func (h *TripsHandler) List(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	var req trips.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	page, err := h.tripsSvc.List(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "trip_failed"))
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get fetches a single trip owned by the user.
func (h *TripsHandler) Get(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	trip, err := h.tripsSvc.Get(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err, "trip_failed"))
		return
	}
	c.JSON(http.StatusOK, trip)
}

// Delete removes a trip owned by the user.
func (h *TripsHandler) Delete(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	if err := h.tripsSvc.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		abortWithError(c, fromDomainError(err, "trip_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
