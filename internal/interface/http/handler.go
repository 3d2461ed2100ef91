package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safeoutdoor/backend/internal/domain/forecast"
	"github.com/safeoutdoor/backend/internal/domain/report"
)

// Handler wires the HTTP transport to the analysis domain services.
type Handler struct {
	reportSvc   report.Service
	forecastSvc forecast.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(reportSvc report.Service, forecastSvc forecast.Service, logger *slog.Logger) *Handler {
	return &Handler{
		reportSvc:   reportSvc,
		forecastSvc: forecastSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Analyze runs the full safety analysis for an activity at a location.
func (h *Handler) Analyze(c *gin.Context) {
	var req report.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.reportSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "analyze_failed"))
		return
	}
	resp.RequestID = requestID(c)

	c.JSON(http.StatusOK, resp)
}

type forecastQuery struct {
	Lat  float64 `form:"lat" json:"lat"`
	Lon  float64 `form:"lon" json:"lon"`
	Days int     `form:"days" json:"days"`
}

// ForecastGet serves the multi-day outlook from query parameters.
func (h *Handler) ForecastGet(c *gin.Context) {
	var query forecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.serveForecast(c, query)
}

// ForecastPost serves the multi-day outlook from a JSON body.
func (h *Handler) ForecastPost(c *gin.Context) {
	var query forecastQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.serveForecast(c, query)
}

func (h *Handler) serveForecast(c *gin.Context, query forecastQuery) {
	resp, err := h.forecastSvc.Forecast(c.Request.Context(), query.Lat, query.Lon, query.Days)
	if err != nil {
		abortWithError(c, fromDomainError(err, "forecast_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TrendingActivities returns the most frequently analyzed activities.
func (h *Handler) TrendingActivities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
			return
		}
		limit = parsed
	}

	items, err := h.reportSvc.TrendingActivities(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, fromDomainError(err, "stats_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": items})
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
