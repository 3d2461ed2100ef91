package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safeoutdoor/backend/internal/domain/auth"
)

// AuthHandler exposes account and token endpoints.
type AuthHandler struct {
	authSvc auth.Service
	logger  *slog.Logger
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(authSvc auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
		logger:  logger.With("component", "http.auth_handler"),
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	view, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "auth_failed"))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "auth_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh rotates the token pair using a refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortWithError(c, fromDomainError(err, "auth_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the authenticated user's account view.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	view, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, fromDomainError(err, "auth_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}
