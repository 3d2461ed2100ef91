package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safeoutdoor/backend/internal/domain/auth"
	"github.com/safeoutdoor/backend/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authHandler *AuthHandler, tripsHandler *TripsHandler, authSvc auth.Service, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
		corsMiddleware(cfg.HTTP.CORSOrigins),
	)

	router.GET("/healthz", handler.Healthz)

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", handler.Analyze)
		api.GET("/forecast", handler.ForecastGet)
		api.POST("/forecast", handler.ForecastPost)
		api.GET("/stats/activities", handler.TrendingActivities)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/profile", authMiddleware(authSvc), authHandler.Profile)
		}

		tripsGroup := api.Group("/trips", authMiddleware(authSvc))
		{
			tripsGroup.POST("", tripsHandler.Create)
			tripsGroup.GET("", tripsHandler.List)
			tripsGroup.GET("/:id", tripsHandler.Get)
			tripsGroup.DELETE("/:id", tripsHandler.Delete)
		}
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", requestID(c),
			"latency_ms", latency.Milliseconds())
	}
}
