package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/safeoutdoor/backend/internal/domain/advisor"
	"github.com/safeoutdoor/backend/internal/domain/auth"
	"github.com/safeoutdoor/backend/internal/domain/report"
	"github.com/safeoutdoor/backend/internal/domain/trips"
	"github.com/safeoutdoor/backend/internal/infra/airquality/openaq"
	"github.com/safeoutdoor/backend/internal/infra/config"
	"github.com/safeoutdoor/backend/internal/infra/elevation/openelevation"
	"github.com/safeoutdoor/backend/internal/infra/llm/chatgpt"
	"github.com/safeoutdoor/backend/internal/infra/reportstore"
	"github.com/safeoutdoor/backend/internal/infra/triprepo"
	"github.com/safeoutdoor/backend/internal/infra/userrepo"
	"github.com/safeoutdoor/backend/internal/infra/weather/openmeteo"
)

func provideAdvisorConfig(cfg *config.Config) advisor.Config {
	return advisor.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}
}

// provideChatClient returns nil when no API key is configured; the
// advisor degrades to canned summaries in that case.
func provideChatClient(cfg *config.Config, logger *slog.Logger) advisor.ChatClient {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, advisor will use fallback summaries")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("failed to create chatgpt client, advisor will use fallback summaries", "error", err)
		return nil
	}
	return client
}

func provideReportConfig(cfg *config.Config) report.Config {
	return report.Config{
		CacheTTL:         cfg.Report.CacheTTL,
		MaxForecastHours: cfg.Report.MaxForecastHours,
	}
}

func provideTripsConfig(cfg *config.Config) trips.Config {
	return trips.Config{
		DefaultLimit: cfg.Trips.DefaultLimit,
		MaxLimit:     cfg.Trips.MaxLimit,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func provideWeatherClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.Providers.WeatherBaseURL, cfg.Providers.Timeout)
}

func provideAirClient(cfg *config.Config) *openaq.Client {
	return openaq.NewClient(cfg.Providers.AirBaseURL, cfg.Providers.AirAPIKey, cfg.Providers.AirRadiusKm, cfg.Providers.Timeout)
}

func provideElevationClient(cfg *config.Config) *openelevation.Client {
	return openelevation.NewClient(cfg.Providers.ElevationBaseURL, cfg.Providers.Timeout)
}

func provideReportStore(cfg *config.Config, logger *slog.Logger) report.Store {
	if cfg.Report.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return reportstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return reportstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey report store enabled", "addr", cfg.Report.Valkey.Addr)
			return reportstore.NewValkeyStore(client, cfg.Report.Valkey.Prefix)
		}
	}
	return reportstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Report.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Report.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Report.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

// providePostgresPool returns nil when no DSN is configured or the
// database is unreachable; repositories fall back to process memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideAuthRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideTripRepository(pool *pgxpool.Pool) trips.Repository {
	if pool == nil {
		return triprepo.NewMemoryRepository()
	}
	return triprepo.NewPostgresRepository(pool)
}
