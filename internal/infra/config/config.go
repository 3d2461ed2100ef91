package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Providers ProvidersConfig `yaml:"providers"`
	LLM       LLMConfig       `yaml:"llm"`
	Report    ReportConfig    `yaml:"report"`
	Trips     TripsConfig     `yaml:"trips"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Auth      AuthConfig      `yaml:"auth"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	CORSOrigins  []string        `yaml:"corsOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ProvidersConfig points at the external data feeds.
type ProvidersConfig struct {
	WeatherBaseURL   string        `yaml:"weatherBaseUrl"`
	AirBaseURL       string        `yaml:"airBaseUrl"`
	AirAPIKey        string        `yaml:"airApiKey"`
	AirRadiusKm      int           `yaml:"airRadiusKm"`
	ElevationBaseURL string        `yaml:"elevationBaseUrl"`
	Timeout          time.Duration `yaml:"timeout"`
}

// LLMConfig contains ChatGPT/OpenAI settings for the advisor.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"maxTokens"`
}

// ReportConfig controls analysis caching and forecast depth.
type ReportConfig struct {
	CacheTTL         time.Duration `yaml:"cacheTtl"`
	MaxForecastHours int           `yaml:"maxForecastHours"`
	Valkey           ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// TripsConfig controls saved-trip paging.
type TripsConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
	MaxLimit     int `yaml:"maxLimit"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// AuthConfig drives JWT issuance.
type AuthConfig struct {
	Secret          string        `yaml:"secret"`
	TokenTTL        time.Duration `yaml:"tokenTtl"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTtl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Providers.WeatherBaseURL = v
	}
	if v := os.Getenv("OPENAQ_BASE_URL"); v != "" {
		cfg.Providers.AirBaseURL = v
	}
	if v := os.Getenv("OPENAQ_API_KEY"); v != "" {
		cfg.Providers.AirAPIKey = v
	}
	if v := os.Getenv("OPENAQ_RADIUS_KM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Providers.AirRadiusKm = parsed
		}
	}
	if v := os.Getenv("ELEVATION_BASE_URL"); v != "" {
		cfg.Providers.ElevationBaseURL = v
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Providers.Timeout = parsed
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxTokens = parsed
		}
	}
	if v := os.Getenv("REPORT_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Report.CacheTTL = parsed
		}
	}
	if v := os.Getenv("REPORT_MAX_FORECAST_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Report.MaxForecastHours = parsed
		}
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Report.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Report.Valkey.Addr = v
	}
	if v := os.Getenv("VALKEY_PREFIX"); v != "" {
		cfg.Report.Valkey.Prefix = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = parsed
		}
	}
	if v := os.Getenv("AUTH_REFRESH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.RefreshTokenTTL = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			CORSOrigins: []string{"*"},
		},
		Providers: ProvidersConfig{
			WeatherBaseURL:   "https://api.open-meteo.com/v1/forecast",
			AirBaseURL:       "https://api.openaq.org/v3",
			AirRadiusKm:      25,
			ElevationBaseURL: "https://api.open-elevation.com/api/v1/lookup",
			Timeout:          10 * time.Second,
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   500,
		},
		Report: ReportConfig{
			CacheTTL:         30 * time.Minute,
			MaxForecastHours: 24,
			Valkey: ValkeyConfig{
				Enabled: false,
				Prefix:  "safeoutdoor",
			},
		},
		Trips: TripsConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
			MinConns: 0,
		},
		Auth: AuthConfig{
			Secret:          "dev-secret-change-me",
			TokenTTL:        time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Providers.WeatherBaseURL == "" {
		return errors.New("providers.weatherBaseUrl cannot be empty")
	}
	if c.Providers.AirBaseURL == "" {
		return errors.New("providers.airBaseUrl cannot be empty")
	}
	if c.Providers.ElevationBaseURL == "" {
		return errors.New("providers.elevationBaseUrl cannot be empty")
	}
	if c.Providers.AirRadiusKm <= 0 {
		return errors.New("providers.airRadiusKm must be positive")
	}
	if c.Providers.Timeout <= 0 {
		return errors.New("providers.timeout must be positive")
	}
	if c.Report.CacheTTL < 0 {
		return errors.New("report.cacheTtl cannot be negative")
	}
	if c.Report.MaxForecastHours <= 0 {
		return errors.New("report.maxForecastHours must be positive")
	}
	if c.Report.Valkey.Enabled && strings.TrimSpace(c.Report.Valkey.Addr) == "" {
		return errors.New("report.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Trips.DefaultLimit <= 0 {
		return errors.New("trips.defaultLimit must be positive")
	}
	if c.Trips.MaxLimit < c.Trips.DefaultLimit {
		return errors.New("trips.maxLimit cannot be below trips.defaultLimit")
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("auth.refreshTokenTtl must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
