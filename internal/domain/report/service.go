// Package report orchestrates a full analysis: it fans out to the
// weather, air-quality and elevation providers, merges the readings
// into an AQI, scores safety, builds the gear checklist and attaches
// the AI summary. Provider failures degrade to documented defaults so
// an analysis always succeeds.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/safeoutdoor/backend/internal/domain/advisor"
	"github.com/safeoutdoor/backend/internal/domain/checklist"
	"github.com/safeoutdoor/backend/internal/domain/safety"
	"github.com/safeoutdoor/backend/pkg/aqi"
	apperrors "github.com/safeoutdoor/backend/pkg/errors"
)

// Fallback values used when a provider is unavailable.
const (
	fallbackPM25       = 15.0
	fallbackNO2        = 20.0
	fallbackElevationM = 100.0
	defaultDuration    = 4
	maxDuration        = 72
)

// Service exposes analysis orchestration.
type Service interface {
	Analyze(ctx context.Context, req Request) (Report, error)
	TrendingActivities(ctx context.Context, limit int) ([]ActivityCount, error)
}

// WeatherClient fetches the hourly forecast feed.
type WeatherClient interface {
	Forecast(ctx context.Context, lat, lon float64, hours int) ([]HourWeather, error)
}

// AirQualityClient fetches the latest pollutant readings near a point.
type AirQualityClient interface {
	Latest(ctx context.Context, lat, lon float64) (AirSample, error)
}

// ElevationClient looks up terrain elevation for a point.
type ElevationClient interface {
	Lookup(ctx context.Context, lat, lon float64) (ElevationSample, error)
}

// Store caches completed reports and tracks trending activities.
type Store interface {
	GetReport(ctx context.Context, key string) (Report, bool, error)
	SetReport(ctx context.Context, key string, r Report, ttl time.Duration) error
	IncrActivity(ctx context.Context, activity string) error
	TopActivities(ctx context.Context, limit int) ([]ActivityCount, error)
}

type service struct {
	cfg       Config
	weather   WeatherClient
	air       AirQualityClient
	elevation ElevationClient
	store     Store
	advisor   advisor.Service
	logger    *slog.Logger
}

// NewService is a wire provider for the report domain.
func NewService(cfg Config, weather WeatherClient, air AirQualityClient, elevation ElevationClient, store Store, adv advisor.Service, logger *slog.Logger) Service {
	if cfg.MaxForecastHours <= 0 {
		cfg.MaxForecastHours = 24
	}
	return &service{
		cfg:       cfg,
		weather:   weather,
		air:       air,
		elevation: elevation,
		store:     store,
		advisor:   adv,
		logger:    logger.With("component", "report.service"),
	}
}

func (s *service) Analyze(ctx context.Context, req Request) (Report, error) {
	req.Activity = strings.ToLower(strings.TrimSpace(req.Activity))
	if req.Activity == "" {
		return Report{}, apperrors.Wrap("invalid_input", "activity cannot be empty", nil)
	}
	if req.Lat < -90 || req.Lat > 90 {
		return Report{}, apperrors.Wrap("invalid_input", "latitude out of range", nil)
	}
	if req.Lon < -180 || req.Lon > 180 {
		return Report{}, apperrors.Wrap("invalid_input", "longitude out of range", nil)
	}
	if req.DurationHours <= 0 {
		req.DurationHours = defaultDuration
	}
	if req.DurationHours > maxDuration {
		return Report{}, apperrors.Wrap("invalid_input", "duration cannot exceed 72 hours", nil)
	}

	key := cacheKey(req.Activity, req.Lat, req.Lon)
	if cached, ok, err := s.store.GetReport(ctx, key); err != nil {
		s.logger.Warn("report cache read failed", "error", err)
	} else if ok {
		s.logger.Debug("report cache hit", "key", key)
		s.countActivity(ctx, req.Activity)
		return cached, nil
	}

	hours, air, elev, sources := s.fetchAll(ctx, req)

	current := hours[0]
	aqiValue, dominant := aqi.FromPollutants(air.PM25, air.NO2)

	conditions := safety.Conditions{
		AQI:             &aqiValue,
		PM25:            air.PM25,
		TemperatureC:    &current.TempC,
		WindSpeedKmh:    &current.WindSpeedKmh,
		PrecipitationMm: &current.PrecipitationMm,
		Humidity:        fptr(float64(current.Humidity)),
		UVIndex:         &current.UVIndex,
		ElevationM:      &elev.ElevationM,
	}

	score := safety.Compute(req.Activity, conditions)
	items := checklist.Build(req.Activity, conditions)

	summary := s.advisor.Insights(ctx, advisor.Input{
		Activity:     req.Activity,
		Location:     fmt.Sprintf("%.4f, %.4f", req.Lat, req.Lon),
		Score:        score.Overall,
		Category:     score.Category,
		AQI:          aqiValue,
		PM25:         air.PM25,
		TemperatureC: &current.TempC,
		Warnings:     score.Warnings,
	})

	if len(hours) > s.cfg.MaxForecastHours {
		hours = hours[:s.cfg.MaxForecastHours]
	}

	rep := Report{
		RiskScore:     score.Overall,
		Category:      score.Category,
		OverallSafety: breakdown(aqiValue, score.Overall, elev.ElevationM),
		AirQuality: AirQuality{
			AQI:               aqiValue,
			Category:          aqi.Category(aqiValue),
			PM25:              orDefault(air.PM25, fallbackPM25),
			NO2:               orDefault(air.NO2, fallbackNO2),
			DominantPollutant: dominant,
		},
		WeatherForecast: hours,
		Elevation:       elev,
		Checklist:       items,
		Warnings:        score.Warnings,
		AISummary:       summary,
		RiskFactors:     score.RiskFactors,
		DataSources:     sources,
		GeneratedAt:     time.Now().UTC(),
	}

	if err := s.store.SetReport(ctx, key, rep, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("report cache write failed", "error", err)
	}
	s.countActivity(ctx, req.Activity)

	s.logger.Info("analysis complete",
		"activity", req.Activity,
		"score", rep.RiskScore,
		"category", rep.Category,
		"aqi", aqiValue)
	return rep, nil
}

// fetchAll queries the three providers concurrently and substitutes
// fallback readings for any that fail.
func (s *service) fetchAll(ctx context.Context, req Request) ([]HourWeather, AirSample, ElevationSample, []string) {
	var (
		wg      sync.WaitGroup
		hours   []HourWeather
		air     AirSample
		elev    ElevationSample
		errs    [3]error
		sources []string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		hours, errs[0] = s.weather.Forecast(ctx, req.Lat, req.Lon, req.DurationHours)
	}()
	go func() {
		defer wg.Done()
		air, errs[1] = s.air.Latest(ctx, req.Lat, req.Lon)
	}()
	go func() {
		defer wg.Done()
		elev, errs[2] = s.elevation.Lookup(ctx, req.Lat, req.Lon)
	}()
	wg.Wait()

	if errs[0] != nil || len(hours) == 0 {
		s.logger.Warn("weather unavailable, using fallback", "error", errs[0])
		hours = []HourWeather{{
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			TempC:        20.0,
			Humidity:     50,
			WindSpeedKmh: 10.0,
			UVIndex:      5.0,
			CloudCover:   30,
		}}
	} else {
		sources = append(sources, "open-meteo")
	}

	if errs[1] != nil {
		s.logger.Warn("air quality unavailable, using fallback", "error", errs[1])
		air = AirSample{PM25: fptr(fallbackPM25), NO2: fptr(fallbackNO2)}
	} else {
		sources = append(sources, "openaq")
	}

	if errs[2] != nil {
		s.logger.Warn("elevation unavailable, using fallback", "error", errs[2])
		elev = ElevationSample{ElevationM: fallbackElevationM, TerrainType: "lowland"}
	} else {
		sources = append(sources, "open-elevation")
	}

	if len(sources) < 3 {
		sources = append(sources, "fallback")
	}
	return hours, air, elev, sources
}

func (s *service) TrendingActivities(ctx context.Context, limit int) ([]ActivityCount, error) {
	if limit <= 0 {
		limit = 10
	}
	counts, err := s.store.TopActivities(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("store_error", "trending lookup failed", err)
	}
	return counts, nil
}

func (s *service) countActivity(ctx context.Context, activity string) {
	if err := s.store.IncrActivity(ctx, activity); err != nil {
		s.logger.Warn("activity counter update failed", "error", err)
	}
}

// breakdown derives the coarse environmental/health/terrain split shown
// alongside the main score.
func breakdown(aqiValue int, health, elevationM float64) SafetyBreakdown {
	environmental := (100.0 - float64(aqiValue)) / 10.0
	if environmental < 0 {
		environmental = 0
	}
	if environmental > 10 {
		environmental = 10
	}

	var terrain float64
	switch {
	case elevationM < 1000:
		terrain = 9.0
	case elevationM < 2000:
		terrain = 7.5
	case elevationM < 3000:
		terrain = 6.0
	default:
		terrain = 4.5
	}

	overall := environmental*0.3 + health*0.5 + terrain*0.2
	return SafetyBreakdown{
		Environmental: round1(environmental),
		Health:        round1(health),
		Terrain:       round1(terrain),
		Overall:       round1(overall),
	}
}

func cacheKey(activity string, lat, lon float64) string {
	return fmt.Sprintf("report:%s:%.2f:%.2f", activity, lat, lon)
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func fptr(v float64) *float64 { return &v }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
