// Package forecast aggregates the hourly provider feed into a
// multi-day outlook with a predicted AQI and a per-day safety score.
//
// The AQI prediction is a heuristic: today's measured AQI (or a
// moderate default when unavailable) adjusted down on rainy or windy
// days, since both clear pollutants.
package forecast

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/safeoutdoor/backend/internal/domain/report"
	"github.com/safeoutdoor/backend/internal/domain/safety"
	"github.com/safeoutdoor/backend/pkg/aqi"
	apperrors "github.com/safeoutdoor/backend/pkg/errors"
)

const (
	defaultDays = 7
	maxDays     = 14

	// Threshold above which a day counts as recommended.
	recommendedScore = 7.0

	baselineAQI = 50
)

// Service exposes multi-day forecasts.
type Service interface {
	Forecast(ctx context.Context, lat, lon float64, days int) (Forecast, error)
}

type service struct {
	weather report.WeatherClient
	air     report.AirQualityClient
	logger  *slog.Logger
}

// NewService is a wire provider for the forecast domain.
func NewService(weather report.WeatherClient, air report.AirQualityClient, logger *slog.Logger) Service {
	return &service{
		weather: weather,
		air:     air,
		logger:  logger.With("component", "forecast.service"),
	}
}

func (s *service) Forecast(ctx context.Context, lat, lon float64, days int) (Forecast, error) {
	if days == 0 {
		days = defaultDays
	}
	if days < 1 || days > maxDays {
		return Forecast{}, apperrors.Wrap("invalid_input", "days must be between 1 and 14", nil)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Forecast{}, apperrors.Wrap("invalid_input", "coordinates out of range", nil)
	}

	hours, err := s.weather.Forecast(ctx, lat, lon, days*24)
	if err != nil {
		return Forecast{}, apperrors.Wrap("provider_error", "weather forecast unavailable", err)
	}
	if len(hours) == 0 {
		return Forecast{}, apperrors.Wrap("provider_error", "weather forecast empty", nil)
	}

	base := baselineAQI
	if sample, airErr := s.air.Latest(ctx, lat, lon); airErr != nil {
		s.logger.Warn("air quality unavailable, using baseline", "error", airErr)
	} else {
		base, _ = aqi.FromPollutants(sample.PM25, sample.NO2)
	}

	daily := aggregate(hours)
	if len(daily) > days {
		daily = daily[:days]
	}

	out := make([]Day, 0, len(daily))
	for _, d := range daily {
		predicted := predictAQI(base, d)
		score := dayScore(predicted, d)
		out = append(out, Day{
			Date:            d.date,
			AQIAvg:          predicted,
			AQIMax:          capAQI(int(float64(predicted) * 1.2)),
			TempHigh:        d.tempHigh,
			TempLow:         d.tempLow,
			UVIndexMax:      d.uvMax,
			WindSpeedMax:    d.windMax,
			PrecipitationMm: d.precipTotal,
			SafetyScore:     score.Overall,
			Recommended:     score.Overall >= recommendedScore,
		})
	}

	return Forecast{
		Location:    Location{Lat: lat, Lon: lon},
		Days:        out,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

type dayAggregate struct {
	date        string
	tempHigh    float64
	tempLow     float64
	uvMax       float64
	windMax     float64
	precipTotal float64
}

// aggregate folds the hourly feed into per-date extremes. Timestamps
// are ISO 8601, so the date is the first 10 bytes.
func aggregate(hours []report.HourWeather) []dayAggregate {
	byDate := make(map[string]*dayAggregate)
	order := make([]string, 0, 14)

	for _, h := range hours {
		if len(h.Timestamp) < 10 {
			continue
		}
		date := h.Timestamp[:10]
		agg, ok := byDate[date]
		if !ok {
			agg = &dayAggregate{date: date, tempHigh: h.TempC, tempLow: h.TempC}
			byDate[date] = agg
			order = append(order, date)
		}
		if h.TempC > agg.tempHigh {
			agg.tempHigh = h.TempC
		}
		if h.TempC < agg.tempLow {
			agg.tempLow = h.TempC
		}
		if h.UVIndex > agg.uvMax {
			agg.uvMax = h.UVIndex
		}
		if h.WindSpeedKmh > agg.windMax {
			agg.windMax = h.WindSpeedKmh
		}
		agg.precipTotal += h.PrecipitationMm
	}

	sort.Strings(order)
	out := make([]dayAggregate, 0, len(order))
	for _, date := range order {
		out = append(out, *byDate[date])
	}
	return out
}

// predictAQI adjusts the measured baseline for conditions that clear
// the air: rain washes out particulates, wind disperses them.
func predictAQI(base int, d dayAggregate) int {
	predicted := float64(base)
	if d.precipTotal > 5 {
		predicted *= 0.7
	}
	if d.windMax > 15 {
		predicted *= 0.8
	}
	return capAQI(int(predicted))
}

func capAQI(v int) int {
	if v < 0 {
		return 0
	}
	if v > 500 {
		return 500
	}
	return v
}

// dayScore runs the standard scorer against the day's extremes with a
// generic hiking profile.
func dayScore(predictedAQI int, d dayAggregate) safety.Score {
	return safety.Compute("hiking", safety.Conditions{
		AQI:             &predictedAQI,
		TemperatureC:    &d.tempHigh,
		WindSpeedKmh:    &d.windMax,
		PrecipitationMm: &d.precipTotal,
		UVIndex:         &d.uvMax,
	})
}
