//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/safeoutdoor/backend/internal/bootstrap"
	"github.com/safeoutdoor/backend/internal/domain/advisor"
	"github.com/safeoutdoor/backend/internal/domain/auth"
	"github.com/safeoutdoor/backend/internal/domain/forecast"
	"github.com/safeoutdoor/backend/internal/domain/report"
	"github.com/safeoutdoor/backend/internal/domain/trips"
	"github.com/safeoutdoor/backend/internal/infra/airquality/openaq"
	"github.com/safeoutdoor/backend/internal/infra/config"
	"github.com/safeoutdoor/backend/internal/infra/elevation/openelevation"
	"github.com/safeoutdoor/backend/internal/infra/weather/openmeteo"
	httpiface "github.com/safeoutdoor/backend/internal/interface/http"
	"github.com/safeoutdoor/backend/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAdvisorConfig,
		provideChatClient,
		provideReportConfig,
		provideTripsConfig,
		provideAuthConfig,
		provideWeatherClient,
		provideAirClient,
		provideElevationClient,
		provideReportStore,
		providePostgresPool,
		provideAuthRepository,
		provideTripRepository,
		advisor.NewService,
		report.NewService,
		forecast.NewService,
		auth.NewService,
		trips.NewService,
		wire.Bind(new(report.WeatherClient), new(*openmeteo.Client)),
		wire.Bind(new(report.AirQualityClient), new(*openaq.Client)),
		wire.Bind(new(report.ElevationClient), new(*openelevation.Client)),
		httpiface.NewHandler,
		httpiface.NewAuthHandler,
		httpiface.NewTripsHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
