package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safeoutdoor/backend/internal/domain/auth"
	"github.com/safeoutdoor/backend/internal/domain/forecast"
	"github.com/safeoutdoor/backend/internal/domain/report"
	"github.com/safeoutdoor/backend/internal/domain/trips"
	"github.com/safeoutdoor/backend/internal/infra/config"
	apperrors "github.com/safeoutdoor/backend/pkg/errors"
)

func TestRouter_AnalyzeSuccess(t *testing.T) {
	reportSvc := &stubReportService{
		analyzeFn: func(ctx context.Context, req report.Request) (report.Report, error) {
			require.Equal(t, "hiking", req.Activity)
			return report.Report{RiskScore: 8.7, Category: "Excellent"}, nil
		},
	}
	server := newRouterUnderTest(t, routerDeps{reportSvc: reportSvc})

	rec := performRequest(server, http.MethodPost, "/api/v1/analyze", `{"activity":"hiking","lat":47.6,"lon":-122.3}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 8.7, got.RiskScore)
	require.NotEmpty(t, got.RequestID)
	require.Equal(t, got.RequestID, rec.Header().Get("X-Request-ID"))
}

func TestRouter_AnalyzeInvalidInput(t *testing.T) {
	reportSvc := &stubReportService{
		analyzeFn: func(ctx context.Context, req report.Request) (report.Report, error) {
			return report.Report{}, apperrors.Wrap("invalid_input", "activity cannot be empty", nil)
		},
	}
	server := newRouterUnderTest(t, routerDeps{reportSvc: reportSvc})

	rec := performRequest(server, http.MethodPost, "/api/v1/analyze", `{"activity":"x","lat":0,"lon":0}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "activity cannot be empty")
}

func TestRouter_AnalyzeProviderFailure(t *testing.T) {
	reportSvc := &stubReportService{
		analyzeFn: func(ctx context.Context, req report.Request) (report.Report, error) {
			return report.Report{}, apperrors.Wrap("provider_error", "weather forecast unavailable", nil)
		},
	}
	server := newRouterUnderTest(t, routerDeps{reportSvc: reportSvc})

	rec := performRequest(server, http.MethodPost, "/api/v1/analyze", `{"activity":"hiking","lat":0,"lon":0}`, "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "provider_error", errBody["error"]["code"])
}

func TestRouter_ForecastQueryAndBody(t *testing.T) {
	forecastSvc := &stubForecastService{
		forecastFn: func(ctx context.Context, lat, lon float64, days int) (forecast.Forecast, error) {
			require.Equal(t, 47.6, lat)
			require.Equal(t, 3, days)
			return forecast.Forecast{Days: []forecast.Day{{Date: "2026-08-29"}}}, nil
		},
	}
	server := newRouterUnderTest(t, routerDeps{forecastSvc: forecastSvc})

	rec := performRequest(server, http.MethodGet, "/api/v1/forecast?lat=47.6&lon=-122.3&days=3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(server, http.MethodPost, "/api/v1/forecast", `{"lat":47.6,"lon":-122.3,"days":3}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got forecast.Forecast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Days, 1)
}

func TestRouter_TrendingActivities(t *testing.T) {
	reportSvc := &stubReportService{
		trendingFn: func(ctx context.Context, limit int) ([]report.ActivityCount, error) {
			require.Equal(t, 5, limit)
			return []report.ActivityCount{{Activity: "hiking", Count: 12}}, nil
		},
	}
	server := newRouterUnderTest(t, routerDeps{reportSvc: reportSvc})

	rec := performRequest(server, http.MethodGet, "/api/v1/stats/activities?limit=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"hiking"`)
}

func TestRouter_Healthz(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRouter_TripsRequireAuth(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodGet, "/api/v1/trips", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "unauthorized", errBody["error"]["code"])
}

func TestRouter_TripsRejectBadToken(t *testing.T) {
	authSvc := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (auth.Claims, error) {
			return auth.Claims{}, apperrors.Wrap("invalid_token", "token validation failed", nil)
		},
	}
	server := newRouterUnderTest(t, routerDeps{authSvc: authSvc})

	rec := performRequest(server, http.MethodGet, "/api/v1/trips", "", "Bearer bogus")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_TripsCreateAndGet(t *testing.T) {
	authSvc := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (auth.Claims, error) {
			require.Equal(t, "good-token", token)
			return auth.Claims{UserID: 42, Email: "user@example.com", TokenType: "access"}, nil
		},
	}
	tripsSvc := &stubTripsService{
		createFn: func(ctx context.Context, userID int64, req trips.CreateRequest) (trips.Trip, error) {
			require.Equal(t, int64(42), userID)
			require.Equal(t, "hiking", req.Activity)
			return trips.Trip{ID: "trip-1", Activity: "hiking"}, nil
		},
		getFn: func(ctx context.Context, userID int64, tripID string) (trips.Trip, error) {
			require.Equal(t, "trip-1", tripID)
			return trips.Trip{ID: "trip-1", Activity: "hiking"}, nil
		},
	}
	server := newRouterUnderTest(t, routerDeps{authSvc: authSvc, tripsSvc: tripsSvc})

	rec := performRequest(server, http.MethodPost, "/api/v1/trips", `{"activity":"hiking","location":{"lat":47.6,"lon":-122.3}}`, "Bearer good-token")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(server, http.MethodGet, "/api/v1/trips/trip-1", "", "Bearer good-token")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"trip-1"`)
}

func TestRouter_TripsForbidden(t *testing.T) {
	authSvc := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (auth.Claims, error) {
			return auth.Claims{UserID: 2, TokenType: "access"}, nil
		},
	}
	tripsSvc := &stubTripsService{
		getFn: func(ctx context.Context, userID int64, tripID string) (trips.Trip, error) {
			return trips.Trip{}, apperrors.Wrap("forbidden", "trip belongs to another user", nil)
		},
	}
	server := newRouterUnderTest(t, routerDeps{authSvc: authSvc, tripsSvc: tripsSvc})

	rec := performRequest(server, http.MethodGet, "/api/v1/trips/trip-9", "", "Bearer token")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_RegisterConflict(t *testing.T) {
	authSvc := &stubAuthService{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.UserView, error) {
			return auth.UserView{}, apperrors.Wrap("email_exists", "email already registered", nil)
		},
	}
	server := newRouterUnderTest(t, routerDeps{authSvc: authSvc})

	rec := performRequest(server, http.MethodPost, "/api/v1/auth/register", `{"email":"a@b.com","password":"pass1234","nickname":"Nick"}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "email_exists", errBody["error"]["code"])
}

func TestRouter_LoginAndProfile(t *testing.T) {
	authSvc := &stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
			return auth.LoginResponse{Token: "tok", RefreshToken: "ref"}, nil
		},
		validateFn: func(ctx context.Context, token string) (auth.Claims, error) {
			return auth.Claims{UserID: 7, TokenType: "access"}, nil
		},
		profileFn: func(ctx context.Context, userID int64) (auth.UserView, error) {
			require.Equal(t, int64(7), userID)
			return auth.UserView{ID: 7, Email: "user@example.com"}, nil
		},
	}
	server := newRouterUnderTest(t, routerDeps{authSvc: authSvc})

	rec := performRequest(server, http.MethodPost, "/api/v1/auth/login", `{"email":"user@example.com","password":"pass1234"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"tok"`)

	rec = performRequest(server, http.MethodGet, "/api/v1/auth/profile", "", "Bearer tok")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user@example.com"`)
}

type routerDeps struct {
	reportSvc   report.Service
	forecastSvc forecast.Service
	authSvc     auth.Service
	tripsSvc    trips.Service
}

func newRouterUnderTest(t *testing.T, deps routerDeps) *http.Server {
	t.Helper()
	if deps.reportSvc == nil {
		deps.reportSvc = &stubReportService{}
	}
	if deps.forecastSvc == nil {
		deps.forecastSvc = &stubForecastService{}
	}
	if deps.authSvc == nil {
		deps.authSvc = &stubAuthService{}
	}
	if deps.tripsSvc == nil {
		deps.tripsSvc = &stubTripsService{}
	}

	logger := newTestLogger()
	handler := NewHandler(deps.reportSvc, deps.forecastSvc, logger)
	authHandler := NewAuthHandler(deps.authSvc, logger)
	tripsHandler := NewTripsHandler(deps.tripsSvc, logger)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler, authHandler, tripsHandler, deps.authSvc, logger)
}

func performRequest(server *http.Server, method, path, body, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type stubReportService struct {
	analyzeFn  func(ctx context.Context, req report.Request) (report.Report, error)
	trendingFn func(ctx context.Context, limit int) ([]report.ActivityCount, error)
}

func (s *stubReportService) Analyze(ctx context.Context, req report.Request) (report.Report, error) {
	if s.analyzeFn != nil {
		return s.analyzeFn(ctx, req)
	}
	return report.Report{}, nil
}

func (s *stubReportService) TrendingActivities(ctx context.Context, limit int) ([]report.ActivityCount, error) {
	if s.trendingFn != nil {
		return s.trendingFn(ctx, limit)
	}
	return nil, nil
}

type stubForecastService struct {
	forecastFn func(ctx context.Context, lat, lon float64, days int) (forecast.Forecast, error)
}

func (s *stubForecastService) Forecast(ctx context.Context, lat, lon float64, days int) (forecast.Forecast, error) {
	if s.forecastFn != nil {
		return s.forecastFn(ctx, lat, lon, days)
	}
	return forecast.Forecast{}, nil
}

type stubAuthService struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) (auth.UserView, error)
	loginFn    func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	validateFn func(ctx context.Context, token string) (auth.Claims, error)
	refreshFn  func(ctx context.Context, refreshToken string) (auth.LoginResponse, error)
	profileFn  func(ctx context.Context, userID int64) (auth.UserView, error)
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserView, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, req)
	}
	return auth.UserView{}, nil
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return auth.LoginResponse{}, nil
}

func (s *stubAuthService) ValidateToken(ctx context.Context, token string) (auth.Claims, error) {
	if s.validateFn != nil {
		return s.validateFn(ctx, token)
	}
	return auth.Claims{}, apperrors.Wrap("invalid_token", "token validation failed", nil)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.refreshFn != nil {
		return s.refreshFn(ctx, refreshToken)
	}
	return auth.LoginResponse{}, nil
}

func (s *stubAuthService) Profile(ctx context.Context, userID int64) (auth.UserView, error) {
	if s.profileFn != nil {
		return s.profileFn(ctx, userID)
	}
	return auth.UserView{}, nil
}

type stubTripsService struct {
	createFn func(ctx context.Context, userID int64, req trips.CreateRequest) (trips.Trip, error)
	listFn   func(ctx context.Context, userID int64, req trips.ListRequest) (trips.ListResponse, error)
	getFn    func(ctx context.Context, userID int64, tripID string) (trips.Trip, error)
	deleteFn func(ctx context.Context, userID int64, tripID string) error
}

func (s *stubTripsService) Create(ctx context.Context, userID int64, req trips.CreateRequest) (trips.Trip, error) {
	if s.createFn != nil {
		return s.createFn(ctx, userID, req)
	}
	return trips.Trip{}, nil
}

func (s *stubTripsService) List(ctx context.Context, userID int64, req trips.ListRequest) (trips.ListResponse, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID, req)
	}
	return trips.ListResponse{}, nil
}

func (s *stubTripsService) Get(ctx context.Context, userID int64, tripID string) (trips.Trip, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID, tripID)
	}
	return trips.Trip{}, nil
}

func (s *stubTripsService) Delete(ctx context.Context, userID int64, tripID string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, tripID)
	}
	return nil
}
