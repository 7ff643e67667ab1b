package httpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/adapter/metrics"
	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	listActivitiesFn func(ctx context.Context) (map[string]domain.Activity, error)
	signupFn         func(ctx context.Context, name, email string) error
	unregisterFn     func(ctx context.Context, name, email string) error
}

func (m *mockAppService) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	if m.listActivitiesFn != nil {
		return m.listActivitiesFn(ctx)
	}
	return map[string]domain.Activity{}, nil
}

func (m *mockAppService) Signup(ctx context.Context, name, email string) error {
	if m.signupFn != nil {
		return m.signupFn(ctx, name, email)
	}
	return errors.New("not implemented")
}

func (m *mockAppService) Unregister(ctx context.Context, name, email string) error {
	if m.unregisterFn != nil {
		return m.unregisterFn(ctx, name, email)
	}
	return errors.New("not implemented")
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	clock := clockwork.NewFakeClock()

	srv := &Server{
		echo:      echo.New(),
		config:    &config.Config{AppEnv: "test", Port: "8080"},
		app:       app,
		clock:     clock,
		startTime: clock.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withHTTPMetrics(m *metrics.HTTPMetrics) func(*Server) {
	return func(s *Server) {
		s.httpMetrics = m
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}
