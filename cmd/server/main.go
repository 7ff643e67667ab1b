package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/mergington/activities/internal/adapter/httpserver"
	"github.com/mergington/activities/internal/adapter/metrics"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/platform/config"
	"github.com/mergington/activities/internal/platform/logging"
	"github.com/mergington/activities/internal/registry"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRegistry(cfg *config.Config) *registry.Registry {
	seed, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load activity catalog", "error", err)
		os.Exit(1)
	}

	reg, err := registry.New(seed)
	if err != nil {
		slog.Error("Failed to build activity registry", "error", err)
		os.Exit(1)
	}

	slog.Info("Activity catalog loaded", "activities", reg.Size(), "path", cfg.CatalogPath)
	return reg
}

func runGracefulShutdown(srv *httpserver.Server, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	reg := setupRegistry(cfg)

	promReg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(promReg)
	signupMetrics := metrics.NewSignupMetrics(promReg)

	svc, err := app.NewService(reg, signupMetrics)
	if err != nil {
		slog.Error("Failed to create service", "error", err)
		os.Exit(1)
	}

	healthChecks := []httpserver.HealthCheck{
		{Name: "registry", Check: svc.HealthCheck},
	}

	srv := httpserver.NewServer(cfg, svc, httpMetrics, metrics.Handler(promReg), healthChecks, clock)

	done := runGracefulShutdown(srv, cfg)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
