package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-digest/utils/logger"
	"video-digest/utils/otel"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the HTTP server, then waits for a shutdown signal.
func Run(ctx context.Context) error {
	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
		}
	}()

	// Initialize logger
	loggerConfig := logger.LoadConfigFromEnv()
	log := logger.NewWithOTel(loggerConfig, otelCfg.Enabled)

	log.Info("starting video-digest service",
		"log_level", loggerConfig.Level,
		"otel_enabled", otelCfg.Enabled,
		"service", otelCfg.ServiceName)

	// Build all dependencies
	deps, err := BuildDependencies(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}

	// Start server
	httpServer := NewHTTPServer(deps, otelCfg.Enabled, otelCfg.ServiceName)
	StartHTTPServer(httpServer, deps.Config.Server.Port, log)

	// Wait for shutdown signal
	log.Info("video-digest service started successfully")
	waitForShutdown(ctx, httpServer, deps)

	return nil
}

func waitForShutdown(ctx context.Context, httpServer interface{ Shutdown(context.Context) error }, deps *Dependencies) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-ctx.Done():
	}

	deps.Logger.Info("shutting down video-digest service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		deps.Logger.Error("error shutting down HTTP server", "error", err)
	}

	deps.Logger.Info("video-digest service stopped")
}
