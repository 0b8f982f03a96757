package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	appmiddleware "video-digest/middleware"
	appvalidator "video-digest/utils/validator"
)

// NewHTTPServer creates and configures the Echo HTTP server.
func NewHTTPServer(deps *Dependencies, otelEnabled bool, otelServiceName string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = appvalidator.New()

	// Custom error handler for consistent error responses
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler(deps.Logger)

	// Add OpenTelemetry tracing middleware
	if otelEnabled {
		e.Use(otelecho.Middleware(otelServiceName))
		e.Use(appmiddleware.OTelStatusMiddleware())
	}

	// Middleware
	e.Use(appmiddleware.RequestIDMiddleware())
	e.Use(appmiddleware.LoggingMiddleware(deps.Logger, "/health", "/api/v1/health"))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// API routes
	api := e.Group("/api/v1")
	api.POST("/digest", deps.DigestHandler.HandleDigest)
	api.GET("/digest", deps.DigestHandler.HandleAvailability)
	api.GET("/health", deps.HealthHandler.HandleHealth)

	e.GET("/health", deps.HealthHandler.HandleHealth)

	return e
}

// StartHTTPServer starts the HTTP server in a goroutine.
func StartHTTPServer(e *echo.Echo, port int, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("starting HTTP server", "port", port)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()
}
