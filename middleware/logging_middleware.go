// ABOUTME: This file provides HTTP request/response logging middleware
// ABOUTME: Emits structured access logs with timing and request context
package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"video-digest/utils/logger"
)

// LoggingMiddleware logs one access line per completed request. Paths in
// skipPaths (health probes) stay silent.
func LoggingMiddleware(log *slog.Logger, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if _, ok := skip[req.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			res := c.Response()

			logger.WithContext(req.Context(), log).Info("request completed",
				"log_type", "access",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"response_size", res.Size,
				"ip_address", c.RealIP(),
				"user_agent", req.UserAgent(),
				"duration_ms", duration.Milliseconds())

			return err
		}
	}
}
