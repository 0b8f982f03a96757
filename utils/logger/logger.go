// ABOUTME: This file provides slog-based JSON logging for the video-digest service
// ABOUTME: Output format keeps lowercase level and msg keys for log-forwarder compatibility
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

const serviceVersion = "1.0.0"

// Config holds logger configuration loaded from the environment.
type Config struct {
	Level       string
	ServiceName string
}

// LoadConfigFromEnv reads logger settings from environment variables.
func LoadConfigFromEnv() *Config {
	return &Config{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "video-digest"),
	}
}

// New creates a JSON slog.Logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter creates a JSON slog.Logger writing to the given writer.
func NewWithWriter(w io.Writer, cfg *Config) *slog.Logger {
	handler := slog.NewJSONHandler(w, handlerOptions(parseLevel(cfg.Level)))
	return slog.New(handler).With("service", cfg.ServiceName, "version", serviceVersion)
}

// NewWithOTel creates a logger that writes to stdout and, when enabled,
// also exports records through the otelslog bridge so trace context is
// attached by the OTel SDK.
func NewWithOTel(cfg *Config, otelEnabled bool) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, handlerOptions(parseLevel(cfg.Level)))
	if !otelEnabled {
		return slog.New(stdout).With("service", cfg.ServiceName, "version", serviceVersion)
	}

	otelHandler := otelslog.NewHandler(
		cfg.ServiceName,
		otelslog.WithLoggerProvider(global.GetLoggerProvider()),
	)

	multi := &multiHandler{handlers: []slog.Handler{stdout, otelHandler}}

	return slog.New(multi).With("service", cfg.ServiceName, "version", serviceVersion)
}

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level value for the log forwarder
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: slog.LevelKey, Value: slog.StringValue(strings.ToLower(lvl.String()))}
				}
			}
			return a
		},
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
