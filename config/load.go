package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func loadFromEnv(config *Config) error {
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("failed to load HTTP config: %w", err)
	}

	if err := loadTranscriptConfig(&config.Transcript); err != nil {
		return fmt.Errorf("failed to load transcript config: %w", err)
	}

	if err := loadGeminiConfig(&config.Gemini); err != nil {
		return fmt.Errorf("failed to load gemini config: %w", err)
	}

	if err := loadIdentityConfig(&config.Identity); err != nil {
		return fmt.Errorf("failed to load identity config: %w", err)
	}

	if err := loadRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("failed to load rate limit config: %w", err)
	}

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}

	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	return nil
}

func loadHTTPConfig(cfg *HTTPConfig) error {
	var err error

	if cfg.Timeout, err = parseDurationEnv("HTTP_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.MaxIdleConns, err = parseIntEnv("HTTP_MAX_IDLE_CONNS", cfg.MaxIdleConns); err != nil {
		return err
	}

	if cfg.MaxIdleConnsPerHost, err = parseIntEnv("HTTP_MAX_IDLE_CONNS_PER_HOST", cfg.MaxIdleConnsPerHost); err != nil {
		return err
	}

	if cfg.IdleConnTimeout, err = parseDurationEnv("HTTP_IDLE_CONN_TIMEOUT", cfg.IdleConnTimeout); err != nil {
		return err
	}

	return nil
}

func loadTranscriptConfig(cfg *TranscriptConfig) error {
	var err error

	if base := os.Getenv("SUPADATA_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if key := os.Getenv("SUPADATA_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	if mode := os.Getenv("TRANSCRIPT_MODE"); mode != "" {
		cfg.Mode = TranscriptMode(mode)
	}

	if cfg.PollInterval, err = parseDurationEnv("TRANSCRIPT_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return err
	}

	if cfg.MaxPollAttempts, err = parseIntEnv("TRANSCRIPT_MAX_POLL_ATTEMPTS", cfg.MaxPollAttempts); err != nil {
		return err
	}

	return nil
}

func loadGeminiConfig(cfg *GeminiConfig) error {
	var err error

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Model = model
	}

	if cfg.Timeout, err = parseDurationEnv("GEMINI_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	return nil
}

func loadIdentityConfig(cfg *IdentityConfig) error {
	var err error

	if base := os.Getenv("IDENTITY_API_URL"); base != "" {
		cfg.BaseURL = base
	}

	if token := os.Getenv("IDENTITY_SERVICE_TOKEN"); token != "" {
		cfg.ServiceToken = token
	}

	if cfg.Timeout, err = parseDurationEnv("IDENTITY_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	return nil
}

func loadRateLimitConfig(cfg *RateLimitConfig) error {
	var err error

	if cfg.ProviderRPS, err = parseFloatEnv("RATE_LIMIT_PROVIDER_RPS", cfg.ProviderRPS); err != nil {
		return err
	}

	if cfg.Burst, err = parseIntEnv("RATE_LIMIT_BURST", cfg.Burst); err != nil {
		return err
	}

	return nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}
