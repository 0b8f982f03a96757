// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides defaults, per-field parsing and startup validation for production use
package config

import (
	"fmt"
	"time"
)

// TranscriptMode selects how transcripts are acquired from the provider.
type TranscriptMode string

const (
	// TranscriptModeDirect fetches the transcript with a single request.
	TranscriptModeDirect TranscriptMode = "direct"
	// TranscriptModePolling creates a remote task and polls it to completion.
	TranscriptModePolling TranscriptMode = "polling"
)

type Config struct {
	Server     ServerConfig
	HTTP       HTTPConfig
	Transcript TranscriptConfig
	Gemini     GeminiConfig
	Identity   IdentityConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"10s"`
	// Write timeout stays generous: one request may sit in the polling loop
	// for up to two minutes before the summary call even starts.
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"300s"`
}

type HTTPConfig struct {
	Timeout             time.Duration `env:"HTTP_TIMEOUT" default:"30s"`
	MaxIdleConns        int           `env:"HTTP_MAX_IDLE_CONNS" default:"10"`
	MaxIdleConnsPerHost int           `env:"HTTP_MAX_IDLE_CONNS_PER_HOST" default:"2"`
	IdleConnTimeout     time.Duration `env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// TranscriptConfig configures the transcription provider client.
type TranscriptConfig struct {
	BaseURL         string         `env:"SUPADATA_BASE_URL" default:"https://api.supadata.ai/v1"`
	APIKey          string         `env:"SUPADATA_API_KEY"`
	Mode            TranscriptMode `env:"TRANSCRIPT_MODE" default:"polling"`
	PollInterval    time.Duration  `env:"TRANSCRIPT_POLL_INTERVAL" default:"2s"`
	MaxPollAttempts int            `env:"TRANSCRIPT_MAX_POLL_ATTEMPTS" default:"60"`
}

// GeminiConfig configures the generative text provider.
type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" default:"gemini-flash-lite-latest"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" default:"120s"`
}

// IdentityConfig configures the optional identity/credit collaborator.
// An empty BaseURL disables credit accounting entirely.
type IdentityConfig struct {
	BaseURL      string        `env:"IDENTITY_API_URL"`
	ServiceToken string        `env:"IDENTITY_SERVICE_TOKEN"`
	Timeout      time.Duration `env:"IDENTITY_TIMEOUT" default:"10s"`
}

// Enabled reports whether the identity collaborator is configured.
func (c IdentityConfig) Enabled() bool {
	return c.BaseURL != ""
}

// RateLimitConfig paces outbound calls to the transcription provider.
type RateLimitConfig struct {
	ProviderRPS float64 `env:"RATE_LIMIT_PROVIDER_RPS" default:"2"`
	Burst       int     `env:"RATE_LIMIT_BURST" default:"1"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9300,
			ShutdownTimeout: 10 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    300 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:             30 * time.Second,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
		Transcript: TranscriptConfig{
			BaseURL:         "https://api.supadata.ai/v1",
			Mode:            TranscriptModePolling,
			PollInterval:    2 * time.Second,
			MaxPollAttempts: 60,
		},
		Gemini: GeminiConfig{
			Model:   "gemini-flash-lite-latest",
			Timeout: 120 * time.Second,
		},
		Identity: IdentityConfig{
			Timeout: 10 * time.Second,
		},
		RateLimit: RateLimitConfig{
			ProviderRPS: 2,
			Burst:       1,
		},
	}
}

// LoadConfig builds the configuration from defaults and overrides provided
// via environment variables. Missing required credentials fail here, at
// startup, never per-request.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}
