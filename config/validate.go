package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	if config.Transcript.BaseURL == "" {
		return fmt.Errorf("transcript provider base URL cannot be empty")
	}

	if config.Transcript.APIKey == "" {
		return fmt.Errorf("SUPADATA_API_KEY is not configured")
	}

	switch config.Transcript.Mode {
	case TranscriptModeDirect, TranscriptModePolling:
	default:
		return fmt.Errorf("invalid transcript mode: %q (want %q or %q)",
			config.Transcript.Mode, TranscriptModeDirect, TranscriptModePolling)
	}

	if config.Transcript.PollInterval <= 0 {
		return fmt.Errorf("transcript poll interval must be positive: %v", config.Transcript.PollInterval)
	}

	if config.Transcript.MaxPollAttempts <= 0 {
		return fmt.Errorf("transcript max poll attempts must be positive: %d", config.Transcript.MaxPollAttempts)
	}

	if config.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	if config.Gemini.Model == "" {
		return fmt.Errorf("gemini model cannot be empty")
	}

	if config.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini timeout must be positive: %v", config.Gemini.Timeout)
	}

	if config.Identity.Enabled() && config.Identity.Timeout <= 0 {
		return fmt.Errorf("identity timeout must be positive: %v", config.Identity.Timeout)
	}

	if config.RateLimit.ProviderRPS <= 0 {
		return fmt.Errorf("provider rate limit must be positive: %f", config.RateLimit.ProviderRPS)
	}

	if config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive: %d", config.RateLimit.Burst)
	}

	return nil
}
