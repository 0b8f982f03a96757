package otel

import (
	"context"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		t.Setenv("OTEL_SERVICE_NAME", "")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
		t.Setenv("OTEL_ENABLED", "")

		cfg := ConfigFromEnv()

		if cfg.ServiceName != "video-digest" {
			t.Errorf("expected ServiceName 'video-digest', got %s", cfg.ServiceName)
		}
		if cfg.OTLPEndpoint != "http://localhost:4318" {
			t.Errorf("expected OTLPEndpoint 'http://localhost:4318', got %s", cfg.OTLPEndpoint)
		}
		if !cfg.Enabled {
			t.Error("expected Enabled to be true by default")
		}
		if cfg.SampleRatio != 0.1 {
			t.Errorf("expected default sample ratio 0.1, got %f", cfg.SampleRatio)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("OTEL_SERVICE_NAME", "test-service")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://otel:4318")
		t.Setenv("OTEL_ENABLED", "false")
		t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "0.5")

		cfg := ConfigFromEnv()

		if cfg.ServiceName != "test-service" {
			t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
		}
		if cfg.OTLPEndpoint != "http://otel:4318" {
			t.Errorf("expected OTLPEndpoint 'http://otel:4318', got %s", cfg.OTLPEndpoint)
		}
		if cfg.Enabled {
			t.Error("expected Enabled to be false")
		}
		if cfg.SampleRatio != 0.5 {
			t.Errorf("expected sample ratio 0.5, got %f", cfg.SampleRatio)
		}
	})

	t.Run("out of range sample ratio falls back", func(t *testing.T) {
		t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "3.0")

		cfg := ConfigFromEnv()
		if cfg.SampleRatio != 0.1 {
			t.Errorf("expected fallback sample ratio 0.1, got %f", cfg.SampleRatio)
		}
	})
}

func TestInitProvider_Disabled(t *testing.T) {
	cfg := Config{
		ServiceName:  "test",
		Enabled:      false,
		OTLPEndpoint: "http://localhost:4318",
	}

	shutdown, err := InitProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("InitProvider with disabled config should not error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown func should not be nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown should not error: %v", err)
	}
}
