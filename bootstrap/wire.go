package bootstrap

import (
	"context"
	"log/slog"

	"video-digest/config"
	"video-digest/driver"
	"video-digest/handler"
	"video-digest/service"
	"video-digest/usecase/digest"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config        *config.Config
	DigestHandler *handler.DigestHandler
	HealthHandler *handler.HealthHandler
	Logger        *slog.Logger
}

// BuildDependencies constructs all application dependencies.
func BuildDependencies(ctx context.Context, log *slog.Logger) (*Dependencies, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Drivers
	supadata := driver.NewSupadataClient(cfg, log)

	gemini, err := driver.NewGeminiClient(ctx, cfg.Gemini, log)
	if err != nil {
		return nil, err
	}

	identity := driver.NewIdentityClient(cfg.Identity, log)

	// Services
	acquirer := buildAcquirer(cfg, supadata, log)
	summarizer := service.NewSummarizer(gemini, log)

	// The identity collaborator is optional; keep the interfaces nil when it
	// is not configured so downstream code can skip credit accounting.
	var (
		credits  digest.CreditReporter
		sessions handler.SessionResolver
	)
	if identity != nil {
		credits = identity
		sessions = identity
	}

	digestService := digest.NewService(acquirer, summarizer, credits, log)

	log.Info("dependencies initialized",
		"transcript_mode", cfg.Transcript.Mode,
		"gemini_model", cfg.Gemini.Model,
		"identity_enabled", identity != nil)

	return &Dependencies{
		Config:        cfg,
		DigestHandler: handler.NewDigestHandler(digestService, sessions, log),
		HealthHandler: handler.NewHealthHandler(),
		Logger:        log,
	}, nil
}

func buildAcquirer(cfg *config.Config, api service.TranscriptAPI, log *slog.Logger) service.TranscriptAcquirer {
	if cfg.Transcript.Mode == config.TranscriptModeDirect {
		return service.NewDirectAcquirer(api, log)
	}

	return service.NewPollingAcquirer(
		api,
		cfg.Transcript.PollInterval,
		cfg.Transcript.MaxPollAttempts,
		service.NewClock(),
		log,
	)
}
