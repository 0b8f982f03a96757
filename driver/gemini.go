package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"video-digest/config"
)

// GeminiClient wraps the Gemini SDK for single prompt-completion calls.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiClient creates a Gemini client from validated configuration.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// GenerateText sends one prompt and returns the concatenated text parts of
// the first candidate. No retries: the caller owns failure policy.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	g.logger.Debug("gemini generation finished",
		"model", g.model,
		"latency", time.Since(started),
		"response_length", len(text))

	return text, nil
}
