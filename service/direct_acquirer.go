// ABOUTME: This file implements transcript acquisition via the provider's single-call endpoint
// ABOUTME: Metadata is synthesized locally; this provider variant has no metadata endpoint
package service

import (
	"context"
	"log/slog"

	"video-digest/domain"
)

// DirectAcquirer implementation.
type directAcquirer struct {
	api    TranscriptAPI
	logger *slog.Logger
}

// NewDirectAcquirer creates an acquirer that fetches the transcript in a
// single provider call.
func NewDirectAcquirer(api TranscriptAPI, logger *slog.Logger) TranscriptAcquirer {
	return &directAcquirer{
		api:    api,
		logger: logger,
	}
}

// Acquire fetches the transcript with one provider call. This variant has no
// metadata endpoint, so title and channel are placeholder values.
func (a *directAcquirer) Acquire(ctx context.Context, videoID domain.VideoID, onProgress ProgressFunc) (string, domain.VideoMetadata, error) {
	transcript, err := a.api.FetchTranscript(ctx, videoID)
	if err != nil {
		return "", domain.VideoMetadata{}, err
	}

	report(onProgress, 100)

	return transcript, domain.PlaceholderMetadata(videoID), nil
}
