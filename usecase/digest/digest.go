// ABOUTME: This file implements the end-to-end video digest flow
// ABOUTME: URL validation, transcript acquisition, summarization and payload assembly
package digest

import (
	"context"
	"log/slog"
	"strings"

	"video-digest/domain"
	"video-digest/service"
)

// CreditReporter reports consumed credits to the identity collaborator.
// A nil reporter disables credit accounting entirely.
type CreditReporter interface {
	DecrementCredit(ctx context.Context, userID string) error
}

// Service consolidates the digest flow shared by every transport:
//   - Validate the URL and extract the video id
//   - Acquire the transcript and video metadata
//   - Summarize the transcript
//   - Assemble the client payload
type Service struct {
	acquirer   service.TranscriptAcquirer
	summarizer service.SummarizerService
	credits    CreditReporter
	logger     *slog.Logger
}

// NewService creates a new digest service. credits may be nil.
func NewService(
	acquirer service.TranscriptAcquirer,
	summarizer service.SummarizerService,
	credits CreditReporter,
	logger *slog.Logger,
) *Service {
	return &Service{
		acquirer:   acquirer,
		summarizer: summarizer,
		credits:    credits,
		logger:     logger,
	}
}

// Request represents a digest request.
type Request struct {
	URL    string
	UserID string // empty when the caller is anonymous
}

// Result is the client-facing digest payload. The TL;DR stays server-side;
// only the sections are returned.
type Result struct {
	VideoTitle   string                  `json:"videoTitle"`
	ChannelName  string                  `json:"channelName"`
	ThumbnailURL string                  `json:"thumbnailUrl"`
	Sections     []domain.SummarySection `json:"sections"`
}

// Digest runs the full flow for one video.
func (s *Service) Digest(ctx context.Context, req Request) (*Result, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, domain.ErrURLRequired
	}

	if !domain.IsValidVideoURL(url) {
		return nil, domain.ErrInvalidVideoURL
	}

	videoID, ok := domain.ExtractVideoID(url)
	if !ok {
		return nil, domain.ErrVideoIDNotExtracted
	}

	s.logger.InfoContext(ctx, "starting digest", "video_id", videoID)

	transcript, meta, err := s.acquirer.Acquire(ctx, videoID, func(percent float64) {
		s.logger.DebugContext(ctx, "transcription progress", "video_id", videoID, "percent", percent)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "transcript acquisition failed", "video_id", videoID, "error", err)
		return nil, err
	}

	summary, err := s.summarizer.Summarize(ctx, transcript)
	if err != nil {
		s.logger.ErrorContext(ctx, "summarization failed", "video_id", videoID, "error", err)
		return nil, err
	}

	s.reportCredit(ctx, req.UserID)

	s.logger.InfoContext(ctx, "digest completed",
		"video_id", videoID,
		"transcript_length", len(transcript),
		"sections", len(summary.Sections))

	return &Result{
		VideoTitle:   meta.Title,
		ChannelName:  meta.ChannelName,
		ThumbnailURL: meta.ThumbnailURL,
		Sections:     summary.Sections,
	}, nil
}

// reportCredit tells the identity service one credit was spent. Accounting
// failures are logged and never fail a digest that already succeeded.
func (s *Service) reportCredit(ctx context.Context, userID string) {
	if s.credits == nil || userID == "" {
		return
	}

	if err := s.credits.DecrementCredit(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "credit decrement failed", "user_id", userID, "error", err)
	}
}
