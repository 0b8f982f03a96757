package service

import (
	"context"
	"time"

	"video-digest/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// TranscriptAPI is the transcription provider surface the acquirers consume.
type TranscriptAPI interface {
	CreateTranscriptTask(ctx context.Context, videoID domain.VideoID) (string, error)
	GetTranscriptTask(ctx context.Context, taskID string) (*domain.TranscriptTask, error)
	FetchTranscript(ctx context.Context, videoID domain.VideoID) (string, error)
	FetchMetadata(ctx context.Context, videoID domain.VideoID) (domain.VideoMetadata, error)
}

// TextGenerator handles single prompt-completion calls to the language model.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ProgressFunc receives transcription progress in percent (0-100).
type ProgressFunc func(percent float64)

// TranscriptAcquirer obtains a transcript and video metadata for a video.
// Implementations differ in how they talk to the provider (direct fetch vs
// asynchronous task polling); callers never need to know which one they hold.
type TranscriptAcquirer interface {
	Acquire(ctx context.Context, videoID domain.VideoID, onProgress ProgressFunc) (string, domain.VideoMetadata, error)
}

// SummarizerService turns a transcript into a structured summary.
type SummarizerService interface {
	Summarize(ctx context.Context, transcript string) (*domain.SummaryResult, error)
}

// Clock abstracts waiting between poll attempts so the polling loop can be
// tested without real sleeps. Sleep returns early with the context error when
// the context is canceled.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}
