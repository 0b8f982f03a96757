// ABOUTME: This file implements transcript acquisition via asynchronous provider tasks
// ABOUTME: Task creation and metadata fetch run concurrently, then the task is polled
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"video-digest/domain"
)

// PollingAcquirer implementation.
type pollingAcquirer struct {
	api         TranscriptAPI
	clock       Clock
	logger      *slog.Logger
	interval    time.Duration
	maxAttempts int
}

// NewPollingAcquirer creates an acquirer that drives the provider's
// asynchronous transcription tasks.
func NewPollingAcquirer(api TranscriptAPI, interval time.Duration, maxAttempts int, clock Clock, logger *slog.Logger) TranscriptAcquirer {
	return &pollingAcquirer{
		api:         api,
		clock:       clock,
		logger:      logger,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Acquire creates a transcription task and polls it to completion. Task
// creation and the metadata fetch are independent, so they run concurrently;
// a metadata failure falls back to placeholders and never fails the acquisition.
func (a *pollingAcquirer) Acquire(ctx context.Context, videoID domain.VideoID, onProgress ProgressFunc) (string, domain.VideoMetadata, error) {
	var (
		taskID string
		meta   domain.VideoMetadata
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		id, err := a.api.CreateTranscriptTask(gctx, videoID)
		if err != nil {
			return err
		}
		taskID = id

		return nil
	})

	g.Go(func() error {
		m, err := a.api.FetchMetadata(gctx, videoID)
		if err != nil {
			a.logger.WarnContext(gctx, "metadata fetch failed, using placeholder",
				"video_id", videoID, "error", err)
			meta = domain.PlaceholderMetadata(videoID)

			return nil
		}
		meta = m

		return nil
	})

	if err := g.Wait(); err != nil {
		return "", domain.VideoMetadata{}, err
	}

	transcript, err := a.pollUntilComplete(ctx, taskID, onProgress)
	if err != nil {
		return "", domain.VideoMetadata{}, err
	}

	return transcript, meta, nil
}

// pollUntilComplete checks the task until it reaches a terminal state or the
// attempt ceiling is hit. Progress is capped at 95 until the transcript is
// actually in hand; the final attempt does not sleep before giving up.
func (a *pollingAcquirer) pollUntilComplete(ctx context.Context, taskID string, onProgress ProgressFunc) (string, error) {
	attempts := 0

	for attempts < a.maxAttempts {
		task, err := a.api.GetTranscriptTask(ctx, taskID)
		if err != nil {
			return "", err
		}

		report(onProgress, min(float64(attempts)/float64(a.maxAttempts)*100, 95))

		if task.Status == domain.TaskStatusCompleted && task.Transcript != "" {
			report(onProgress, 100)
			a.logger.InfoContext(ctx, "transcription task completed",
				"task_id", taskID, "attempts", attempts+1, "transcript_length", len(task.Transcript))

			return task.Transcript, nil
		}

		if task.Status == domain.TaskStatusFailed {
			detail := task.Error
			if detail == "" {
				detail = "Unknown error"
			}

			return "", fmt.Errorf("%w: %s", domain.ErrTranscriptionFailed, detail)
		}

		a.logger.DebugContext(ctx, "transcription task still running",
			"task_id", taskID, "status", task.Status, "attempt", attempts+1)

		attempts++
		if attempts < a.maxAttempts {
			if err := a.clock.Sleep(ctx, a.interval); err != nil {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("%w after %d attempts", domain.ErrTranscriptionTimeout, a.maxAttempts)
}

func report(onProgress ProgressFunc, percent float64) {
	if onProgress != nil {
		onProgress(percent)
	}
}
