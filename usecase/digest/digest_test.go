package digest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-digest/domain"
	"video-digest/service"
)

type stubAcquirer struct {
	transcript string
	meta       domain.VideoMetadata
	err        error
	gotVideoID domain.VideoID
	calls      int
}

func (s *stubAcquirer) Acquire(_ context.Context, videoID domain.VideoID, onProgress service.ProgressFunc) (string, domain.VideoMetadata, error) {
	s.calls++
	s.gotVideoID = videoID

	if onProgress != nil {
		onProgress(100)
	}

	return s.transcript, s.meta, s.err
}

type stubSummarizer struct {
	result *domain.SummaryResult
	err    error
	calls  int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (*domain.SummaryResult, error) {
	s.calls++

	return s.result, s.err
}

type stubCredits struct {
	err   error
	users []string
}

func (s *stubCredits) DecrementCredit(_ context.Context, userID string) error {
	s.users = append(s.users, userID)

	return s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(acquirer *stubAcquirer, summarizer *stubSummarizer, credits CreditReporter) *Service {
	return NewService(acquirer, summarizer, credits, testLogger())
}

func happySummary() *domain.SummaryResult {
	return &domain.SummaryResult{
		TLDR: "суть видео",
		Sections: []domain.SummarySection{
			{Title: "Основные тезисы", Points: []string{"тезис"}},
		},
	}
}

func TestDigest_Validation(t *testing.T) {
	tests := map[string]struct {
		url     string
		wantErr error
	}{
		"empty url":               {"", domain.ErrURLRequired},
		"whitespace url":          {"   ", domain.ErrURLRequired},
		"not a youtube url":       {"https://vimeo.com/12345", domain.ErrInvalidVideoURL},
		"bare video id rejected":  {"dQw4w9WgXcQ", domain.ErrInvalidVideoURL},
		"youtube url without id":  {"https://youtube.com/watch?v=short", domain.ErrVideoIDNotExtracted},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			acquirer := &stubAcquirer{}
			svc := newService(acquirer, &stubSummarizer{}, nil)

			_, err := svc.Digest(context.Background(), Request{URL: tc.url})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr))
			assert.Equal(t, 0, acquirer.calls, "no provider call on validation failure")
		})
	}
}

func TestDigest_Success(t *testing.T) {
	acquirer := &stubAcquirer{
		transcript: "длинный транскрипт",
		meta: domain.VideoMetadata{
			Title:        "Заголовок",
			ChannelName:  "Канал",
			ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
	}
	summarizer := &stubSummarizer{result: happySummary()}
	svc := newService(acquirer, summarizer, nil)

	result, err := svc.Digest(context.Background(), Request{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"})

	require.NoError(t, err)
	assert.Equal(t, domain.VideoID("dQw4w9WgXcQ"), acquirer.gotVideoID)
	assert.Equal(t, "Заголовок", result.VideoTitle)
	assert.Equal(t, "Канал", result.ChannelName)
	require.Len(t, result.Sections, 1)
	assert.Equal(t, "Основные тезисы", result.Sections[0].Title)
}

func TestDigest_ShortLinkAndShorts(t *testing.T) {
	urls := []string{
		"https://youtu.be/dQw4w9WgXcQ",
		"youtube.com/shorts/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
	}

	for _, url := range urls {
		acquirer := &stubAcquirer{transcript: "текст"}
		svc := newService(acquirer, &stubSummarizer{result: happySummary()}, nil)

		_, err := svc.Digest(context.Background(), Request{URL: url})

		require.NoError(t, err, url)
		assert.Equal(t, domain.VideoID("dQw4w9WgXcQ"), acquirer.gotVideoID, url)
	}
}

func TestDigest_AcquisitionFailure(t *testing.T) {
	summarizer := &stubSummarizer{}
	svc := newService(&stubAcquirer{err: domain.ErrTranscriptionTimeout}, summarizer, nil)

	_, err := svc.Digest(context.Background(), Request{URL: "https://youtu.be/dQw4w9WgXcQ"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTranscriptionTimeout))
	assert.Equal(t, 0, summarizer.calls)
}

func TestDigest_SummarizationFailure(t *testing.T) {
	svc := newService(&stubAcquirer{transcript: "текст"},
		&stubSummarizer{err: domain.ErrTranscriptTooShort}, nil)

	_, err := svc.Digest(context.Background(), Request{URL: "https://youtu.be/dQw4w9WgXcQ"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTranscriptTooShort))
}

func TestDigest_CreditReporting(t *testing.T) {
	t.Run("decrements for known user", func(t *testing.T) {
		credits := &stubCredits{}
		svc := newService(&stubAcquirer{transcript: "текст"},
			&stubSummarizer{result: happySummary()}, credits)

		_, err := svc.Digest(context.Background(), Request{
			URL:    "https://youtu.be/dQw4w9WgXcQ",
			UserID: "user-1",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, credits.users)
	})

	t.Run("skips anonymous callers", func(t *testing.T) {
		credits := &stubCredits{}
		svc := newService(&stubAcquirer{transcript: "текст"},
			&stubSummarizer{result: happySummary()}, credits)

		_, err := svc.Digest(context.Background(), Request{URL: "https://youtu.be/dQw4w9WgXcQ"})

		require.NoError(t, err)
		assert.Empty(t, credits.users)
	})

	t.Run("accounting failure does not fail the digest", func(t *testing.T) {
		credits := &stubCredits{err: errors.New("identity unavailable")}
		svc := newService(&stubAcquirer{transcript: "текст"},
			&stubSummarizer{result: happySummary()}, credits)

		result, err := svc.Digest(context.Background(), Request{
			URL:    "https://youtu.be/dQw4w9WgXcQ",
			UserID: "user-1",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
	})

	t.Run("no failed digest is charged", func(t *testing.T) {
		credits := &stubCredits{}
		svc := newService(&stubAcquirer{err: domain.ErrNoTranscript},
			&stubSummarizer{}, credits)

		_, err := svc.Digest(context.Background(), Request{
			URL:    "https://youtu.be/dQw4w9WgXcQ",
			UserID: "user-1",
		})

		require.Error(t, err)
		assert.Empty(t, credits.users)
	})
}
