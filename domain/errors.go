// ABOUTME: Domain-level sentinel errors for the video-digest service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Validation errors (HTTP 400). The messages are shown to users as-is.
var (
	// ErrURLRequired indicates the request body had no url field
	ErrURLRequired = errors.New("URL is required")

	// ErrInvalidVideoURL indicates the url does not match any supported link shape
	ErrInvalidVideoURL = errors.New("Invalid YouTube URL")

	// ErrVideoIDNotExtracted indicates no 11-character ID could be derived
	ErrVideoIDNotExtracted = errors.New("Could not extract video ID from URL")
)

// Transcription provider errors
var (
	// ErrRateLimited maps provider HTTP 429; the message is user-facing Russian
	ErrRateLimited = errors.New("Превышен лимит запросов к API. Пожалуйста, подождите несколько минут и попробуйте снова.")

	// ErrNoTranscript maps provider HTTP 404: the video has no captions to fetch
	ErrNoTranscript = errors.New("Для этого видео нет субтитров или транскрипта")

	// ErrTranscriptionFailed indicates a terminal failed task; wrapped with provider detail
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrTranscriptionTimeout indicates the polling ceiling was exhausted.
	// The word "timeout" is load-bearing: the HTTP boundary maps it to 504.
	ErrTranscriptionTimeout = errors.New("transcription timeout")

	// ErrEmptyTranscript indicates the normalized transcript came back blank
	ErrEmptyTranscript = errors.New("transcript unavailable")
)

// Summary extraction errors
var (
	// ErrTranscriptTooShort guards against near-empty captions (< 50 chars trimmed)
	ErrTranscriptTooShort = errors.New("Transcript is too short or empty")

	// ErrEmptyModelResponse indicates the generative provider returned blank output
	ErrEmptyModelResponse = errors.New("Gemini returned empty response")

	// ErrGenerationFailed wraps any other generative provider failure
	ErrGenerationFailed = errors.New("Gemini API error")
)
