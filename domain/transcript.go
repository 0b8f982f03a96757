package domain

import "time"

// TaskStatus is the normalized state of an asynchronous transcription task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Terminal reports whether the task has reached a final state.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// TranscriptTask is one remote transcription job. It is created once per
// digest request, polled until terminal, and never reused.
type TranscriptTask struct {
	ID          string
	Status      TaskStatus
	VideoID     VideoID
	CreatedAt   time.Time
	CompletedAt time.Time
	Transcript  string
	Error       string
}

// VideoMetadata is best-effort descriptive data for a video. When the
// provider cannot supply it, PlaceholderMetadata stands in.
type VideoMetadata struct {
	Title        string
	ChannelName  string
	ThumbnailURL string
	VideoID      VideoID
}

const (
	placeholderTitle   = "YouTube видео"
	placeholderChannel = "YouTube канал"
)

// PlaceholderMetadata synthesizes metadata from the video ID alone.
// Deterministic: only the thumbnail URL depends on the ID.
func PlaceholderMetadata(id VideoID) VideoMetadata {
	return VideoMetadata{
		Title:        placeholderTitle,
		ChannelName:  placeholderChannel,
		ThumbnailURL: id.ThumbnailURL(),
		VideoID:      id,
	}
}
