// ABOUTME: This file implements YouTube URL validation and video ID extraction
// ABOUTME: Pure functions with no I/O, used at the request boundary
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// VideoID identifies a single YouTube video (11-character provider alphabet).
type VideoID string

const videoIDLength = 11

var (
	urlShapePattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/(watch\?v=|shorts/|embed/)|youtu\.be/).+`)
	videoIDCapture  = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`)
	bareVideoID     = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// IsValidVideoURL reports whether raw looks like a supported YouTube link.
// Scheme and www. prefix are optional; surrounding whitespace is ignored.
func IsValidVideoURL(raw string) bool {
	return urlShapePattern.MatchString(strings.TrimSpace(raw))
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// The whole trimmed input is accepted as a bare ID when it matches the
// provider alphabet. A false return means "not a valid video reference",
// which callers must treat as a validation failure, not a system error.
func ExtractVideoID(raw string) (VideoID, bool) {
	trimmed := strings.TrimSpace(raw)

	if m := videoIDCapture.FindStringSubmatch(trimmed); m != nil {
		return VideoID(m[1]), true
	}

	if bareVideoID.MatchString(trimmed) {
		return VideoID(trimmed), true
	}

	return "", false
}

func (id VideoID) String() string {
	return string(id)
}

// WatchURL returns the canonical watch link for the video.
func (id VideoID) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

// ThumbnailURL returns the provider's predictable thumbnail location.
func (id VideoID) ThumbnailURL() string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}
