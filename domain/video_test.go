package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVideoURL(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want bool
	}{
		"standard watch link":      {"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		"watch link without www":   {"https://youtube.com/watch?v=dQw4w9WgXcQ", true},
		"watch link without https": {"youtube.com/watch?v=dQw4w9WgXcQ", true},
		"http scheme":              {"http://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		"short link":               {"https://youtu.be/dQw4w9WgXcQ", true},
		"embed link":               {"https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		"shorts link":              {"https://www.youtube.com/shorts/dQw4w9WgXcQ", true},
		"surrounding whitespace":   {"  https://youtu.be/dQw4w9WgXcQ  ", true},
		"unrelated site":           {"https://vimeo.com/12345", false},
		"channel page":             {"https://www.youtube.com/@somechannel", false},
		"empty string":             {"", false},
		"bare text":                {"not a url", false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidVideoURL(tc.raw))
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	valid := map[string]string{
		"watch link":           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"watch link no scheme": "youtube.com/watch?v=dQw4w9WgXcQ",
		"watch link no www":    "https://youtube.com/watch?v=dQw4w9WgXcQ",
		"short link":           "https://youtu.be/dQw4w9WgXcQ",
		"embed link":           "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"shorts link":          "https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"extra query params":   "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"bare video id":        "dQw4w9WgXcQ",
		"padded bare id":       "  dQw4w9WgXcQ\n",
	}

	for name, raw := range valid {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractVideoID(raw)
			assert.True(t, ok)
			assert.Equal(t, VideoID(id), got)
		})
	}

	invalid := map[string]string{
		"empty":             "",
		"too short bare id": "dQw4w9WgXc",
		"too long bare id":  "dQw4w9WgXcQQ",
		"illegal alphabet":  "dQw4w9Wg!cQ",
		"other host":        "https://vimeo.com/dQw4w9WgXcQ",
		"plain sentence":    "watch this video please",
	}

	for name, raw := range invalid {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractVideoID(raw)
			assert.False(t, ok)
			assert.Equal(t, VideoID(""), got)
		})
	}
}

func TestVideoID_URLs(t *testing.T) {
	id := VideoID("dQw4w9WgXcQ")

	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", id.WatchURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", id.ThumbnailURL())
}

func TestPlaceholderMetadata(t *testing.T) {
	id := VideoID("dQw4w9WgXcQ")
	meta := PlaceholderMetadata(id)

	assert.Equal(t, "YouTube видео", meta.Title)
	assert.Equal(t, "YouTube канал", meta.ChannelName)
	assert.Equal(t, id.ThumbnailURL(), meta.ThumbnailURL)
	assert.Equal(t, id, meta.VideoID)
}

func TestTaskStatus_Terminal(t *testing.T) {
	assert.False(t, TaskStatusPending.Terminal())
	assert.False(t, TaskStatusProcessing.Terminal())
	assert.True(t, TaskStatusCompleted.Terminal())
	assert.True(t, TaskStatusFailed.Terminal())
}
