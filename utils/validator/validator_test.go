package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	URL string `json:"url" validate:"required"`
}

func TestValidator(t *testing.T) {
	v := New()

	t.Run("accepts populated struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(sampleRequest{URL: "https://youtu.be/dQw4w9WgXcQ"}))
	})

	t.Run("rejects missing required field", func(t *testing.T) {
		err := v.Validate(sampleRequest{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "url")
	})
}
