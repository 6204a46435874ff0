package imaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/pkg/imaging"
)

// 1x1 transparent PNG
const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestIsDataURI(t *testing.T) {
	assert.True(t, imaging.IsDataURI(tinyPNG))
	assert.False(t, imaging.IsDataURI("https://example.com/pic.png"))
	assert.False(t, imaging.IsDataURI(""))
}

func TestInspect(t *testing.T) {
	t.Run("decodes a valid PNG", func(t *testing.T) {
		info, err := imaging.Inspect(tinyPNG)
		require.NoError(t, err)
		assert.Equal(t, "png", info.Format)
		assert.Equal(t, 1, info.Width)
		assert.Equal(t, 1, info.Height)
	})

	t.Run("rejects undecodable payloads", func(t *testing.T) {
		_, err := imaging.Inspect("data:image/png;base64,%%%%")
		assert.ErrorIs(t, err, imaging.ErrInvalidImage)
	})

	t.Run("rejects non-image base64", func(t *testing.T) {
		_, err := imaging.Inspect("data:image/png;base64,aGVsbG8gd29ybGQ=")
		assert.ErrorIs(t, err, imaging.ErrInvalidImage)
	})
}
