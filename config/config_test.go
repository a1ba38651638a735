package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	t.Run("zero value inherits all defaults", func(t *testing.T) {
		require.Equal(t, Default(), Fill(Config{}))
	})

	t.Run("set fields are kept", func(t *testing.T) {
		cfg := Fill(Config{
			Headers: Headers{MaxNumber: 5},
		})

		require.Equal(t, 5, cfg.Headers.MaxNumber)
		require.Equal(t, Default().Headers.MaxFieldLength, cfg.Headers.MaxFieldLength)
		require.Equal(t, Default().Body.MaxSize, cfg.Body.MaxSize)
	})

	t.Run("prealloc is clamped by the limit", func(t *testing.T) {
		cfg := Fill(Config{
			RequestLine: RequestLine{MaxLength: 16},
			Headers:     Headers{MaxSectionLength: 32},
		})

		require.Equal(t, 16, cfg.RequestLine.BufferPrealloc)
		require.Equal(t, 32, cfg.Headers.BufferPrealloc)
	})
}
