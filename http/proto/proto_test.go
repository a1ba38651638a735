package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	require.Equal(t, HTTP10, FromBytes([]byte("HTTP/1.0")))
	require.Equal(t, HTTP11, FromBytes([]byte("HTTP/1.1")))

	for _, sample := range []string{
		"", "HTTP/1.2", "HTTP/2", "HTTP/2.0", "http/1.1", "HTTP/11", "HTTP/1.1 ",
	} {
		require.Equal(t, Unknown, FromBytes([]byte(sample)), sample)
	}
}
