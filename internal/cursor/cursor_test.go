package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Run("scan consumes segment and delimiter", func(t *testing.T) {
		cur := New([]byte("hello\nworld"))

		segment, found := cur.Scan('\n')
		require.True(t, found)
		require.Equal(t, "hello", string(segment))
		require.Equal(t, "world", string(cur.Rest()))
	})

	t.Run("scan without delimiter consumes nothing", func(t *testing.T) {
		cur := New([]byte("hello"))

		_, found := cur.Scan('\n')
		require.False(t, found)
		require.Equal(t, "hello", string(cur.Rest()))
	})

	t.Run("take is bounded by the view", func(t *testing.T) {
		cur := New([]byte("hello"))

		require.Equal(t, "hel", string(cur.Take(3)))
		require.Equal(t, "lo", string(cur.Take(10)))
		require.True(t, cur.Empty())
	})

	t.Run("next and peek", func(t *testing.T) {
		cur := New([]byte("ab"))

		require.Equal(t, byte('a'), cur.Peek())
		require.Equal(t, byte('a'), cur.Next())
		require.Equal(t, byte('b'), cur.Next())
		require.True(t, cur.Empty())
	})

	t.Run("flush drains the view", func(t *testing.T) {
		cur := New([]byte("rest"))

		require.Equal(t, "rest", string(cur.Flush()))
		require.True(t, cur.Empty())
		require.Zero(t, cur.Len())
	})
}
