package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("case-insensitive lookup keeps original casing", func(t *testing.T) {
		s := New().Add("Hello", "world")

		value, found := s.Get("hello")
		require.True(t, found)
		require.Equal(t, "world", value)
		require.Equal(t, []string{"Hello"}, s.Keys())
	})

	t.Run("duplicates preserved in arrival order", func(t *testing.T) {
		s := New().
			Add("Accept", "text/html").
			Add("Host", "example.com").
			Add("accept", "*/*")

		require.Equal(t, []string{"text/html", "*/*"}, s.Values("ACCEPT"))
		require.Equal(t, 3, s.Len())
		require.Equal(t, []string{"Accept", "Host"}, s.Keys())
	})

	t.Run("missing key", func(t *testing.T) {
		s := New().Add("Hello", "world")

		require.False(t, s.Has("world"))
		require.Nil(t, s.Values("world"))
		require.Empty(t, s.Value("world"))
		require.Equal(t, "default", s.ValueOr("world", "default"))
	})

	t.Run("iteration order matches insertion order", func(t *testing.T) {
		s := New().
			Add("a", "1").
			Add("b", "2").
			Add("a", "3")

		var pairs []Pair
		for key, value := range s.Iter() {
			pairs = append(pairs, Pair{key, value})
		}

		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}, {"a", "3"}}, pairs)
	})

	t.Run("clear preserves storage", func(t *testing.T) {
		s := NewPrealloc(4).Add("a", "1")
		require.Equal(t, 1, s.Len())

		s.Clear()
		require.Equal(t, 0, s.Len())
		require.False(t, s.Has("a"))
	})
}
