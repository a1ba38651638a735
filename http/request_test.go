package http

import (
	"testing"

	"github.com/indigo-web/h1/http/method"
	"github.com/indigo-web/h1/kv"
	"github.com/stretchr/testify/require"
)

func TestKnownMethod(t *testing.T) {
	request := NewRequest(kv.New())
	request.Method = "GET"
	require.Equal(t, method.GET, request.KnownMethod())

	request.Method = "PURGE"
	require.Equal(t, method.Unknown, request.KnownMethod())
}

func TestJSON(t *testing.T) {
	type model struct {
		Hello string `json:"hello"`
	}

	t.Run("positive", func(t *testing.T) {
		request := NewRequest(kv.New().Add("Content-Type", "application/json; charset=utf-8"))
		request.Body = []byte(`{"hello": "world"}`)

		var m model
		require.NoError(t, request.JSON(&m))
		require.Equal(t, "world", m.Hello)
	})

	t.Run("wrong content type", func(t *testing.T) {
		request := NewRequest(kv.New().Add("Content-Type", "text/plain"))
		request.Body = []byte(`{"hello": "world"}`)

		var m model
		require.ErrorIs(t, request.JSON(&m), ErrNonJSONContentType)
	})

	t.Run("no content type at all", func(t *testing.T) {
		request := NewRequest(kv.New())

		var m model
		require.ErrorIs(t, request.JSON(&m), ErrNonJSONContentType)
	})
}
