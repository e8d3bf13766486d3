package http

import (
	"testing"

	"github.com/indigo-web/txlog/kv"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	t.Run("chunked", func(t *testing.T) {
		body, err := NewChunkedBody([]byte("Hello"), []byte(", world!"))
		require.NoError(t, err)
		require.Equal(t, 13, body.Len())
		require.Equal(t, "Hello, world!", string(body.Bytes()))

		_, err = NewChunkedBody([]byte("Hello"), nil)
		require.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("trailer", func(t *testing.T) {
		body, err := NewChunkedBody([]byte("abc"))
		require.NoError(t, err)

		withTrailer, err := body.WithTrailer(MustHeaders(Header{"Checksum", "0"}))
		require.NoError(t, err)
		require.Equal(t, 1, withTrailer.Trailer.Len())
		require.True(t, body.Trailer.Empty())

		_, err = body.WithTrailer(*kv.New(Header{"Bad\n", "x"}))
		require.ErrorIs(t, err, ErrInvalidValue)

		_, err = body.WithTrailer(*kv.New(Header{"HTTP/1.1 500 Error", "x"}))
		require.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("equality", func(t *testing.T) {
		require.True(t, BodyEqual(nil, FixedContent{}))
		require.True(t, BodyEqual(FixedContent(nil), nil))
		require.True(t, BodyEqual(FixedContent("a"), FixedContent("a")))
		require.False(t, BodyEqual(FixedContent("a"), FixedContent("b")))
		require.False(t, BodyEqual(FixedContent{}, ChunkedBody{}))
		require.False(t, BodyEqual(nil, ChunkedBody{}))
		require.True(t, BodyEqual(
			ChunkedBody{Chunks: [][]byte{[]byte("a"), nil, []byte("b")}},
			ChunkedBody{Chunks: [][]byte{[]byte("a"), []byte("b")}},
		))
		require.False(t, BodyEqual(
			ChunkedBody{Chunks: [][]byte{[]byte("ab")}},
			ChunkedBody{Chunks: [][]byte{[]byte("a"), []byte("b")}},
		))
		require.False(t, BodyEqual(
			ChunkedBody{Trailer: MustHeaders(Header{"A", "b"})},
			ChunkedBody{},
		))
	})
}
