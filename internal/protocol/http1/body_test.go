package http1

import (
	"testing"

	"github.com/indigo-web/txlog/config"
	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/txlog/http"
	"github.com/stretchr/testify/require"
)

func TestSelectBodyCodec(t *testing.T) {
	lenient, strict := config.Default(), config.Default()
	strict.Body.Framing = config.Strict

	require.Equal(t, fixedCodec{length: 5}, selectBodyCodec(http.LengthKnown{Length: 5}, lenient))
	require.Equal(t, chunkedCodec{}, selectBodyCodec(http.Chunked{}, strict))
	require.Equal(t, emptyCodec{}, selectBodyCodec(http.Unknown{}, lenient))
	require.IsType(t, failingCodec{}, selectBodyCodec(http.Unknown{}, strict))
}

func TestBody(t *testing.T) {
	cfg := config.Default()

	decode := func(h http.Headers, data string) (http.Body, int, error) {
		d := decoderOf(cfg, data)
		body, err := d.body(h)
		return body, d.cur.pos, err
	}

	t.Run("consumes exactly one line end", func(t *testing.T) {
		body, n, err := decode(headers("Content-Length", "2"), "\r\n\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, http.FixedContent("\r\n"), body)
	})

	t.Run("no framing", func(t *testing.T) {
		body, n, err := decode(http.Headers{}, "\r\nleftover")
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Zero(t, body.Len())
	})

	t.Run("missing line end", func(t *testing.T) {
		_, _, err := decode(http.Headers{}, "leftover")
		requireKind(t, err, errors.MalformedHeaderLine)

		_, _, err = decode(http.Headers{}, "")
		requireKind(t, err, errors.TruncatedBody)
	})

	t.Run("conflicting lengths", func(t *testing.T) {
		_, _, err := decode(headers("Content-Length", "2", "Content-Length", "3"), "\r\nabc")
		e := requireKind(t, err, errors.UndeterminedBodyFraming)
		require.Equal(t, 2, e.Offset)
	})

	t.Run("encode", func(t *testing.T) {
		require.Equal(t, "\r\n", string(appendBody(nil, nil)))
		require.Equal(t, "\r\nhello", string(appendBody(nil, http.FixedContent("hello"))))
		require.Equal(t, "\r\n0\r\n\r\n", string(appendBody(nil, http.ChunkedBody{})))
	})
}
