package http1

import (
	"strings"
	"testing"

	"github.com/indigo-web/txlog/config"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/http/method"
	"github.com/indigo-web/txlog/http/proto"
	"github.com/indigo-web/txlog/http/status"
	"github.com/indigo-web/txlog/internal/txgen"
	"github.com/stretchr/testify/require"
)

func newTransaction(t *testing.T, requestBody, responseBody http.Body) http.Transaction {
	request, err := http.NewRequest(
		method.POST, "/api/v1/items?id=5", proto.HTTP11, "example.com",
		http.Framed(headers("User-Agent", "curl/8.0", "Accept", "*/*", "Accept", "text/plain"), requestBody),
		requestBody,
	)
	require.NoError(t, err)

	response, err := http.NewResponse(
		proto.HTTP11, status.Created, "",
		http.Framed(headers("Content-Type", "application/json", "Set-Cookie", "a=b"), responseBody),
		responseBody,
	)
	require.NoError(t, err)

	return http.Transaction{Request: request, Response: response}
}

func TestEncoder(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		request := http.Request{
			Method:   method.GET,
			Target:   "/",
			Protocol: proto.HTTP10,
			Host:     "localhost",
			Headers:  headers("Accept", "*/*"),
		}

		want := "GET / HTTP/1.0\r\nHost: localhost\r\nAccept: */*\r\n\r\n"
		require.Equal(t, want, string(AppendRequest(nil, request)))
	})

	t.Run("response", func(t *testing.T) {
		response := http.Response{
			Protocol: proto.HTTP2,
			Code:     status.NotFound,
			Reason:   "Not Found",
			Headers:  headers("Content-Length", "4"),
			Body:     http.FixedContent("nope"),
		}

		want := "HTTP/2 404 Not Found\r\nContent-Length: 4\r\n\r\nnope"
		require.Equal(t, want, string(AppendResponse(nil, response)))
	})

	t.Run("empty reason", func(t *testing.T) {
		response := http.Response{Protocol: proto.HTTP11, Code: 599}
		require.Equal(t, "HTTP/1.1 599 \r\n\r\n", string(AppendResponse(nil, response)))
	})

	t.Run("headers are never rewritten", func(t *testing.T) {
		response := http.Response{
			Protocol: proto.HTTP11,
			Code:     status.OK,
			Reason:   "OK",
			Headers:  headers("Content-Length", "100"),
			Body:     http.FixedContent("short"),
		}

		want := "HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort"
		require.Equal(t, want, string(AppendResponse(nil, response)))
	})

	t.Run("appends", func(t *testing.T) {
		tx := newTransaction(t, nil, nil)
		prefix := []byte("log: ")
		encoded := AppendTransaction(prefix, tx)
		require.True(t, strings.HasPrefix(string(encoded), "log: POST /api/v1/items?id=5 HTTP/1.1\r\n"))
	})
}

func TestRoundTrip(t *testing.T) {
	decoder := NewDecoder(config.Default())

	chunked, err := http.NewChunkedBody([]byte("Hello"), []byte(", "), []byte("world!"))
	require.NoError(t, err)
	withTrailer, err := chunked.WithTrailer(headers("Checksum", "ffff", "Expires", "never"))
	require.NoError(t, err)

	for _, tc := range []struct {
		Name                      string
		RequestBody, ResponseBody http.Body
	}{
		{"no bodies", nil, nil},
		{"fixed bodies", http.FixedContent(`{"id":5}`), http.FixedContent(`{"ok":true}`)},
		{"empty fixed bodies", http.FixedContent{}, http.FixedContent{}},
		{"chunked request", chunked, http.FixedContent("done")},
		{"chunked response", nil, chunked},
		{"chunked with trailer", withTrailer, withTrailer},
		{"binary", http.FixedContent{0, 1, 2, '\r', '\n', 0xff}, http.FixedContent("\r\n\r\n")},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			tx := newTransaction(t, tc.RequestBody, tc.ResponseBody)
			encoded := AppendTransaction(nil, tx)

			decoded, n, err := decoder.Transaction(encoded)
			require.NoError(t, err)
			require.Equal(t, len(encoded), n)
			require.Truef(t, tx.Equal(decoded), "want: %+v\ngot:  %+v", tx, decoded)
			require.Equal(t, string(encoded), string(AppendTransaction(nil, decoded)))
		})
	}

	t.Run("generated", func(t *testing.T) {
		for i, tx := range txgen.Transactions(60) {
			encoded := AppendTransaction(nil, tx)
			decoded, n, err := decoder.Transaction(encoded)
			require.NoError(t, err, i)
			require.Equal(t, len(encoded), n, i)
			require.True(t, tx.Equal(decoded), i)
		}
	})

	t.Run("reason defaults to status text", func(t *testing.T) {
		tx := newTransaction(t, nil, nil)
		require.Equal(t, "Created", tx.Response.Reason)
	})
}
