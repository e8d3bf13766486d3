package format

import (
	"bytes"
	"testing"

	"github.com/indigo-web/txlog"
	"github.com/indigo-web/txlog/http"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) http.Transaction {
	tx, _, err := txlog.Decode([]byte(raw))
	require.NoError(t, err)
	return tx
}

func TestFromTransaction(t *testing.T) {
	tx := decode(t, "POST /upload HTTP/1.1\r\nHost: example.com\r\nAccept: a\r\nAccept: b\r\n"+
		"Content-Length: 3\r\n\r\n\xff\x00\x01"+
		"HTTP/1.1 201 Created\r\nTransfer-Encoding: chunked\r\n\r\n"+
		"5\r\nHello\r\n1\r\n!\r\n0\r\nChecksum: 1\r\n\r\n")

	doc := FromTransaction(tx)
	require.Equal(t, Request{
		Proto:  "HTTP/1.1",
		Method: "POST",
		Target: "/upload",
		Host:   "example.com",
		Header: []Header{{"Accept", "a"}, {"Accept", "b"}, {"Content-Length", "3"}},
		Body:   Body{Framing: "fixed", Length: 3, Data: []byte{0xff, 0, 1}},
	}, doc.Request)
	require.Equal(t, Response{
		Proto:      "HTTP/1.1",
		StatusCode: 201,
		StatusText: "Created",
		Header:     []Header{{"Transfer-Encoding", "chunked"}},
		Body: Body{
			Framing: "chunked",
			Length:  6,
			Text:    "Hello!",
			Chunks:  []int{5, 1},
			Trailer: []Header{{"Checksum", "1"}},
		},
	}, doc.Response)
}

func TestJSON(t *testing.T) {
	tx := decode(t, "GET / HTTP/1.0\r\nHost: x\r\n\r\nHTTP/1.0 204 No Content\r\n\r\n")

	t.Run("compact", func(t *testing.T) {
		data, err := JSON(tx, false)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"request": {
				"protocol": "HTTP/1.0", "method": "GET", "target": "/", "host": "x",
				"body": {"framing": "fixed", "length": 0}
			},
			"response": {
				"protocol": "HTTP/1.0", "statusCode": 204, "statusText": "No Content",
				"body": {"framing": "fixed", "length": 0}
			}
		}`, string(data))
		require.NotContains(t, string(data), "\n")
	})

	t.Run("indent", func(t *testing.T) {
		data, err := JSON(tx, true)
		require.NoError(t, err)
		require.Contains(t, string(data), "\n  \"request\": {")
	})

	t.Run("binary survives", func(t *testing.T) {
		binary := decode(t, "PUT /b HTTP/1.1\r\nHost: x\r\nContent-Length: 2\r\n\r\n\xfe\xff"+
			"HTTP/1.1 200 OK\r\n\r\n")
		data, err := JSON(binary, false)
		require.NoError(t, err)

		var doc Transaction
		require.NoError(t, json.Unmarshal(data, &doc))
		require.Equal(t, []byte{0xfe, 0xff}, doc.Request.Body.Data)
	})

	t.Run("json lines", func(t *testing.T) {
		var buff bytes.Buffer
		require.NoError(t, Write(&buff, tx))
		require.NoError(t, Write(&buff, tx))

		lines := bytes.Split(bytes.TrimSpace(buff.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		compact, err := JSON(tx, false)
		require.NoError(t, err)
		require.JSONEq(t, string(compact), string(lines[1]))
	})
}
