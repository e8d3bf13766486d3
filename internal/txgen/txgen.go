// Package txgen generates random, but always valid transactions for tests and benchmarks.
package txgen

import (
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/http/method"
	"github.com/indigo-web/txlog/http/proto"
	"github.com/indigo-web/txlog/http/status"
)

// Headers returns n headers with random names and values.
func Headers(n int) http.Headers {
	hdrs := make([]http.Header, n)
	for i := range hdrs {
		hdrs[i] = http.Header{Key: "X-" + uniuri.NewLen(12), Value: uniuri.NewLen(40)}
	}

	return http.MustHeaders(hdrs...)
}

// Body returns a body of the given size. Chunked bodies are split into chunks of at most
// 1KiB, and an empty chunked body has no chunks.
func Body(size int, chunked bool) http.Body {
	payload := []byte(uniuri.NewLen(size))
	if !chunked {
		return http.FixedContent(payload)
	}

	var chunks [][]byte
	for len(payload) > 0 {
		n := min(len(payload), 1024)
		chunks = append(chunks, payload[:n])
		payload = payload[n:]
	}

	return http.ChunkedBody{Chunks: chunks}
}

// Transaction returns the i-th transaction of a deterministic shape: method, protocol,
// header count and body framing vary with i, while the contents are random.
func Transaction(i int) http.Transaction {
	requestBody := Body(i*7%300, i%3 == 0)
	responseBody := Body(i*131%5000, i%2 == 0)

	request, err := http.NewRequest(
		method.List[i%len(method.List)],
		"/"+strings.ToLower(uniuri.NewLen(1+i%20)),
		[...]proto.Protocol{proto.HTTP10, proto.HTTP11, proto.HTTP2}[i%3],
		uniuri.NewLen(8)+".example.com",
		http.Framed(Headers(i%6), requestBody),
		requestBody,
	)
	if err != nil {
		panic(err)
	}

	response, err := http.NewResponse(
		request.Protocol,
		[...]status.Code{status.OK, status.Created, status.NotFound, status.BadGateway, 599}[i%5],
		"",
		http.Framed(Headers(i%4), responseBody),
		responseBody,
	)
	if err != nil {
		panic(err)
	}

	return http.Transaction{Request: request, Response: response}
}

// Transactions returns the first n transactions.
func Transactions(n int) []http.Transaction {
	txs := make([]http.Transaction, n)
	for i := range txs {
		txs[i] = Transaction(i)
	}

	return txs
}
