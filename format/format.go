// Package format renders decoded transactions as JSON documents.
package format

import (
	"io"
	"unicode/utf8"

	"github.com/indigo-web/txlog/http"
	json "github.com/json-iterator/go"
)

type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Body holds the payload as text if it's valid UTF-8, otherwise as base64-encoded data.
// Chunks lists the lengths of chunks of a chunked body.
type Body struct {
	Framing string   `json:"framing"`
	Length  int      `json:"length"`
	Text    string   `json:"text,omitempty"`
	Data    []byte   `json:"data,omitempty"`
	Chunks  []int    `json:"chunks,omitempty"`
	Trailer []Header `json:"trailer,omitempty"`
}

type Request struct {
	Proto  string   `json:"protocol"`
	Method string   `json:"method"`
	Target string   `json:"target"`
	Host   string   `json:"host"`
	Header []Header `json:"header,omitempty"`
	Body   Body     `json:"body"`
}

type Response struct {
	Proto      string   `json:"protocol"`
	StatusCode int      `json:"statusCode"`
	StatusText string   `json:"statusText"`
	Header     []Header `json:"header,omitempty"`
	Body       Body     `json:"body"`
}

type Transaction struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
}

func FromTransaction(tx http.Transaction) Transaction {
	return Transaction{
		Request: Request{
			Proto:  tx.Request.Protocol.String(),
			Method: tx.Request.Method.String(),
			Target: tx.Request.Target,
			Host:   tx.Request.Host,
			Header: fromHeaders(tx.Request.Headers),
			Body:   fromBody(tx.Request.Body),
		},
		Response: Response{
			Proto:      tx.Response.Protocol.String(),
			StatusCode: int(tx.Response.Code),
			StatusText: tx.Response.Reason,
			Header:     fromHeaders(tx.Response.Headers),
			Body:       fromBody(tx.Response.Body),
		},
	}
}

// JSON renders the transaction document, indented by two spaces if requested.
func JSON(tx http.Transaction, indent bool) ([]byte, error) {
	doc := FromTransaction(tx)
	if indent {
		return json.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
	}

	return json.ConfigCompatibleWithStandardLibrary.Marshal(doc)
}

// Write streams the compact document followed by a newline, so a sequence of transactions
// results in JSON Lines.
func Write(w io.Writer, tx http.Transaction) error {
	stream := json.ConfigCompatibleWithStandardLibrary.BorrowStream(w)
	defer json.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	stream.WriteVal(FromTransaction(tx))
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}

	return stream.Flush()
}

func fromHeaders(headers http.Headers) []Header {
	if headers.Empty() {
		return nil
	}

	result := make([]Header, 0, headers.Len())
	for name, value := range headers.Pairs() {
		result = append(result, Header{Name: name, Value: value})
	}

	return result
}

func fromBody(body http.Body) Body {
	switch b := body.(type) {
	case http.ChunkedBody:
		chunks := make([]int, 0, len(b.Chunks))
		for _, chunk := range b.Chunks {
			chunks = append(chunks, len(chunk))
		}

		result := payload(b.Bytes())
		result.Framing = "chunked"
		result.Chunks = chunks
		result.Trailer = fromHeaders(b.Trailer)
		return result
	case http.FixedContent:
		result := payload(b)
		result.Framing = "fixed"
		return result
	default:
		return Body{Framing: "fixed"}
	}
}

func payload(data []byte) Body {
	if utf8.Valid(data) {
		return Body{Length: len(data), Text: string(data)}
	}

	return Body{Length: len(data), Data: data}
}
