// Package txlog decodes and encodes HTTP/1.x transaction records: a request immediately
// followed by its response, as captured in traffic logs.
package txlog

import (
	"github.com/indigo-web/txlog/config"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/internal/protocol/http1"
)

// Codec is safe for concurrent use, as long as the config isn't modified.
type Codec struct {
	decoder http1.Decoder
}

// New returns a codec with the given config. Nil config stands for config.Default().
func New(cfg *config.Config) *Codec {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Codec{decoder: http1.NewDecoder(cfg)}
}

// Decode decodes a single transaction at the beginning of data. The number of bytes
// consumed is returned along, so the rest of data may be fed again. Errors are always
// *errors.Error, and no partially decoded value is ever returned.
func (c *Codec) Decode(data []byte) (http.Transaction, int, error) {
	return c.decoder.Transaction(data)
}

func (c *Codec) DecodeRequest(data []byte) (http.Request, int, error) {
	return c.decoder.Request(data)
}

func (c *Codec) DecodeResponse(data []byte) (http.Response, int, error) {
	return c.decoder.Response(data)
}

// Encode renders the transaction in the canonical form. Framing headers aren't touched,
// see http.Framed for keeping them consistent with the bodies.
func (c *Codec) Encode(tx http.Transaction) []byte {
	return c.AppendTransaction(nil, tx)
}

func (c *Codec) AppendTransaction(buff []byte, tx http.Transaction) []byte {
	return http1.AppendTransaction(buff, tx)
}

func (c *Codec) AppendRequest(buff []byte, request http.Request) []byte {
	return http1.AppendRequest(buff, request)
}

func (c *Codec) AppendResponse(buff []byte, response http.Response) []byte {
	return http1.AppendResponse(buff, response)
}

var defaultCodec = New(nil)

// Decode decodes a transaction with the default config.
func Decode(data []byte) (http.Transaction, int, error) {
	return defaultCodec.Decode(data)
}

// Encode encodes a transaction in the canonical form.
func Encode(tx http.Transaction) []byte {
	return defaultCodec.Encode(tx)
}
