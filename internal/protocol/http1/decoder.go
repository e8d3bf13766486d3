package http1

import (
	"github.com/indigo-web/txlog/config"
	"github.com/indigo-web/txlog/http"
)

// Decoder decodes transaction records. It holds no mutable state, so a single instance may
// be shared between goroutines.
type Decoder struct {
	cfg *config.Config
}

func NewDecoder(cfg *config.Config) Decoder {
	return Decoder{cfg: cfg}
}

// Request decodes a single request at the beginning of data, returning the number of bytes
// it took. Nothing but the zero value is returned on failure.
func (d Decoder) Request(data []byte) (http.Request, int, error) {
	dec := d.newDecoder(data)
	request, err := dec.request()
	if err != nil {
		return http.Request{}, 0, err
	}

	return request, dec.cur.pos, nil
}

// Response decodes a single response at the beginning of data.
func (d Decoder) Response(data []byte) (http.Response, int, error) {
	dec := d.newDecoder(data)
	response, err := dec.response()
	if err != nil {
		return http.Response{}, 0, err
	}

	return response, dec.cur.pos, nil
}

// Transaction decodes a request immediately followed by its response.
func (d Decoder) Transaction(data []byte) (http.Transaction, int, error) {
	dec := d.newDecoder(data)
	request, err := dec.request()
	if err != nil {
		return http.Transaction{}, 0, err
	}

	response, err := dec.response()
	if err != nil {
		return http.Transaction{}, 0, err
	}

	return http.Transaction{Request: request, Response: response}, dec.cur.pos, nil
}

func (d Decoder) newDecoder(data []byte) *decoder {
	return &decoder{
		cfg: d.cfg,
		cur: cursor{data: data, zeroCopy: d.cfg.Decode.ZeroCopy},
	}
}

// decoder lives for a single call and is never shared.
type decoder struct {
	cfg *config.Config
	cur cursor
}
