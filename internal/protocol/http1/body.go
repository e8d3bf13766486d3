package http1

import (
	"github.com/indigo-web/txlog/config"
	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/txlog/http"
)

type bodyCodec interface {
	decode(d *decoder) (http.Body, error)
}

type (
	fixedCodec struct {
		length uint64
	}
	chunkedCodec struct{}
	emptyCodec   struct{}
	failingCodec struct {
		err *errors.Error
	}
)

// selectBodyCodec picks the codec the body must be decoded with. Headers are always parsed
// completely by the moment of selection.
func selectBodyCodec(info http.ContentInfo, cfg *config.Config) bodyCodec {
	switch i := info.(type) {
	case http.LengthKnown:
		return fixedCodec{length: i.Length}
	case http.Chunked:
		return chunkedCodec{}
	default:
		if cfg.Body.Framing == config.Strict {
			return failingCodec{err: errors.New(
				errors.UndeterminedBodyFraming, -1, "could not determine content info for HTTP body",
			)}
		}

		return emptyCodec{}
	}
}

func (d *decoder) body(headers http.Headers) (http.Body, error) {
	c := &d.cur
	if !c.lineEnd() {
		if c.eof() {
			return nil, errors.New(errors.TruncatedBody, c.pos, "no empty line after headers")
		}

		return nil, errors.New(errors.MalformedHeaderLine, c.pos, "malformed header line %q", c.line())
	}

	info, err := http.ContentInfoOf(headers)
	if err != nil {
		return nil, err.(*errors.Error).At(c.pos)
	}

	return selectBodyCodec(info, d.cfg).decode(d)
}

func (f fixedCodec) decode(d *decoder) (http.Body, error) {
	if limit := d.cfg.Body.MaxSize; limit > 0 && f.length > limit {
		return nil, errors.New(
			errors.LimitExceeded, d.cur.pos, "body of %d bytes exceeds %d", f.length, d.cfg.Body.MaxSize,
		)
	}

	content, ok := d.cur.take(f.length)
	if !ok {
		return nil, errors.New(
			errors.TruncatedBody, d.cur.pos, "expected %d bytes of body, got only %d",
			f.length, len(d.cur.rest()),
		)
	}

	return http.FixedContent(d.cur.bytes(content)), nil
}

func (chunkedCodec) decode(d *decoder) (http.Body, error) {
	body, err := d.chunked()
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (emptyCodec) decode(*decoder) (http.Body, error) {
	return http.FixedContent{}, nil
}

func (f failingCodec) decode(d *decoder) (http.Body, error) {
	return nil, f.err.At(d.cur.pos)
}

// appendBody renders the body preceded by the empty line. The framing is derived from the
// body itself, the headers aren't consulted.
func appendBody(buff []byte, body http.Body) []byte {
	buff = crlf(buff)

	switch b := body.(type) {
	case http.FixedContent:
		return append(buff, b...)
	case http.ChunkedBody:
		return appendChunked(buff, b)
	default:
		return buff
	}
}
