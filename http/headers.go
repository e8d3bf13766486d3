package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/txlog/kv"
)

type (
	Header  = kv.Pair
	Headers = kv.Storage
)

const (
	ContentLength    = "Content-Length"
	TransferEncoding = "Transfer-Encoding"
)

// NewHeader returns a validated header. Leading whitespace of the value is stripped, as it's
// indistinguishable from the separator after the colon once rendered.
func NewHeader(name, value string) (Header, error) {
	h := Header{Key: name, Value: strings.TrimLeft(value, whitespace)}
	return h, ValidateHeader(h)
}

// NewHeaders builds a header list out of validated headers.
func NewHeaders(headers ...Header) (Headers, error) {
	storage := kv.NewPrealloc(len(headers))

	for _, h := range headers {
		h, err := NewHeader(h.Key, h.Value)
		if err != nil {
			return Headers{}, err
		}

		storage.Add(h.Key, h.Value)
	}

	return *storage, nil
}

// MustHeaders is like NewHeaders, but panics on invalid input. Intended for literals.
func MustHeaders(headers ...Header) Headers {
	h, err := NewHeaders(headers...)
	if err != nil {
		panic(err)
	}

	return h
}

func ValidateHeader(h Header) error {
	switch {
	case len(h.Key) == 0:
		return fmt.Errorf("%w: empty header name", ErrInvalidValue)
	case strings.IndexByte(h.Key, ':') != -1:
		return fmt.Errorf("%w: header name %q contains a colon", ErrInvalidValue, h.Key)
	case hasLineBreak(h.Key):
		return fmt.Errorf("%w: header name %q contains a line break", ErrInvalidValue, h.Key)
	case hasLineBreak(h.Value):
		return fmt.Errorf("%w: value of header %q contains a line break", ErrInvalidValue, h.Key)
	}

	return nil
}

func validateHeaders(headers Headers) error {
	for _, h := range headers.Expose() {
		if err := ValidateHeader(h); err != nil {
			return err
		}
	}

	return nil
}

// Framed returns a copy of the headers with the framing headers matching the body:
// Content-Length for FixedContent and Transfer-Encoding: chunked for ChunkedBody. The codec
// itself never touches framing headers, so this is the way to keep them consistent when
// building messages by hand.
func Framed(headers Headers, body Body) Headers {
	framed := headers.Clone()

	switch b := body.(type) {
	case ChunkedBody:
		framed.Delete(ContentLength).Set(TransferEncoding, "chunked")
	case FixedContent:
		framed.Delete(TransferEncoding).Set(ContentLength, strconv.Itoa(len(b)))
	case nil:
		framed.Delete(TransferEncoding).Set(ContentLength, "0")
	}

	return *framed
}

const whitespace = " \t\v\f"

func hasLineBreak(str string) bool {
	return strings.ContainsAny(str, "\r\n")
}
