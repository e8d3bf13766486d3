package http

import (
	"bytes"
	"fmt"
	"strings"
)

// Body is a closed set of FixedContent and ChunkedBody. A nil Body is treated as an empty
// FixedContent everywhere.
type Body interface {
	// Len returns the payload length, excluding any framing.
	Len() int
	body()
}

// FixedContent is a body, whose length is known in advance (Content-Length).
type FixedContent []byte

func (f FixedContent) Len() int {
	return len(f)
}

func (FixedContent) body() {}

// ChunkedBody is a body transferred in the chunked coding. Lengths of the chunks aren't
// stored, as they are always recomputed when encoding. Trailer holds the field lines that
// followed the terminating zero-length chunk, if any.
type ChunkedBody struct {
	Chunks  [][]byte
	Trailer Headers
}

// NewChunkedBody returns a chunked body of non-empty chunks. An empty chunk terminates the
// body on the wire, therefore it cannot be a part of one.
func NewChunkedBody(chunks ...[]byte) (ChunkedBody, error) {
	for i, chunk := range chunks {
		if len(chunk) == 0 {
			return ChunkedBody{}, fmt.Errorf("%w: chunk %d is empty", ErrInvalidValue, i)
		}
	}

	return ChunkedBody{Chunks: chunks}, nil
}

// WithTrailer returns a copy of the body with the trailer fields attached.
func (c ChunkedBody) WithTrailer(trailer Headers) (ChunkedBody, error) {
	if err := validateTrailer(trailer); err != nil {
		return c, err
	}

	c.Trailer = trailer
	return c, nil
}

func (c ChunkedBody) Len() (n int) {
	for _, chunk := range c.Chunks {
		n += len(chunk)
	}

	return n
}

// Bytes returns all the chunks glued together.
func (c ChunkedBody) Bytes() []byte {
	buff := make([]byte, 0, c.Len())
	for _, chunk := range c.Chunks {
		buff = append(buff, chunk...)
	}

	return buff
}

func (ChunkedBody) body() {}

// BodyEqual compares bodies by their kind and content. Empty chunks are ignored, as they
// are never encoded.
func BodyEqual(a, b Body) bool {
	if a == nil {
		a = FixedContent(nil)
	}
	if b == nil {
		b = FixedContent(nil)
	}

	switch x := a.(type) {
	case FixedContent:
		y, ok := b.(FixedContent)
		return ok && bytes.Equal(x, y)
	case ChunkedBody:
		y, ok := b.(ChunkedBody)
		return ok && chunksEqual(x.Chunks, y.Chunks) && x.Trailer.Equal(y.Trailer)
	default:
		return false
	}
}

func chunksEqual(a, b [][]byte) bool {
	a, b = nonEmpty(a), nonEmpty(b)
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func nonEmpty(chunks [][]byte) [][]byte {
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			filtered := make([][]byte, 0, len(chunks))
			for _, c := range chunks {
				if len(c) > 0 {
					filtered = append(filtered, c)
				}
			}

			return filtered
		}
	}

	return chunks
}

func validateBody(body Body) error {
	if c, ok := body.(ChunkedBody); ok {
		return validateTrailer(c.Trailer)
	}

	return nil
}

// validateTrailer additionally forbids whitespace in field names, otherwise a start line
// containing a colon would be indistinguishable from a trailer field.
func validateTrailer(trailer Headers) error {
	for _, h := range trailer.Expose() {
		if err := ValidateHeader(h); err != nil {
			return err
		}

		if strings.ContainsAny(h.Key, whitespace) {
			return fmt.Errorf("%w: trailer field name %q contains whitespace", ErrInvalidValue, h.Key)
		}
	}

	return nil
}
