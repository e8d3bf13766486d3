package http1

import (
	"math"

	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/internal/hexconv"
)

// chunked decodes chunks until either the terminal zero-length chunk or the first line, that
// doesn't look like a chunk header. The terminal chunk isn't a part of the result.
func (d *decoder) chunked() (http.ChunkedBody, error) {
	var (
		c     = &d.cur
		body  = http.ChunkedBody{Chunks: make([][]byte, 0, d.cfg.Chunked.ChunksPrealloc)}
		total uint64
	)

	for {
		start := c.pos
		length, ok, err := d.chunkHeader()
		if err != nil {
			return http.ChunkedBody{}, err
		}

		if !ok {
			c.pos = start
			return body, nil
		}

		if length == 0 {
			trailer, err := d.trailer()
			if err != nil {
				return http.ChunkedBody{}, err
			}

			if !trailer.Empty() {
				body.Trailer = trailer
			}

			c.lineEnd()
			return body, nil
		}

		if limit := d.cfg.Body.MaxSize; limit > 0 && length > limit-total {
			return http.ChunkedBody{}, errors.New(
				errors.LimitExceeded, start, "chunked body exceeds %d bytes", d.cfg.Body.MaxSize,
			)
		}

		total += length
		chunk, ok := c.take(length)
		if !ok {
			return http.ChunkedBody{}, errors.New(
				errors.TruncatedBody, c.pos, "expected chunk of %d bytes, got only %d",
				length, len(c.rest()),
			)
		}

		if !c.lineEnd() {
			return http.ChunkedBody{}, errors.New(
				errors.MalformedChunkLength, c.pos, "chunk is longer than declared %d bytes", length,
			)
		}

		body.Chunks = append(body.Chunks, c.bytes(chunk))
	}
}

// chunkHeader matches the chunk length line: hex digits, optionally prefixed by 0x, optional
// extensions and the line terminator. ok is false on mismatch, in which case the cursor
// position is undefined and must be restored by the caller.
func (d *decoder) chunkHeader() (length uint64, ok bool, err error) {
	var (
		c      = &d.cur
		cfg    = d.cfg.Chunked
		start  = c.pos
		digits int
	)

	if rest := c.rest(); cfg.HexPrefix && len(rest) > 2 && rest[0] == '0' &&
		(rest[1] == 'x' || rest[1] == 'X') && hexconv.Halfbyte[rest[2]] != 0xFF {
		c.pos += 2
	}

	for ; !c.eof(); c.pos++ {
		value := hexconv.Halfbyte[c.data[c.pos]]
		if value == 0xFF {
			break
		}

		if digits++; cfg.MaxLengthDigits > 0 && digits > cfg.MaxLengthDigits {
			return 0, false, errors.New(
				errors.MalformedChunkLength, start, "chunk length is longer than %d digits", cfg.MaxLengthDigits,
			)
		}

		if length > math.MaxUint64>>4 {
			return 0, false, errors.New(errors.MalformedChunkLength, start, "chunk length overflows uint64")
		}

		length = length<<4 | uint64(value)
	}

	if digits == 0 {
		return 0, false, nil
	}

	if char, _ := c.peek(); char == ';' {
		// chunk extensions are ignored
		c.line()
	}

	return length, c.lineEnd(), nil
}

func appendChunked(buff []byte, body http.ChunkedBody) []byte {
	for _, chunk := range body.Chunks {
		if len(chunk) == 0 {
			continue
		}

		buff = hexconv.Append(buff, uint64(len(chunk)))
		buff = crlf(buff)
		buff = append(buff, chunk...)
		buff = crlf(buff)
	}

	buff = append(buff, '0')
	buff = crlf(buff)
	buff = appendHeaders(buff, body.Trailer)
	return crlf(buff)
}
