package http1

import (
	"bytes"

	"github.com/indigo-web/utils/uf"
)

// cursor walks over a single input buffer. Matchers advance the position only when they
// match; callers, that need to backtrack over several matchers, save and restore pos by hand.
type cursor struct {
	data     []byte
	pos      int
	zeroCopy bool
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.data)
}

func (c *cursor) rest() []byte {
	return c.data[c.pos:]
}

func (c *cursor) peek() (byte, bool) {
	if c.eof() {
		return 0, false
	}

	return c.data[c.pos], true
}

// lineEnd consumes exactly one of CRLF, CR and LF.
func (c *cursor) lineEnd() bool {
	char, ok := c.peek()
	switch {
	case !ok:
		return false
	case char == '\n':
		c.pos++
	case char == '\r':
		c.pos++
		if next, ok := c.peek(); ok && next == '\n' {
			c.pos++
		}
	default:
		return false
	}

	return true
}

// whitespace consumes one or more of SP, HTAB, VT and FF.
func (c *cursor) whitespace() bool {
	start := c.pos
	for c.pos < len(c.data) && isSpace(c.data[c.pos]) {
		c.pos++
	}

	return c.pos > start
}

// token consumes everything up to the next whitespace or line break. The result may be empty.
func (c *cursor) token() []byte {
	start := c.pos
	for c.pos < len(c.data) {
		if char := c.data[c.pos]; isSpace(char) || isLineBreak(char) {
			break
		}

		c.pos++
	}

	return c.data[start:c.pos]
}

// line consumes everything up to the next line break, which is left untouched.
func (c *cursor) line() []byte {
	rest := c.rest()
	boundary := bytes.IndexAny(rest, "\r\n")
	if boundary == -1 {
		boundary = len(rest)
	}

	c.pos += boundary
	return rest[:boundary]
}

// take consumes exactly n bytes. Nothing is consumed if fewer are left.
func (c *cursor) take(n uint64) ([]byte, bool) {
	if n > uint64(len(c.data)-c.pos) {
		return nil, false
	}

	chunk := c.data[c.pos : c.pos+int(n)]
	c.pos += int(n)
	return chunk, true
}

func (c *cursor) str(b []byte) string {
	if c.zeroCopy {
		return uf.B2S(b)
	}

	return string(b)
}

func (c *cursor) bytes(b []byte) []byte {
	if c.zeroCopy || len(b) == 0 {
		return b
	}

	return append(make([]byte, 0, len(b)), b...)
}

func isSpace(char byte) bool {
	switch char {
	case ' ', '\t', '\v', '\f':
		return true
	default:
		return false
	}
}

func isLineBreak(char byte) bool {
	return char == '\r' || char == '\n'
}

func trimLeftSpaces(b []byte) []byte {
	for i, char := range b {
		if !isSpace(char) {
			return b[i:]
		}
	}

	return b[len(b):]
}
