package http1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cursorOf(data string) *cursor {
	return &cursor{data: []byte(data)}
}

func TestCursor(t *testing.T) {
	t.Run("line end", func(t *testing.T) {
		for _, tc := range []struct {
			Input string
			Pos   int
		}{
			{"\r\nrest", 2},
			{"\nrest", 1},
			{"\rrest", 1},
			{"\n\nrest", 1},
			{"\r\n\r\n", 2},
		} {
			c := cursorOf(tc.Input)
			require.True(t, c.lineEnd(), tc.Input)
			require.Equal(t, tc.Pos, c.pos, tc.Input)
		}

		c := cursorOf("rest")
		require.False(t, c.lineEnd())
		require.Zero(t, c.pos)
		require.False(t, cursorOf("").lineEnd())
	})

	t.Run("whitespace", func(t *testing.T) {
		c := cursorOf(" \t\v\fx")
		require.True(t, c.whitespace())
		require.Equal(t, 4, c.pos)
		require.False(t, c.whitespace())
		require.Equal(t, 4, c.pos)
	})

	t.Run("token", func(t *testing.T) {
		c := cursorOf("GET /")
		require.Equal(t, "GET", string(c.token()))
		require.Empty(t, c.token())
		require.True(t, c.whitespace())
		require.Equal(t, "/", string(c.token()))
		require.True(t, c.eof())
	})

	t.Run("line", func(t *testing.T) {
		c := cursorOf("Hello: world\r\nnext")
		require.Equal(t, "Hello: world", string(c.line()))
		require.True(t, c.lineEnd())
		require.Equal(t, "next", string(c.line()))
		require.True(t, c.eof())
	})

	t.Run("take", func(t *testing.T) {
		c := cursorOf("abcdef")
		chunk, ok := c.take(4)
		require.True(t, ok)
		require.Equal(t, "abcd", string(chunk))

		_, ok = c.take(3)
		require.False(t, ok)
		require.Equal(t, 4, c.pos)
	})

	t.Run("copying", func(t *testing.T) {
		data := []byte("hello")
		c := &cursor{data: data}
		str, b := c.str(data), c.bytes(data)
		data[0] = 'j'
		require.Equal(t, "hello", str)
		require.Equal(t, "hello", string(b))

		c.zeroCopy = true
		b = c.bytes(data)
		data[0] = 'y'
		require.Equal(t, "yello", string(b))
	})
}
