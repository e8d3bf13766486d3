package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	tcs := []struct {
		Token string
		Want  Protocol
	}{
		{"HTTP/1.0", HTTP10},
		{"HTTP/1.1", HTTP11},
		{"HTTP/2", HTTP2},
		{"HTTP/2.0", HTTP2},
		{"HTTP/1.2", Unknown},
		{"HTTP/1x1", Unknown},
		{"http/1.1", Unknown},
		{"HTTP/1.1 ", Unknown},
		{"HTTP/", Unknown},
		{"", Unknown},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.Want, FromString(tc.Token), tc.Token)
	}
}

func TestString(t *testing.T) {
	for _, p := range []Protocol{HTTP10, HTTP11, HTTP2} {
		require.Equal(t, p, FromString(p.String()))
	}

	require.Empty(t, Unknown.String())
}
