package http

import (
	"math"
	"strings"

	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/utils/strcomp"
)

// ContentInfo describes how the length of a message body is determined. It's a closed set
// of LengthKnown, Chunked and Unknown.
type ContentInfo interface {
	contentInfo()
}

type (
	// LengthKnown is derived from a Content-Length header.
	LengthKnown struct {
		Length uint64
	}
	// Chunked is derived from a Transfer-Encoding header, whose last coding is chunked.
	Chunked struct{}
	// Unknown means that neither of framing headers is presented.
	Unknown struct{}
)

func (LengthKnown) contentInfo() {}
func (Chunked) contentInfo()     {}
func (Unknown) contentInfo()     {}

// ContentInfoOf derives the body framing from the headers. A chunked Transfer-Encoding takes
// precedence over Content-Length, in which case the latter isn't even looked at. Otherwise,
// all the Content-Length values must be valid non-negative integers and agree with each other.
// The returned error is always an *errors.Error of errors.UndeterminedBodyFraming kind.
func ContentInfoOf(headers Headers) (ContentInfo, error) {
	if isChunked(headers) {
		return Chunked{}, nil
	}

	var (
		length uint64
		met    bool
	)

	for value := range headers.Values(ContentLength) {
		n, ok := parseContentLength(value)
		if !ok {
			return nil, errors.New(
				errors.UndeterminedBodyFraming, -1, "malformed Content-Length value %q", value,
			)
		}

		if met && n != length {
			return nil, errors.New(
				errors.UndeterminedBodyFraming, -1, "conflicting Content-Length values %d and %d", length, n,
			)
		}

		length, met = n, true
	}

	if !met {
		return Unknown{}, nil
	}

	return LengthKnown{Length: length}, nil
}

// isChunked treats values of all the Transfer-Encoding headers as a single list of codings.
func isChunked(headers Headers) bool {
	var last string

	for value := range headers.Values(TransferEncoding) {
		for _, token := range strings.Split(value, ",") {
			if token = strings.Trim(token, whitespace); len(token) > 0 {
				last = token
			}
		}
	}

	return strcomp.EqualFold(last, "chunked")
}

func parseContentLength(value string) (n uint64, ok bool) {
	value = strings.Trim(value, whitespace)
	if len(value) == 0 {
		return 0, false
	}

	for i := 0; i < len(value); i++ {
		char := value[i] - '0'
		if char > 9 {
			return 0, false
		}

		if n > (math.MaxUint64-uint64(char))/10 {
			return 0, false
		}

		n = n*10 + uint64(char)
	}

	return n, true
}
