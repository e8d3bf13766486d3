package errors

import (
	"fmt"
)

// Kind classifies decode failures. Every failure of the codec carries exactly one kind.
type Kind uint8

const (
	Unknown Kind = iota
	// MalformedStartLine is returned when the method, target, version, status code or
	// reason phrase of a start line don't match.
	MalformedStartLine
	// MissingHostHeader is returned when the line following the request line isn't a
	// non-empty Host line.
	MissingHostHeader
	// MalformedHeaderLine is returned when the header section isn't followed by an empty line.
	MalformedHeaderLine
	// UndeterminedBodyFraming is returned when the body framing can't be derived from the
	// headers: either a Content-Length value is unparsable, or neither Content-Length nor
	// chunked Transfer-Encoding is present and the strict framing policy is enabled.
	UndeterminedBodyFraming
	MalformedChunkLength
	// TruncatedBody is returned when fewer bytes are available than were declared.
	TruncatedBody
	// LimitExceeded is returned when a configured limit is hit.
	LimitExceeded
)

func (k Kind) String() string {
	switch k {
	case MalformedStartLine:
		return "malformed start line"
	case MissingHostHeader:
		return "missing host header"
	case MalformedHeaderLine:
		return "malformed header line"
	case UndeterminedBodyFraming:
		return "undetermined body framing"
	case MalformedChunkLength:
		return "malformed chunk length"
	case TruncatedBody:
		return "truncated body"
	case LimitExceeded:
		return "limit exceeded"
	default:
		return "unknown error"
	}
}

// Error is the only error type returned by the codec. Offset is the position in the input
// at which the failure was detected, or -1 if it isn't bound to any.
type Error struct {
	Kind    Kind
	Offset  int
	Message string
}

func New(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if len(e.Message) == 0 {
		return e.Kind.String()
	}

	if e.Offset < 0 {
		return e.Kind.String() + ": " + e.Message
	}

	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Is reports whether the target is an *Error of the same kind. This lets callers match
// against the sentinels below regardless of offset and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// At returns a copy of the error bound to the offset.
func (e *Error) At(offset int) *Error {
	bound := *e
	bound.Offset = offset
	return &bound
}

// Shift returns a copy of the error with the offset moved by delta bytes.
func (e *Error) Shift(delta int) *Error {
	moved := *e
	if moved.Offset >= 0 {
		moved.Offset += delta
	}

	return &moved
}

var (
	ErrMalformedStartLine      = &Error{Kind: MalformedStartLine, Offset: -1}
	ErrMissingHostHeader       = &Error{Kind: MissingHostHeader, Offset: -1}
	ErrMalformedHeaderLine     = &Error{Kind: MalformedHeaderLine, Offset: -1}
	ErrUndeterminedBodyFraming = &Error{Kind: UndeterminedBodyFraming, Offset: -1}
	ErrMalformedChunkLength    = &Error{Kind: MalformedChunkLength, Offset: -1}
	ErrTruncatedBody           = &Error{Kind: TruncatedBody, Offset: -1}
	ErrLimitExceeded           = &Error{Kind: LimitExceeded, Offset: -1}
)
