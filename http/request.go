package http

import (
	"fmt"
	"strings"

	"github.com/indigo-web/txlog/http/method"
	"github.com/indigo-web/txlog/http/proto"
)

// Request is a captured HTTP request. The Host line is kept apart from the rest of headers,
// as it's mandatory in captured records and always rendered right after the request line.
type Request struct {
	Method   method.Method
	Target   string
	Protocol proto.Protocol
	Host     string
	Headers  Headers
	Body     Body
}

func NewRequest(
	m method.Method, target string, protocol proto.Protocol, host string, headers Headers, body Body,
) (Request, error) {
	request := Request{
		Method:   m,
		Target:   target,
		Protocol: protocol,
		Host:     strings.TrimLeft(host, whitespace),
		Headers:  headers,
		Body:     body,
	}

	return request, request.Validate()
}

// Validate checks whether the request can be encoded and decoded back unchanged.
func (r Request) Validate() error {
	switch {
	case r.Method == method.Unknown || r.Method > method.Count:
		return fmt.Errorf("%w: unknown method", ErrInvalidValue)
	case len(r.Target) == 0:
		return fmt.Errorf("%w: empty request target", ErrInvalidValue)
	case strings.ContainsAny(r.Target, whitespace+"\r\n"):
		return fmt.Errorf("%w: request target %q contains whitespace", ErrInvalidValue, r.Target)
	case proto.FromString(r.Protocol.String()) == proto.Unknown:
		return fmt.Errorf("%w: unknown protocol", ErrInvalidValue)
	case len(strings.TrimLeft(r.Host, whitespace)) != len(r.Host) || len(r.Host) == 0:
		return fmt.Errorf("%w: host %q is empty or starts with whitespace", ErrInvalidValue, r.Host)
	case hasLineBreak(r.Host):
		return fmt.Errorf("%w: host %q contains a line break", ErrInvalidValue, r.Host)
	}

	if err := validateHeaders(r.Headers); err != nil {
		return err
	}

	return validateBody(r.Body)
}

func (r Request) Equal(other Request) bool {
	return r.Method == other.Method &&
		r.Target == other.Target &&
		r.Protocol == other.Protocol &&
		r.Host == other.Host &&
		r.Headers.Equal(other.Headers) &&
		BodyEqual(r.Body, other.Body)
}
