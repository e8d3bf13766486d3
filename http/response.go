package http

import (
	"fmt"
	"strings"

	"github.com/indigo-web/txlog/http/proto"
	"github.com/indigo-web/txlog/http/status"
)

// Response is a captured HTTP response.
type Response struct {
	Protocol proto.Protocol
	Code     status.Code
	Reason   string
	Headers  Headers
	Body     Body
}

// NewResponse returns a validated response. If the reason is empty, the standard text of
// the code is used instead.
func NewResponse(
	protocol proto.Protocol, code status.Code, reason string, headers Headers, body Body,
) (Response, error) {
	reason = strings.TrimLeft(reason, whitespace)
	if len(reason) == 0 {
		reason = string(status.Text(code))
	}

	response := Response{
		Protocol: protocol,
		Code:     code,
		Reason:   reason,
		Headers:  headers,
		Body:     body,
	}

	return response, response.Validate()
}

// Validate checks whether the response can be encoded and decoded back unchanged.
func (r Response) Validate() error {
	switch {
	case proto.FromString(r.Protocol.String()) == proto.Unknown:
		return fmt.Errorf("%w: unknown protocol", ErrInvalidValue)
	case !status.Valid(r.Code):
		return fmt.Errorf("%w: status code %d isn't three digits long", ErrInvalidValue, r.Code)
	case len(strings.TrimLeft(r.Reason, whitespace)) != len(r.Reason):
		return fmt.Errorf("%w: reason %q starts with whitespace", ErrInvalidValue, r.Reason)
	case hasLineBreak(r.Reason):
		return fmt.Errorf("%w: reason %q contains a line break", ErrInvalidValue, r.Reason)
	}

	if err := validateHeaders(r.Headers); err != nil {
		return err
	}

	return validateBody(r.Body)
}

func (r Response) Equal(other Response) bool {
	return r.Protocol == other.Protocol &&
		r.Code == other.Code &&
		r.Reason == other.Reason &&
		r.Headers.Equal(other.Headers) &&
		BodyEqual(r.Body, other.Body)
}
