package http1

import (
	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/http/method"
	"github.com/indigo-web/txlog/http/proto"
	"github.com/indigo-web/txlog/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

func (d *decoder) request() (request http.Request, err error) {
	c := &d.cur

	start := c.pos
	token := c.token()
	request.Method = method.Parse(uf.B2S(token))
	if request.Method == method.Unknown {
		return request, errors.New(errors.MalformedStartLine, start, "unrecognized method %q", token)
	}

	if !c.whitespace() {
		return request, errors.New(errors.MalformedStartLine, c.pos, "expected whitespace after method")
	}

	target := c.token()
	if len(target) == 0 {
		return request, errors.New(errors.MalformedStartLine, c.pos, "empty request target")
	}

	request.Target = c.str(target)

	if !c.whitespace() {
		return request, errors.New(errors.MalformedStartLine, c.pos, "expected whitespace after request target")
	}

	if request.Protocol, err = d.protocol(); err != nil {
		return request, err
	}

	if !c.lineEnd() {
		return request, errors.New(errors.MalformedStartLine, c.pos, "expected line end after protocol")
	}

	if request.Host, err = d.host(); err != nil {
		return request, err
	}

	if request.Headers, err = d.headers(); err != nil {
		return request, err
	}

	request.Body, err = d.body(request.Headers)
	return request, err
}

func (d *decoder) response() (response http.Response, err error) {
	c := &d.cur

	if response.Protocol, err = d.protocol(); err != nil {
		return response, err
	}

	if !c.whitespace() {
		return response, errors.New(errors.MalformedStartLine, c.pos, "expected whitespace after protocol")
	}

	start := c.pos
	token := c.token()
	code, ok := status.FromBytes(token)
	if !ok {
		return response, errors.New(errors.MalformedStartLine, start, "status code %q isn't three digits from 100 to 999", token)
	}

	response.Code = code

	if c.whitespace() {
		response.Reason = c.str(c.line())
	}

	if !c.lineEnd() {
		return response, errors.New(errors.MalformedStartLine, c.pos, "expected line end after status")
	}

	if response.Headers, err = d.headers(); err != nil {
		return response, err
	}

	response.Body, err = d.body(response.Headers)
	return response, err
}

func (d *decoder) protocol() (proto.Protocol, error) {
	start := d.cur.pos
	token := d.cur.token()
	protocol := proto.FromBytes(token)
	if protocol == proto.Unknown {
		return protocol, errors.New(errors.MalformedStartLine, start, "unrecognized protocol %q", token)
	}

	return protocol, nil
}

// host matches the mandatory Host line right after the request line.
func (d *decoder) host() (string, error) {
	const name = "Host"

	c := &d.cur
	start := c.pos
	line := c.line()

	if len(line) <= len(name) || line[len(name)] != ':' ||
		!strcomp.EqualFold(uf.B2S(line[:len(name)]), name) {
		return "", errors.New(errors.MissingHostHeader, start, "expected Host header, got %q", line)
	}

	host := trimLeftSpaces(line[len(name)+1:])
	if len(host) == 0 {
		return "", errors.New(errors.MissingHostHeader, start, "empty Host header")
	}

	if !c.lineEnd() {
		return "", errors.New(errors.MissingHostHeader, c.pos, "Host header isn't terminated")
	}

	return c.str(host), nil
}

func appendRequestLine(buff []byte, request http.Request) []byte {
	buff = append(buff, request.Method.String()...)
	buff = append(buff, ' ')
	buff = append(buff, request.Target...)
	buff = append(buff, ' ')
	buff = append(buff, request.Protocol.String()...)
	buff = crlf(buff)
	buff = append(buff, "Host: "...)
	buff = append(buff, request.Host...)
	return crlf(buff)
}

func appendStatusLine(buff []byte, response http.Response) []byte {
	buff = append(buff, response.Protocol.String()...)
	buff = append(buff, ' ')
	buff = status.Append(buff, response.Code)
	buff = append(buff, ' ')
	buff = append(buff, response.Reason...)
	return crlf(buff)
}

func crlf(buff []byte) []byte {
	return append(buff, '\r', '\n')
}
