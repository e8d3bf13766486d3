package http1

import (
	"bytes"

	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/kv"
)

// header matches a single field line including its line terminator. On mismatch, the
// cursor stays where it was. Trailer field names must not contain whitespace, so a start
// line of the next message is never taken for one.
func (d *decoder) header(trailer bool) (header http.Header, ok bool) {
	c := &d.cur
	start := c.pos
	line := c.line()

	colon := bytes.IndexByte(line, ':')
	if colon < 1 || !c.lineEnd() || (trailer && bytes.ContainsAny(line[:colon], " \t\v\f")) {
		c.pos = start
		return header, false
	}

	return http.Header{
		Key:   c.str(line[:colon]),
		Value: c.str(trimLeftSpaces(line[colon+1:])),
	}, true
}

// headers matches as many field lines as possible. The first line not being a field line
// terminates the list and is left for the caller.
func (d *decoder) headers() (http.Headers, error) {
	return d.fields(false)
}

func (d *decoder) trailer() (http.Headers, error) {
	return d.fields(true)
}

func (d *decoder) fields(trailer bool) (http.Headers, error) {
	var (
		cfg     = d.cfg.Headers.Number
		headers = kv.NewPrealloc(cfg.Default)
	)

	for {
		start := d.cur.pos
		header, ok := d.header(trailer)
		if !ok {
			return *headers, nil
		}

		if cfg.Maximal > 0 && headers.Len() >= cfg.Maximal {
			return http.Headers{}, errors.New(
				errors.LimitExceeded, start, "more than %d headers", cfg.Maximal,
			)
		}

		headers.Add(header.Key, header.Value)
	}
}

func appendHeaders(buff []byte, headers http.Headers) []byte {
	for _, header := range headers.Expose() {
		buff = append(buff, header.Key...)
		buff = append(buff, ':', ' ')
		buff = append(buff, header.Value...)
		buff = crlf(buff)
	}

	return buff
}
