// Package scanner iterates over a log of back-to-back transaction records.
package scanner

import (
	"bytes"
	stderrors "errors"
	"iter"

	"github.com/indigo-web/txlog"
	"github.com/indigo-web/txlog/errors"
	"github.com/indigo-web/txlog/http"
	"github.com/indigo-web/txlog/http/method"
	"github.com/indigo-web/utils/uf"
	"go.uber.org/zap"
)

type Option func(*Scanner)

// WithRecovery makes the scanner skip malformed records instead of stopping at the first
// one. Scanning resumes at the next line starting with a known method.
func WithRecovery() Option {
	return func(s *Scanner) {
		s.recovery = true
	}
}

// WithLogger sets the logger skipped records are reported to. No-op by default.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithCodec sets the codec records are decoded with.
func WithCodec(codec *txlog.Codec) Option {
	return func(s *Scanner) {
		s.codec = codec
	}
}

// Scanner is not safe for concurrent use.
type Scanner struct {
	data     []byte
	offset   int
	start    int
	skipped  int
	recovery bool
	codec    *txlog.Codec
	logger   *zap.Logger
	tx       http.Transaction
	err      error
}

func New(data []byte, opts ...Option) *Scanner {
	s := &Scanner{
		data:   data,
		codec:  txlog.New(nil),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan advances to the next transaction. Line terminators between records are ignored.
// It returns false either when the data is exhausted or on failure, which is then
// reported by Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		s.offset += leadingLineEnds(s.data[s.offset:])
		if s.offset >= len(s.data) {
			return false
		}

		tx, n, err := s.codec.Decode(s.data[s.offset:])
		if err == nil {
			s.tx, s.start = tx, s.offset
			s.offset += n
			return true
		}

		err = absolute(err, s.offset)
		if !s.recovery {
			s.err = err
			return false
		}

		next := resync(s.data, s.offset)
		s.logger.Warn("skipping malformed transaction",
			zap.Int("offset", s.offset),
			zap.Int("skipped", next-s.offset),
			zap.Error(err))
		s.skipped++
		s.offset = next
	}
}

// Transaction returns the most recently scanned transaction.
func (s *Scanner) Transaction() http.Transaction {
	return s.tx
}

// Offset returns the position of the most recently scanned transaction in data.
func (s *Scanner) Offset() int {
	return s.start
}

// Err returns the error that stopped scanning, if any. It's always nil with recovery enabled.
func (s *Scanner) Err() error {
	return s.err
}

// Skipped returns the number of malformed records skipped so far.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// All iterates over the remaining transactions. Err must be checked afterwards.
func (s *Scanner) All() iter.Seq[http.Transaction] {
	return func(yield func(http.Transaction) bool) {
		for s.Scan() {
			if !yield(s.tx) {
				return
			}
		}
	}
}

func absolute(err error, offset int) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Shift(offset)
	}

	return err
}

func leadingLineEnds(data []byte) (n int) {
	for n < len(data) && (data[n] == '\r' || data[n] == '\n') {
		n++
	}

	return n
}

// resync returns the position of the first line after offset, that starts with a known
// method followed by a space. If there's none, the end of data is returned.
func resync(data []byte, offset int) int {
	for pos := offset; pos < len(data); {
		boundary := bytes.IndexAny(data[pos:], "\r\n")
		if boundary == -1 {
			break
		}

		pos += boundary
		pos += leadingLineEnds(data[pos:])
		if startsWithMethod(data[pos:]) {
			return pos
		}
	}

	return len(data)
}

func startsWithMethod(line []byte) bool {
	const longestMethod = len("OPTIONS")

	space := bytes.IndexByte(line[:min(len(line), longestMethod+1)], ' ')
	return space > 0 && method.Parse(uf.B2S(line[:space])) != method.Unknown
}
