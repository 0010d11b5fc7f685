package iso8601

import "errors"

// =========================
// Streaming Input
// =========================

// ErrStreamClosed is returned by Write after CloseWrite.
var ErrStreamClosed = errors.New("iso8601: write to closed stream")

// Stream parses values from bytes that arrive incrementally.
//
// Until CloseWrite is called, the end of the buffered bytes is not treated as
// the end of the text: a Next method that cannot decide returns
// ErrIncompleteInput and keeps the buffer as it was, so the caller can Write
// more bytes and retry. A successful Next consumes exactly the bytes of the
// value. A Stream is not safe for concurrent use.
type Stream struct {
	buf    []byte
	closed bool
}

// NewStream returns an empty stream.
func NewStream() *Stream {
	return &Stream{}
}

// Write appends p to the buffered input.
func (s *Stream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// CloseWrite marks the end of the input. Afterwards the buffered bytes are
// parsed as complete text.
func (s *Stream) CloseWrite() { s.closed = true }

// Closed reports whether CloseWrite was called.
func (s *Stream) Closed() bool { return s.closed }

// Buffered returns the number of unconsumed bytes.
func (s *Stream) Buffered() int { return len(s.buf) }

// Bytes returns the unconsumed bytes. The slice is only valid until the next
// call that modifies the stream.
func (s *Stream) Bytes() []byte { return s.buf }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// SkipSpace discards leading ASCII whitespace.
func (s *Stream) SkipSpace() {
	n := 0
	for n < len(s.buf) && isSpace(s.buf[n]) {
		n++
	}
	s.consume(n)
}

// Token returns the buffered bytes up to the next whitespace without
// consuming them. It reports false when the token may continue past the
// buffered bytes.
func (s *Stream) Token() ([]byte, bool) {
	n := 0
	for n < len(s.buf) && !isSpace(s.buf[n]) {
		n++
	}
	if n == len(s.buf) && !s.closed {
		return nil, false
	}
	return s.buf[:n], true
}

// SkipToken discards bytes up to the next whitespace. It reports false, and
// discards nothing, when the token may continue past the buffered bytes.
func (s *Stream) SkipToken() bool {
	tok, ok := s.Token()
	if !ok {
		return false
	}
	s.consume(len(tok))
	return true
}

func (s *Stream) consume(n int) {
	s.buf = s.buf[n:]
	if len(s.buf) == 0 {
		s.buf = nil
	}
}

func (s *Stream) input() input {
	return input{buf: s.buf, partial: !s.closed}
}

func nextValue[T any](s *Stream, kind string, p parser[T]) (T, error) {
	var zero T
	v, rest, err := p(s.input())
	if err != nil {
		if errors.Is(err, ErrIncompleteInput) {
			return zero, ErrIncompleteInput
		}
		return zero, parseErr(kind, s.buf, err)
	}
	s.consume(len(s.buf) - len(rest.buf))
	return v, nil
}

// NextDate parses a date at the head of the stream.
func (s *Stream) NextDate() (Date, error) { return nextValue(s, "date", parseDate) }

// NextTime parses a time at the head of the stream.
func (s *Stream) NextTime() (Time, error) { return nextValue(s, "time", parseTime) }

// NextDateTime parses a datetime at the head of the stream.
func (s *Stream) NextDateTime() (DateTime, error) { return nextValue(s, "datetime", parseDateTime) }

// NextDuration parses a duration at the head of the stream.
func (s *Stream) NextDuration() (Duration, error) { return nextValue(s, "duration", parseDuration) }

// NextTimezone parses a timezone offset at the head of the stream.
func (s *Stream) NextTimezone() (Timezone, error) { return nextValue(s, "timezone", timezone) }
