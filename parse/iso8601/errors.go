package iso8601

import (
	"errors"
	"fmt"
)

// =========================
// Error Taxonomy
// =========================

var (
	// ErrMalformedInput reports that the text did not match the grammar at the
	// current position.
	ErrMalformedInput = errors.New("malformed input")
	// ErrOutOfRange reports a syntactically valid field whose value violates
	// the field's inclusive bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrEmptyDuration reports a designator duration without any designator,
	// such as "P" or "PT".
	ErrEmptyDuration = errors.New("empty duration")
	// ErrIncompleteInput is only produced in streaming mode: the buffered bytes
	// end inside a value and more input is needed.
	ErrIncompleteInput = errors.New("incomplete input")
	// ErrNoOffset means no timezone designator ('Z', '+' or '-') is present.
	ErrNoOffset = errors.New("no timezone offset")
	// ErrNoMatchingFormat is returned when every alternative of a grammar failed.
	ErrNoMatchingFormat = fmt.Errorf("%w: no matching format", ErrMalformedInput)
)

// RangeError describes a field whose parsed value is outside [Min, Max].
type RangeError struct {
	Field string
	Value string
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s not in [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// ParseError is the single error type returned by the exported parse
// functions. Kind names the grammar ("date", "time", ...) and Input carries
// the original text.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("iso8601: cannot parse %s %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("iso8601: cannot parse %s %q: %s", e.Kind, e.Input, e.Err.Error())
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(kind string, src []byte, err error) error {
	return &ParseError{Kind: kind, Input: string(src), Err: err}
}

func malformed(in input, want string) error {
	return fmt.Errorf("%w: expected %s, found %s", ErrMalformedInput, want, in.describe())
}

func outOfRange[T int64 | uint64 | uint32 | int32](field string, v T, lo, hi int64) error {
	return &RangeError{Field: field, Value: fmt.Sprint(v), Min: lo, Max: hi}
}
