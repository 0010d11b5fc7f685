package iso8601

import (
	"errors"
	"fmt"
	"strconv"
)

// =========================
// Input & Combinators
// =========================

// input is the remaining text seen by a parser. It is a value: a failed
// parser hands back the input it received, so backtracking is free.
//
// In partial mode the end of buf is not the end of the text, and any parser
// that runs out of bytes before it can decide reports ErrIncompleteInput.
type input struct {
	buf     []byte
	partial bool
}

func completeInput(b []byte) input { return input{buf: b} }

func (in input) advance(n int) input {
	in.buf = in.buf[n:]
	return in
}

func (in input) atEnd() bool { return len(in.buf) == 0 }

// starved reports whether the parser stopped at the end of a partial buffer.
func (in input) starved() bool { return in.partial && len(in.buf) == 0 }

func (in input) describe() string {
	if len(in.buf) == 0 {
		return "end of input"
	}
	return strconv.QuoteRune(rune(in.buf[0]))
}

// parser consumes a prefix of the input and returns the value it denotes
// together with the remaining input.
type parser[T any] func(in input) (T, input, error)

// maybe is the result of an optional parser.
type maybe[T any] struct {
	Value T
	Ok    bool
}

func (m maybe[T]) or(def T) T {
	if m.Ok {
		return m.Value
	}
	return def
}

// opt turns a syntax error of p into an absent value and leaves the input
// untouched. Incomplete input and range violations are still propagated: a
// present but invalid component fails the whole value.
func opt[T any](p parser[T]) parser[maybe[T]] {
	return func(in input) (maybe[T], input, error) {
		v, rest, err := p(in)
		if err != nil {
			if errors.Is(err, ErrIncompleteInput) || errors.Is(err, ErrOutOfRange) {
				return maybe[T]{}, in, err
			}
			return maybe[T]{}, in, nil
		}
		return maybe[T]{Value: v, Ok: true}, rest, nil
	}
}

// alt tries each alternative on the same input and commits to the first one
// that succeeds. An alternative that needs more input stops the search.
func alt[T any](what string, ps ...parser[T]) parser[T] {
	return func(in input) (T, input, error) {
		var zero T
		var cause error
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			if errors.Is(err, ErrIncompleteInput) {
				return zero, in, err
			}
			if cause == nil || severity(err) > severity(cause) {
				cause = err
			}
		}
		return zero, in, fmt.Errorf("%w for %s: %w", ErrNoMatchingFormat, what, cause)
	}
}

// severity ranks alternative failures so that alt reports the most specific
// one: a range violation beats an empty duration, which beats a syntax error.
func severity(err error) int {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return 2
	case errors.Is(err, ErrEmptyDuration):
		return 1
	default:
		return 0
	}
}

// preceded runs prefix then p, keeping only the value of p.
func preceded[P, T any](prefix parser[P], p parser[T]) parser[T] {
	return func(in input) (T, input, error) {
		var zero T
		_, rest, err := prefix(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := p(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// terminated runs p then suffix, keeping only the value of p.
func terminated[T, S any](p parser[T], suffix parser[S]) parser[T] {
	return func(in input) (T, input, error) {
		var zero T
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		if _, rest, err = suffix(rest); err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// tag matches exactly one literal byte.
func tag(c byte) parser[byte] {
	return func(in input) (byte, input, error) {
		if in.starved() {
			return 0, in, ErrIncompleteInput
		}
		if in.atEnd() || in.buf[0] != c {
			return 0, in, malformed(in, strconv.QuoteRune(rune(c)))
		}
		return c, in.advance(1), nil
	}
}

// oneOf matches any single byte of set.
func oneOf(set string) parser[byte] {
	return func(in input) (byte, input, error) {
		if in.starved() {
			return 0, in, ErrIncompleteInput
		}
		if !in.atEnd() {
			for i := 0; i < len(set); i++ {
				if in.buf[0] == set[i] {
					return set[i], in.advance(1), nil
				}
			}
		}
		return 0, in, malformed(in, "one of "+strconv.Quote(set))
	}
}

// not succeeds without consuming anything when p fails.
func not[T any](p parser[T]) parser[struct{}] {
	return func(in input) (struct{}, input, error) {
		_, _, err := p(in)
		if err == nil {
			return struct{}{}, in, malformed(in, "no match")
		}
		if errors.Is(err, ErrIncompleteInput) {
			return struct{}{}, in, err
		}
		return struct{}{}, in, nil
	}
}

var (
	optDash  = opt(tag('-'))
	optColon = opt(tag(':'))
)
