package iso8601

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// =========================
// Digit Reader
// =========================

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// takeDigits consumes between min and max leading ASCII digits. A max of zero
// means no upper bound.
func takeDigits(in input, min, max int) ([]byte, input, error) {
	n := 0
	for n < len(in.buf) && (max == 0 || n < max) && isDigit(in.buf[n]) {
		n++
	}
	if in.partial && n == len(in.buf) && (max == 0 || n < max) {
		return nil, in, ErrIncompleteInput
	}
	if n < min {
		want := fmt.Sprintf("%d digits", min)
		if min == 1 {
			want = "a digit"
		}
		return nil, in, malformed(in.advance(n), want)
	}
	return in.buf[:n], in.advance(n), nil
}

// decimal converts ASCII digits to an unsigned integer, reporting overflow of
// T as an out-of-range field.
func decimal[T constraints.Unsigned](field string, digits []byte) (T, error) {
	var v T
	limit := ^T(0)
	for _, c := range digits {
		d := T(c - '0')
		if v > (limit-d)/10 {
			return 0, &RangeError{Field: field, Value: string(digits), Min: 0, Max: int64(min(uint64(limit), math.MaxInt64))}
		}
		v = v*10 + d
	}
	return v, nil
}

// digits reads exactly n digits.
func digits(field string, n int) parser[uint32] {
	return func(in input) (uint32, input, error) {
		raw, rest, err := takeDigits(in, n, n)
		if err != nil {
			return 0, in, err
		}
		v, err := decimal[uint32](field, raw)
		if err != nil {
			return 0, in, err
		}
		return v, rest, nil
	}
}

// number reads one or more digits of any length.
func number(field string) parser[uint32] {
	return func(in input) (uint32, input, error) {
		raw, rest, err := takeDigits(in, 1, 0)
		if err != nil {
			return 0, in, err
		}
		v, err := decimal[uint32](field, raw)
		if err != nil {
			return 0, in, err
		}
		return v, rest, nil
	}
}

// =========================
// Bounded Field Parser
// =========================

func within[T constraints.Integer](v, lo, hi T) bool { return lo <= v && v <= hi }

// field reads exactly n digits and checks lo <= v <= hi. A value outside the
// bounds is an error and consumes nothing.
func field(name string, n int, lo, hi uint32) parser[uint32] {
	read := digits(name, n)
	return func(in input) (uint32, input, error) {
		v, rest, err := read(in)
		if err != nil {
			return 0, in, err
		}
		if !within(v, lo, hi) {
			return 0, in, outOfRange(name, v, int64(lo), int64(hi))
		}
		return v, rest, nil
	}
}

// =========================
// Sign Parser
// =========================

// sign requires a '+' or '-' and yields +1 or -1.
func sign(in input) (int32, input, error) {
	c, rest, err := oneOf("+-")(in)
	if err != nil {
		return 0, in, err
	}
	if c == '-' {
		return -1, rest, nil
	}
	return 1, rest, nil
}

// optSign accepts an optional sign; absence yields +1.
func optSign(in input) (int32, input, error) {
	s, rest, err := opt(sign)(in)
	if err != nil {
		return 0, in, err
	}
	return s.or(1), rest, nil
}
