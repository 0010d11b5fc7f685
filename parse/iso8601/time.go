package iso8601

import "errors"

// =========================
// Time Parser
// =========================
//
//	time     = hour [":"] minute [[":"] second] ["."/"," frac] [timezone]
//	timezone = "Z" / sign hour [[":"] minute]

var (
	timeHour   = field("hour", 2, 0, 24)
	timeMinute = field("minute", 2, 0, 59)
	timeSecond = field("second", 2, 0, 60)

	timeSecondPart   = opt(preceded(optColon, timeSecond))
	timeFractionPart = opt(preceded(oneOf(".,"), fraction))
	tzMinutePart     = opt(preceded(optColon, timeMinute))

	parseTimezone = alt("timezone", timezoneUTC, timezoneOffset)
)

// fraction reads one or more digits after a decimal mark and converts them to
// milliseconds: digits past the third are dropped, fewer than three are
// right padded with zeros ("1" is 100, "1234" is 123).
func fraction(in input) (uint32, input, error) {
	raw, rest, err := takeDigits(in, 1, 0)
	if err != nil {
		return 0, in, err
	}
	head := raw[:min(len(raw), 3)]
	ms, err := decimal[uint16]("fraction", head)
	if err != nil {
		return 0, in, err
	}
	for i := len(head); i < 3; i++ {
		ms *= 10
	}
	return uint32(ms), rest, nil
}

func parseTime(in input) (Time, input, error) {
	h, rest, err := timeHour(in)
	if err != nil {
		return Time{}, in, err
	}
	if _, rest, err = optColon(rest); err != nil {
		return Time{}, in, err
	}
	m, rest, err := timeMinute(rest)
	if err != nil {
		return Time{}, in, err
	}
	sec, rest, err := timeSecondPart(rest)
	if err != nil {
		return Time{}, in, err
	}
	ms, rest, err := timeFractionPart(rest)
	if err != nil {
		return Time{}, in, err
	}

	t := Time{Hour: h, Minute: m, Second: sec.or(0), Millisecond: ms.or(0)}
	if t.Hour == 24 && (t.Minute != 0 || t.Second != 0 || t.Millisecond != 0) {
		return Time{}, in, outOfRange("hour", t.Hour, 0, 23)
	}

	tz, next, err := optionalTimezone(rest)
	if err != nil {
		return Time{}, in, err
	}
	t.Timezone = tz
	return t, next, nil
}

// optionalTimezone reads a trailing offset if one is present. A missing or
// malformed offset yields UTC and leaves the input untouched; an offset with
// an out-of-range hour or minute fails the time.
func optionalTimezone(in input) (Timezone, input, error) {
	tz, rest, err := timezone(in)
	switch {
	case err == nil:
		return tz, rest, nil
	case errors.Is(err, ErrIncompleteInput), errors.Is(err, ErrOutOfRange):
		return Timezone{}, in, err
	default:
		return UTC, in, nil
	}
}

func timezoneUTC(in input) (Timezone, input, error) {
	_, rest, err := tag('Z')(in)
	if err != nil {
		return Timezone{}, in, err
	}
	return UTC, rest, nil
}

// timezoneOffset reads sign hour [[":"] minute]; the sign applies to both
// parts.
func timezoneOffset(in input) (Timezone, input, error) {
	s, rest, err := sign(in)
	if err != nil {
		return Timezone{}, in, err
	}
	h, rest, err := timeHour(rest)
	if err != nil {
		return Timezone{}, in, err
	}
	m, rest, err := tzMinutePart(rest)
	if err != nil {
		return Timezone{}, in, err
	}
	return Timezone{OffsetHours: s * int32(h), OffsetMinutes: s * int32(m.or(0))}, rest, nil
}

// timezone is the top-level timezone grammar. It distinguishes a missing
// designator (ErrNoOffset) from a malformed one.
func timezone(in input) (Timezone, input, error) {
	if in.starved() {
		return Timezone{}, in, ErrIncompleteInput
	}
	if in.atEnd() || (in.buf[0] != 'Z' && in.buf[0] != '+' && in.buf[0] != '-') {
		return Timezone{}, in, ErrNoOffset
	}
	return parseTimezone(in)
}

// =========================
// Public API
// =========================

// ParseTime parses "hh:mm[:ss][.fff][tz]" or its basic form "hhmm[ss][.fff][tz]".
// Fractions are truncated to milliseconds. An absent offset is UTC. Hour 24
// is only accepted as the end-of-day midnight 24:00:00.000.
func ParseTime(s string) (Time, error) {
	t, _, err := ParseTimePrefix([]byte(s))
	return t, err
}

// ParseTimePrefix parses a time at the start of b and returns the unconsumed
// remainder.
func ParseTimePrefix(b []byte) (Time, []byte, error) {
	t, rest, err := parseTime(completeInput(b))
	if err != nil {
		return Time{}, b, parseErr("time", b, err)
	}
	return t, rest.buf, nil
}

// ParseTimezone parses "Z", "+hh", "+hhmm" or "+hh:mm" (or '-').
func ParseTimezone(s string) (Timezone, error) {
	tz, _, err := ParseTimezonePrefix([]byte(s))
	return tz, err
}

// ParseTimezonePrefix parses an offset at the start of b and returns the
// unconsumed remainder.
func ParseTimezonePrefix(b []byte) (Timezone, []byte, error) {
	tz, rest, err := timezone(completeInput(b))
	if err != nil {
		return Timezone{}, b, parseErr("timezone", b, err)
	}
	return tz, rest.buf, nil
}
