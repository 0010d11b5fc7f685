package iso8601

import "fmt"

// =========================
// Duration Parser
// =========================
//
//	duration = "P" 1*(n "Y" / n "M" / n "D") ["T" 1*(n "H" / n "M" / n ["."/"," frac] "S")]
//	         / "P" n "W"
//	         / "P" !sign date "T" time
//
// Designator and week values are unbounded unsigned magnitudes (up to the
// uint32 limit). The datetime form reuses the calendar bounds of the date and
// time grammars.

var (
	durYear   = opt(designated("years", 'Y'))
	durMonth  = opt(designated("months", 'M'))
	durDay    = opt(designated("days", 'D'))
	durHour   = opt(designated("hours", 'H'))
	durMinute = opt(designated("minutes", 'M'))
	durSecond = opt(durationSeconds)
	durTime   = opt(preceded(tag('T'), durationTime))

	parseDuration = alt("duration", durationDesignators, durationWeeks, durationDateTime)
)

// designated reads digits followed by the unit designator c.
func designated(name string, c byte) parser[uint32] {
	return terminated(number(name), tag(c))
}

type secondsPart struct {
	second      uint32
	millisecond uint32
}

// durationSeconds reads n["."/"," frac]"S".
func durationSeconds(in input) (secondsPart, input, error) {
	s, rest, err := number("seconds")(in)
	if err != nil {
		return secondsPart{}, in, err
	}
	ms, rest, err := opt(preceded(oneOf(".,"), fraction))(rest)
	if err != nil {
		return secondsPart{}, in, err
	}
	if _, rest, err = tag('S')(rest); err != nil {
		return secondsPart{}, in, err
	}
	return secondsPart{second: s, millisecond: ms.or(0)}, rest, nil
}

type clockPart struct {
	hour, minute uint32
	seconds      secondsPart
}

// durationTime reads the designators after 'T'; at least one is required.
func durationTime(in input) (clockPart, input, error) {
	h, rest, err := durHour(in)
	if err != nil {
		return clockPart{}, in, err
	}
	m, rest, err := durMinute(rest)
	if err != nil {
		return clockPart{}, in, err
	}
	s, rest, err := durSecond(rest)
	if err != nil {
		return clockPart{}, in, err
	}
	if !h.Ok && !m.Ok && !s.Ok {
		return clockPart{}, in, fmt.Errorf("%w: no time designator after 'T'", ErrEmptyDuration)
	}
	return clockPart{hour: h.or(0), minute: m.or(0), seconds: s.or(secondsPart{})}, rest, nil
}

func durationDesignators(in input) (Duration, input, error) {
	_, rest, err := tag('P')(in)
	if err != nil {
		return Duration{}, in, err
	}
	y, rest, err := durYear(rest)
	if err != nil {
		return Duration{}, in, err
	}
	mo, rest, err := durMonth(rest)
	if err != nil {
		return Duration{}, in, err
	}
	d, rest, err := durDay(rest)
	if err != nil {
		return Duration{}, in, err
	}
	clock, rest, err := durTime(rest)
	if err != nil {
		return Duration{}, in, err
	}
	if !y.Ok && !mo.Ok && !d.Ok && !clock.Ok {
		return Duration{}, in, fmt.Errorf("%w: no designator after 'P'", ErrEmptyDuration)
	}
	c := clock.Value
	return Duration{
		Kind:        DurationYMDHMS,
		Year:        y.or(0),
		Month:       mo.or(0),
		Day:         d.or(0),
		Hour:        c.hour,
		Minute:      c.minute,
		Second:      c.seconds.second,
		Millisecond: c.seconds.millisecond,
	}, rest, nil
}

func durationWeeks(in input) (Duration, input, error) {
	w, rest, err := preceded(tag('P'), designated("weeks", 'W'))(in)
	if err != nil {
		return Duration{}, in, err
	}
	return Weeks(w), rest, nil
}

// durationDateTime reads "P" followed by an unsigned YYYY[-]MM[-]DD date, 'T'
// and a time. The offset of the time, if any, is dropped.
func durationDateTime(in input) (Duration, input, error) {
	_, rest, err := tag('P')(in)
	if err != nil {
		return Duration{}, in, err
	}
	if _, rest, err = not(sign)(rest); err != nil {
		return Duration{}, in, err
	}
	y, rest, err := digits("year", 4)(rest)
	if err != nil {
		return Duration{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Duration{}, in, err
	}
	mo, rest, err := dateMonth(rest)
	if err != nil {
		return Duration{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Duration{}, in, err
	}
	d, rest, err := dateDay(rest)
	if err != nil {
		return Duration{}, in, err
	}
	if _, rest, err = tag('T')(rest); err != nil {
		return Duration{}, in, err
	}
	t, rest, err := parseTime(rest)
	if err != nil {
		return Duration{}, in, err
	}
	return Duration{
		Kind:        DurationYMDHMS,
		Year:        y,
		Month:       mo,
		Day:         d,
		Hour:        t.Hour,
		Minute:      t.Minute,
		Second:      t.Second,
		Millisecond: t.Millisecond,
	}, rest, nil
}

// =========================
// Public API
// =========================

// ParseDuration parses "PnYnMnDTnHnMnS" (any non-empty subset of the
// designators, seconds may carry a fraction), "PnW", or
// "PYYYY-MM-DDThh:mm:ss". A bare "P" or "PT" is rejected; write a zero
// duration as "P0D".
func ParseDuration(s string) (Duration, error) {
	d, _, err := ParseDurationPrefix([]byte(s))
	return d, err
}

// ParseDurationPrefix parses a duration at the start of b and returns the
// unconsumed remainder.
func ParseDurationPrefix(b []byte) (Duration, []byte, error) {
	d, rest, err := parseDuration(completeInput(b))
	if err != nil {
		return Duration{}, b, parseErr("duration", b, err)
	}
	return d, rest.buf, nil
}
