package iso8601

import (
	"strconv"
	"strings"
)

// =========================
// Renderer
// =========================

// Value is the set of types this package parses and renders.
type Value interface {
	Date | Time | DateTime | Duration | Timezone
	String() string
}

// Render returns the canonical text of v. Parsing the result yields v again.
func Render[T Value](v T) string { return v.String() }

func appendPadded(b []byte, v uint64, width int) []byte {
	s := strconv.FormatUint(v, 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

func appendYear(b []byte, year int32) []byte {
	y := int64(year)
	if y < 0 {
		b = append(b, '-')
		y = -y
	}
	return appendPadded(b, uint64(y), 4)
}

// String renders YYYY-MM-DD, YYYY-Www-D or YYYY-DDD.
func (d Date) String() string {
	b := make([]byte, 0, 12)
	b = appendYear(b, d.Year)
	b = append(b, '-')
	switch d.Kind {
	case DateWeek:
		b = append(b, 'W')
		b = appendPadded(b, uint64(d.Week), 2)
		b = append(b, '-')
		b = appendPadded(b, uint64(d.Weekday), 1)
	case DateOrdinal:
		b = appendPadded(b, uint64(d.YearDay), 3)
	default:
		b = appendPadded(b, uint64(d.Month), 2)
		b = append(b, '-')
		b = appendPadded(b, uint64(d.Day), 2)
	}
	return string(b)
}

func abs32(v int32) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}

func (tz Timezone) append(b []byte) []byte {
	if tz.OffsetHours < 0 || tz.OffsetMinutes < 0 {
		b = append(b, '-')
	} else {
		b = append(b, '+')
	}
	b = appendPadded(b, abs32(tz.OffsetHours), 2)
	b = append(b, ':')
	return appendPadded(b, abs32(tz.OffsetMinutes), 2)
}

// String renders ±hh:mm; UTC is "+00:00".
func (tz Timezone) String() string {
	return string(tz.append(make([]byte, 0, 6)))
}

func (t Time) append(b []byte) []byte {
	b = appendPadded(b, uint64(t.Hour), 2)
	b = append(b, ':')
	b = appendPadded(b, uint64(t.Minute), 2)
	b = append(b, ':')
	b = appendPadded(b, uint64(t.Second), 2)
	b = append(b, '.')
	b = appendPadded(b, uint64(t.Millisecond), 3)
	return t.Timezone.append(b)
}

// String renders hh:mm:ss.fff±hh:mm. Milliseconds and the offset are always
// present.
func (t Time) String() string {
	return string(t.append(make([]byte, 0, 18)))
}

// String renders <date>T<time>.
func (dt DateTime) String() string {
	b := make([]byte, 0, 32)
	b = append(b, dt.Date.String()...)
	b = append(b, 'T')
	return string(dt.Time.append(b))
}

// String renders PnW for week durations. YMDHMS durations list each non-zero
// unit in Y, M, D, T, H, M, S order; a zero duration is "P0D".
func (d Duration) String() string {
	if d.Kind == DurationWeeks {
		return "P" + strconv.FormatUint(uint64(d.Weeks), 10) + "W"
	}
	if d.IsZero() {
		return "P0D"
	}
	var sb strings.Builder
	sb.WriteByte('P')
	unit := func(v uint32, c byte) {
		if v > 0 {
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
			sb.WriteByte(c)
		}
	}
	unit(d.Year, 'Y')
	unit(d.Month, 'M')
	unit(d.Day, 'D')
	if d.Hour == 0 && d.Minute == 0 && d.Second == 0 && d.Millisecond == 0 {
		return sb.String()
	}
	sb.WriteByte('T')
	unit(d.Hour, 'H')
	unit(d.Minute, 'M')
	switch {
	case d.Millisecond > 0:
		sb.WriteString(strconv.FormatUint(uint64(d.Second), 10))
		sb.WriteByte('.')
		sb.Write(appendPadded(nil, uint64(d.Millisecond), 3))
		sb.WriteByte('S')
	case d.Second > 0:
		unit(d.Second, 'S')
	}
	return sb.String()
}
