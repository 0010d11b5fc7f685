package iso8601

import "time"

// =========================
// Value Definitions
// =========================

// DateKind tags the three mutually exclusive date forms.
type DateKind uint8

const (
	// DateYMD is a calendar date: year, month, day of month.
	DateYMD DateKind = iota
	// DateWeek is a week date: week-numbering year, week, day of week.
	DateWeek
	// DateOrdinal is an ordinal date: year and day of year.
	DateOrdinal
)

func (k DateKind) String() string {
	switch k {
	case DateYMD:
		return "ymd"
	case DateWeek:
		return "week"
	case DateOrdinal:
		return "ordinal"
	default:
		return "unknown"
	}
}

// Date holds one of the three date forms selected by Kind. Only the fields
// belonging to Kind are meaningful; the others stay zero.
//
// Fields are range checked when parsed, but calendar validity is not:
// February 30th and day 366 of a common year are both accepted.
type Date struct {
	Kind DateKind
	Year int32

	Month uint32 // 1..12, DateYMD
	Day   uint32 // 1..31, DateYMD

	Week    uint32 // 1..52, DateWeek
	Weekday uint32 // 1..7, DateWeek

	YearDay uint32 // 1..366, DateOrdinal
}

// YMD returns a calendar date.
func YMD(year int32, month, day uint32) Date {
	return Date{Kind: DateYMD, Year: year, Month: month, Day: day}
}

// WeekDate returns an ISO week date.
func WeekDate(year int32, week, weekday uint32) Date {
	return Date{Kind: DateWeek, Year: year, Week: week, Weekday: weekday}
}

// OrdinalDate returns an ordinal date.
func OrdinalDate(year int32, yearDay uint32) Date {
	return Date{Kind: DateOrdinal, Year: year, YearDay: yearDay}
}

// Timezone is a UTC offset. Both fields carry the sign of the offset, so
// -05:30 is {-5, -30}. The zero value is UTC.
type Timezone struct {
	OffsetHours   int32
	OffsetMinutes int32
}

// UTC is the zero offset.
var UTC = Timezone{}

// Seconds returns the offset east of UTC in seconds.
func (tz Timezone) Seconds() int {
	return int(tz.OffsetHours)*3600 + int(tz.OffsetMinutes)*60
}

// Time is a time of day with millisecond precision and a UTC offset.
type Time struct {
	Hour        uint32 // 0..24, 24 only as 24:00:00.000
	Minute      uint32 // 0..59
	Second      uint32 // 0..60, 60 is a leap second
	Millisecond uint32 // 0..999
	Timezone    Timezone
}

// WithTimezone returns a copy of t with its offset replaced by tz.
func (t Time) WithTimezone(tz Timezone) Time {
	t.Timezone = tz
	return t
}

// DateTime is a date and a time joined by 'T'.
type DateTime struct {
	Date Date
	Time Time
}

// DurationKind tags the two duration forms.
type DurationKind uint8

const (
	// DurationYMDHMS is a duration made of calendar and clock units.
	DurationYMDHMS DurationKind = iota
	// DurationWeeks is a duration counted in weeks.
	DurationWeeks
)

func (k DurationKind) String() string {
	switch k {
	case DurationYMDHMS:
		return "ymdhms"
	case DurationWeeks:
		return "weeks"
	default:
		return "unknown"
	}
}

// Duration holds either unit components (DurationYMDHMS) or a week count
// (DurationWeeks). The zero value is the zero YMDHMS duration.
type Duration struct {
	Kind DurationKind

	Year        uint32
	Month       uint32
	Day         uint32
	Hour        uint32
	Minute      uint32
	Second      uint32
	Millisecond uint32

	Weeks uint32
}

// Weeks returns a week-form duration.
func Weeks(n uint32) Duration {
	return Duration{Kind: DurationWeeks, Weeks: n}
}

// IsZero reports whether d spans no time at all, in either form.
func (d Duration) IsZero() bool {
	if d.Kind == DurationWeeks {
		return d.Weeks == 0
	}
	return d.Year == 0 && d.Month == 0 && d.Day == 0 &&
		d.Hour == 0 && d.Minute == 0 && d.Second == 0 && d.Millisecond == 0
}

const day = 24 * time.Hour

// Std approximates d as a time.Duration, counting a year as 365 days and a
// month as 30 days. Results beyond the range of time.Duration saturate.
func (d Duration) Std() time.Duration {
	if d.Kind == DurationWeeks {
		return saturate(uint64(d.Weeks), 7*day)
	}
	total := time.Duration(0)
	for _, part := range []struct {
		n    uint32
		unit time.Duration
	}{
		{d.Year, 365 * day},
		{d.Month, 30 * day},
		{d.Day, day},
		{d.Hour, time.Hour},
		{d.Minute, time.Minute},
		{d.Second, time.Second},
		{d.Millisecond, time.Millisecond},
	} {
		v := saturate(uint64(part.n), part.unit)
		if total > maxDuration-v {
			return maxDuration
		}
		total += v
	}
	return total
}

const maxDuration = time.Duration(1<<63 - 1)

func saturate(n uint64, unit time.Duration) time.Duration {
	if n != 0 && n > uint64(maxDuration/unit) {
		return maxDuration
	}
	return time.Duration(n) * unit
}
