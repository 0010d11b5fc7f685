package iso8601

// =========================
// Date Parser
// =========================
//
//	date      = ymd / week-date / ordinal
//	ymd       = year ["-"] month ["-"] day
//	week-date = year ["-"] "W" week ["-"] weekday
//	ordinal   = year ["-"] ord-day

var (
	dateMonth   = field("month", 2, 1, 12)
	dateDay     = field("day", 2, 1, 31)
	dateWeek    = field("week", 2, 1, 52)
	dateWeekday = field("weekday", 1, 1, 7)
	dateYearDay = field("day of year", 3, 1, 366)

	parseDate = alt("date", dateYMD, dateWeekDate, dateOrdinal)
)

// dateYear reads [+/-]YYYY.
func dateYear(in input) (int32, input, error) {
	s, rest, err := optSign(in)
	if err != nil {
		return 0, in, err
	}
	y, rest, err := digits("year", 4)(rest)
	if err != nil {
		return 0, in, err
	}
	return s * int32(y), rest, nil
}

func dateYMD(in input) (Date, input, error) {
	year, rest, err := dateYear(in)
	if err != nil {
		return Date{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Date{}, in, err
	}
	month, rest, err := dateMonth(rest)
	if err != nil {
		return Date{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Date{}, in, err
	}
	d, rest, err := dateDay(rest)
	if err != nil {
		return Date{}, in, err
	}
	return YMD(year, month, d), rest, nil
}

func dateWeekDate(in input) (Date, input, error) {
	year, rest, err := dateYear(in)
	if err != nil {
		return Date{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Date{}, in, err
	}
	if _, rest, err = tag('W')(rest); err != nil {
		return Date{}, in, err
	}
	week, rest, err := dateWeek(rest)
	if err != nil {
		return Date{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Date{}, in, err
	}
	wd, rest, err := dateWeekday(rest)
	if err != nil {
		return Date{}, in, err
	}
	return WeekDate(year, week, wd), rest, nil
}

func dateOrdinal(in input) (Date, input, error) {
	year, rest, err := dateYear(in)
	if err != nil {
		return Date{}, in, err
	}
	if _, rest, err = optDash(rest); err != nil {
		return Date{}, in, err
	}
	yd, rest, err := dateYearDay(rest)
	if err != nil {
		return Date{}, in, err
	}
	return OrdinalDate(year, yd), rest, nil
}

// =========================
// Public API
// =========================

// ParseDate parses a calendar ("2015-06-26", "20150626"), week
// ("2015-W26-5", "2015W265") or ordinal ("2015-177", "2015177") date.
// Each '-' separator is independently optional. Text after the date is
// ignored.
func ParseDate(s string) (Date, error) {
	d, _, err := ParseDatePrefix([]byte(s))
	return d, err
}

// ParseDatePrefix parses a date at the start of b and returns the unconsumed
// remainder.
func ParseDatePrefix(b []byte) (Date, []byte, error) {
	d, rest, err := parseDate(completeInput(b))
	if err != nil {
		return Date{}, b, parseErr("date", b, err)
	}
	return d, rest.buf, nil
}
