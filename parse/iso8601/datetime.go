package iso8601

//	datetime = date "T" time

func parseDateTime(in input) (DateTime, input, error) {
	d, rest, err := parseDate(in)
	if err != nil {
		return DateTime{}, in, err
	}
	if _, rest, err = tag('T')(rest); err != nil {
		return DateTime{}, in, err
	}
	t, rest, err := parseTime(rest)
	if err != nil {
		return DateTime{}, in, err
	}
	return DateTime{Date: d, Time: t}, rest, nil
}

// ParseDateTime parses a date and a time separated by a literal 'T', for
// example "2015-06-26T16:43:16Z" or "20150626T164316+0200".
func ParseDateTime(s string) (DateTime, error) {
	dt, _, err := ParseDateTimePrefix([]byte(s))
	return dt, err
}

// ParseDateTimePrefix parses a datetime at the start of b and returns the
// unconsumed remainder.
func ParseDateTimePrefix(b []byte) (DateTime, []byte, error) {
	dt, rest, err := parseDateTime(completeInput(b))
	if err != nil {
		return DateTime{}, b, parseErr("datetime", b, err)
	}
	return dt, rest.buf, nil
}
