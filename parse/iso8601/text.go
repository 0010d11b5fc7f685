package iso8601

// Text (un)marshaling lets the values sit in string fields of JSON, YAML or
// TOML documents.

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(b []byte) error {
	v, _, err := ParseDatePrefix(b)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Time) UnmarshalText(b []byte) error {
	v, _, err := ParseTimePrefix(b)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (dt DateTime) MarshalText() ([]byte, error) { return []byte(dt.String()), nil }

func (dt *DateTime) UnmarshalText(b []byte) error {
	v, _, err := ParseDateTimePrefix(b)
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Duration) UnmarshalText(b []byte) error {
	v, _, err := ParseDurationPrefix(b)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (tz Timezone) MarshalText() ([]byte, error) { return []byte(tz.String()), nil }

func (tz *Timezone) UnmarshalText(b []byte) error {
	v, _, err := ParseTimezonePrefix(b)
	if err != nil {
		return err
	}
	*tz = v
	return nil
}
