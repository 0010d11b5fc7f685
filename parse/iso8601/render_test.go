package iso8601

import (
	"encoding/json"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func TestRender(t *testing.T) {
	convey.Convey("dates", t, func() {
		convey.So(Render(YMD(2015, 6, 26)), convey.ShouldEqual, "2015-06-26")
		convey.So(Render(YMD(-333, 7, 11)), convey.ShouldEqual, "-0333-07-11")
		convey.So(Render(YMD(0, 1, 1)), convey.ShouldEqual, "0000-01-01")
		convey.So(Render(WeekDate(2015, 5, 6)), convey.ShouldEqual, "2015-W05-6")
		convey.So(Render(OrdinalDate(2015, 7)), convey.ShouldEqual, "2015-007")
	})

	convey.Convey("times and offsets", t, func() {
		convey.So(Render(Time{Hour: 16, Minute: 43, Second: 16}), convey.ShouldEqual, "16:43:16.000+00:00")
		convey.So(Render(Time{Hour: 4, Minute: 5, Second: 6, Millisecond: 7}), convey.ShouldEqual, "04:05:06.007+00:00")
		convey.So(Render(Timezone{OffsetHours: 5, OffsetMinutes: 30}), convey.ShouldEqual, "+05:30")
		convey.So(Render(Timezone{OffsetHours: -5, OffsetMinutes: -30}), convey.ShouldEqual, "-05:30")
		convey.So(Render(Timezone{OffsetMinutes: -30}), convey.ShouldEqual, "-00:30")
		convey.So(Render(UTC), convey.ShouldEqual, "+00:00")
	})

	convey.Convey("datetimes", t, func() {
		dt := DateTime{Date: YMD(2015, 6, 26), Time: Time{Hour: 16, Minute: 43, Timezone: Timezone{OffsetHours: 2}}}
		convey.So(Render(dt), convey.ShouldEqual, "2015-06-26T16:43:00.000+02:00")
	})

	convey.Convey("durations", t, func() {
		cases := map[string]Duration{
			"P0D":                  {},
			"P3W":                  Weeks(3),
			"P0W":                  Weeks(0),
			"P1Y2M3DT4H5M6S":       {Year: 1, Month: 2, Day: 3, Hour: 4, Minute: 5, Second: 6},
			"P1D":                  {Day: 1},
			"PT1H":                 {Hour: 1},
			"PT0.500S":             {Millisecond: 500},
			"PT1.050S":             {Second: 1, Millisecond: 50},
			"P2015Y11M3DT21H56M":   {Year: 2015, Month: 11, Day: 3, Hour: 21, Minute: 56},
			"P4294967295Y":         {Year: 4294967295},
			"PT4294967295H":        {Hour: 4294967295},
			"P1YT2.003S":           {Year: 1, Second: 2, Millisecond: 3},
			"PT12M":                {Minute: 12},
			"P7DT5M":               {Day: 7, Minute: 5},
			"P1Y1M1DT1H1M1.001S":   {Year: 1, Month: 1, Day: 1, Hour: 1, Minute: 1, Second: 1, Millisecond: 1},
			"PT59M59.999S":         {Minute: 59, Second: 59, Millisecond: 999},
			"PT36H":                {Hour: 36},
			"P1M":                  {Month: 1},
			"PT1M":                 {Minute: 1},
			"P12Y34M56DT78H90M12S": {Year: 12, Month: 34, Day: 56, Hour: 78, Minute: 90, Second: 12},
			"P52W":                 Weeks(52),
			"PT0.001S":             {Millisecond: 1},
			"PT8H30M":              {Hour: 8, Minute: 30},
		}
		for want, d := range cases {
			convey.So(Render(d), convey.ShouldEqual, want)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	convey.Convey("parsing rendered dates gives the same value", t, func() {
		for _, src := range []string{"2015-06-26", "-0333-07-11", "2015W065", "2015306", "+2015-01-01"} {
			d, err := ParseDate(src)
			convey.So(err, convey.ShouldBeNil)
			again, err := ParseDate(Render(d))
			convey.So(err, convey.ShouldBeNil)
			convey.So(again, convey.ShouldResemble, d)
		}
	})

	convey.Convey("parsing rendered times gives the same value", t, func() {
		for _, src := range []string{"16:43", "24:00", "23:59:60,5", "1648-0530", "04:05:06.12345Z", "00:00-00:30"} {
			tm, err := ParseTime(src)
			convey.So(err, convey.ShouldBeNil)
			again, err := ParseTime(Render(tm))
			convey.So(err, convey.ShouldBeNil)
			convey.So(again, convey.ShouldResemble, tm)
		}
	})

	convey.Convey("parsing rendered datetimes gives the same value", t, func() {
		for _, src := range []string{"2015-06-26T16:43:16Z", "2001-W05-6T04:05:06.123+01", "2015-177T12:00-03:30"} {
			dt, err := ParseDateTime(src)
			convey.So(err, convey.ShouldBeNil)
			again, err := ParseDateTime(Render(dt))
			convey.So(err, convey.ShouldBeNil)
			convey.So(again, convey.ShouldResemble, dt)
		}
	})

	convey.Convey("parsing rendered durations gives the same value", t, func() {
		for _, src := range []string{"P0D", "P0W", "P3W", "PT0S", "P1Y2M3DT4H5M6.789S", "PT0,5S", "P2015-11-03T21:56", "PT36H"} {
			d, err := ParseDuration(src)
			convey.So(err, convey.ShouldBeNil)
			again, err := ParseDuration(Render(d))
			convey.So(err, convey.ShouldBeNil)
			convey.So(again, convey.ShouldResemble, d)
		}
	})

	convey.Convey("parsing rendered offsets gives the same value", t, func() {
		for _, src := range []string{"Z", "+05", "-0530", "-00:30", "+24:00"} {
			tz, err := ParseTimezone(src)
			convey.So(err, convey.ShouldBeNil)
			again, err := ParseTimezone(Render(tz))
			convey.So(err, convey.ShouldBeNil)
			convey.So(again, convey.ShouldResemble, tz)
		}
	})
}

type schedule struct {
	Start    DateTime `json:"start" yaml:"start"`
	Every    Duration `json:"every" yaml:"every"`
	Zone     Timezone `json:"zone" yaml:"zone"`
	Holiday  Date     `json:"holiday" yaml:"holiday"`
	Deadline Time     `json:"deadline" yaml:"deadline"`
}

func TestTextMarshaling(t *testing.T) {
	want := schedule{
		Start:    DateTime{Date: YMD(2015, 6, 26), Time: Time{Hour: 9}},
		Every:    Weeks(2),
		Zone:     Timezone{OffsetHours: -3, OffsetMinutes: -30},
		Holiday:  OrdinalDate(2015, 359),
		Deadline: Time{Hour: 17, Minute: 30, Timezone: Timezone{OffsetHours: 1}},
	}

	convey.Convey("values are strings in JSON documents", t, func() {
		raw, err := json.Marshal(want)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(raw), convey.ShouldContainSubstring, `"every":"P2W"`)
		convey.So(string(raw), convey.ShouldContainSubstring, `"zone":"-03:30"`)

		var got schedule
		convey.So(json.Unmarshal(raw, &got), convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, want)
	})

	convey.Convey("values are strings in YAML documents", t, func() {
		raw, err := yaml.Marshal(want)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(raw), convey.ShouldContainSubstring, "2015-359")

		var got schedule
		convey.So(yaml.Unmarshal(raw, &got), convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, want)
	})

	convey.Convey("invalid text is a parse error", t, func() {
		var got schedule
		err := json.Unmarshal([]byte(`{"every":"P"}`), &got)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "cannot parse duration")
	})
}
