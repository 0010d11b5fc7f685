package iso8601

import (
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestParseDuration(t *testing.T) {
	convey.Convey("designator durations", t, func() {
		cases := map[string]Duration{
			"P1Y2M3DT4H5M6S":           {Year: 1, Month: 2, Day: 3, Hour: 4, Minute: 5, Second: 6},
			"P1Y":                      {Year: 1},
			"P1M":                      {Month: 1},
			"P1D":                      {Day: 1},
			"PT1H":                     {Hour: 1},
			"PT1M":                     {Minute: 1},
			"PT1S":                     {Second: 1},
			"PT1.5S":                   {Second: 1, Millisecond: 500},
			"PT0,25S":                  {Millisecond: 250},
			"P2Y30M14DT5H20M30.5S":     {Year: 2, Month: 30, Day: 14, Hour: 5, Minute: 20, Second: 30, Millisecond: 500},
			"P12Y34M56DT78H90M12.345S": {Year: 12, Month: 34, Day: 56, Hour: 78, Minute: 90, Second: 12, Millisecond: 345},
			"P36500D":                  {Day: 36500},
			"P0D":                      {},
			"PT0S":                     {},
		}
		for src, want := range cases {
			got, err := ParseDuration(src)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, want)
			convey.So(got.Kind, convey.ShouldEqual, DurationYMDHMS)
		}
	})

	convey.Convey("week durations", t, func() {
		for src, want := range map[string]uint32{"P1W": 1, "P0W": 0, "P52W": 52, "P1000W": 1000} {
			got, err := ParseDuration(src)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, Weeks(want))
		}
	})

	convey.Convey("datetime form durations", t, func() {
		got, err := ParseDuration("P2015-11-03T21:56")
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, Duration{Year: 2015, Month: 11, Day: 3, Hour: 21, Minute: 56})

		got, err = ParseDuration("P00000102T030405.6")
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, Duration{Month: 1, Day: 2, Hour: 3, Minute: 4, Second: 5, Millisecond: 600})

		_, err = ParseDuration("P2015-13-03T21:56")
		convey.So(errors.Is(err, ErrOutOfRange), convey.ShouldBeTrue)
	})

	convey.Convey("the offset of a datetime form duration is dropped", t, func() {
		got, rest, err := ParseDurationPrefix([]byte("P2015-11-03T21:56+02:00"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, Duration{Year: 2015, Month: 11, Day: 3, Hour: 21, Minute: 56})
		convey.So(string(rest), convey.ShouldEqual, "")

		for _, src := range []string{"P2015-11-03T21:56+25:00", "P2015-11-03T21:56:00-05:61"} {
			_, err = ParseDuration(src)
			convey.So(errors.Is(err, ErrOutOfRange), convey.ShouldBeTrue)
		}
	})

	convey.Convey("empty durations are rejected", t, func() {
		for _, src := range []string{"P", "PT"} {
			_, err := ParseDuration(src)
			convey.So(errors.Is(err, ErrEmptyDuration), convey.ShouldBeTrue)

			var perr *ParseError
			convey.So(errors.As(err, &perr), convey.ShouldBeTrue)
			convey.So(perr.Kind, convey.ShouldEqual, "duration")
		}
	})

	convey.Convey("a dangling T is left over", t, func() {
		got, rest, err := ParseDurationPrefix([]byte("P1DT"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, Duration{Day: 1})
		convey.So(string(rest), convey.ShouldEqual, "T")
	})

	convey.Convey("rejected durations", t, func() {
		for _, src := range []string{
			"", "1D", "p1d", "PW", "P-1D", "P-0001-01-01T00:00", "P+2015-11-03T21:56", "PT.5S", "P1.5D",
		} {
			_, err := ParseDuration(src)
			convey.So(err, convey.ShouldNotBeNil)
		}
	})

	convey.Convey("values beyond uint32 are out of range", t, func() {
		for _, src := range []string{"P4294967296D", "P4294967296W", "PT99999999999S"} {
			_, err := ParseDuration(src)
			convey.So(errors.Is(err, ErrOutOfRange), convey.ShouldBeTrue)
		}
		got, err := ParseDuration("P4294967295D")
		convey.So(err, convey.ShouldBeNil)
		convey.So(got.Day, convey.ShouldEqual, uint32(4294967295))
	})
}

func TestDurationHelpers(t *testing.T) {
	convey.Convey("IsZero covers both forms", t, func() {
		convey.So(Duration{}.IsZero(), convey.ShouldBeTrue)
		convey.So(Weeks(0).IsZero(), convey.ShouldBeTrue)
		convey.So(Weeks(1).IsZero(), convey.ShouldBeFalse)
		convey.So(Duration{Millisecond: 1}.IsZero(), convey.ShouldBeFalse)
	})

	convey.Convey("Std uses fixed length years and months", t, func() {
		convey.So(Duration{Day: 1, Hour: 2}.Std(), convey.ShouldEqual, 26*time.Hour)
		convey.So(Weeks(2).Std(), convey.ShouldEqual, 14*24*time.Hour)
		convey.So(Duration{Year: 1}.Std(), convey.ShouldEqual, 365*24*time.Hour)
		convey.So(Duration{Month: 1}.Std(), convey.ShouldEqual, 30*24*time.Hour)
		convey.So(Duration{Second: 1, Millisecond: 500}.Std(), convey.ShouldEqual, 1500*time.Millisecond)
	})

	convey.Convey("Std saturates", t, func() {
		convey.So(Duration{Year: 4294967295}.Std(), convey.ShouldEqual, maxDuration)
		convey.So(Weeks(4294967295).Std(), convey.ShouldEqual, maxDuration)
	})
}
