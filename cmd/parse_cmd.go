package cmd

import (
	"errors"
	"fmt"

	"github.com/dzjyyds666/iso8601/internal/output"
	"github.com/dzjyyds666/iso8601/parse/iso8601"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ErrTrailingInput = errors.New("trailing input")

// kind 描述一种可解析的值：命令名、整段解析函数和流式解析函数
type kind struct {
	Name    string
	Short   string
	Example string

	parse func(b []byte) (output.Record, []byte, error)
	next  func(s *iso8601.Stream) (output.Record, error)
}

func newKind[T fmt.Stringer](name, short, example string,
	parse func([]byte) (T, []byte, error),
	next func(*iso8601.Stream) (T, error),
	form func(T) string,
) kind {
	record := func(v T) output.Record {
		rec := output.Record{Kind: name, Value: v}
		if form != nil {
			rec.Form = form(v)
		}
		return rec
	}
	return kind{
		Name:    name,
		Short:   short,
		Example: example,
		parse: func(b []byte) (output.Record, []byte, error) {
			v, rest, err := parse(b)
			if err != nil {
				return output.Record{}, b, err
			}
			rec := record(v)
			rec.Input = string(b)
			rec.Rest = string(rest)
			return rec, rest, nil
		},
		next: func(s *iso8601.Stream) (output.Record, error) {
			v, err := next(s)
			if err != nil {
				return output.Record{}, err
			}
			return record(v), nil
		},
	}
}

var kinds = []kind{
	newKind("date", "Parse calendar, week or ordinal dates", "-- 2015-06-26 2015-W26-5 -0333-07-11",
		iso8601.ParseDatePrefix, (*iso8601.Stream).NextDate,
		func(d iso8601.Date) string { return d.Kind.String() }),
	newKind("time", "Parse times of day", "16:43:16.123+02:00 1643Z",
		iso8601.ParseTimePrefix, (*iso8601.Stream).NextTime, nil),
	newKind("datetime", "Parse dates and times joined by 'T'", "2015-06-26T16:43:16Z",
		iso8601.ParseDateTimePrefix, (*iso8601.Stream).NextDateTime,
		func(dt iso8601.DateTime) string { return dt.Date.Kind.String() }),
	newKind("duration", "Parse durations", "P1Y2M3DT4H5M6S P3W P0003-02-01T00:00",
		iso8601.ParseDurationPrefix, (*iso8601.Stream).NextDuration,
		func(d iso8601.Duration) string { return d.Kind.String() }),
	newKind("timezone", "Parse UTC offsets", "-- Z +05:30 -0800",
		iso8601.ParseTimezonePrefix, (*iso8601.Stream).NextTimezone, nil),
}

func kindByName(name string) (kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return kind{}, false
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Name)
	}
	return names
}

func newParseCmd(k kind) *cobra.Command {
	return &cobra.Command{
		Use:     k.Name + " [--] <value>...",
		Short:   k.Short,
		Long:    k.Short + ". Put values that start with '-' (negative years, western offsets) after '--'.",
		Example: "  iso8601 " + k.Name + " " + k.Example,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return parseRun(cmd, k, args)
		},
	}
}

// parseRun 逐个解析命令行参数，失败的参数只记日志，最后统一返回错误
func parseRun(cmd *cobra.Command, k kind, args []string) error {
	enc, err := output.NewEncoder(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	failed := 0
	for _, arg := range args {
		entry := log.WithFields(logrus.Fields{"kind": k.Name, "input": arg})
		rec, rest, err := k.parse([]byte(arg))
		if err == nil && cfg.Strict && len(rest) > 0 {
			err = fmt.Errorf("%w %q", ErrTrailingInput, rest)
		}
		if err != nil {
			entry.WithError(err).Warn("cannot parse value")
			failed++
			continue
		}
		entry.WithField("rest", string(rest)).Debug("parsed")
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d %s values could not be parsed", failed, len(args), k.Name)
	}
	return nil
}
