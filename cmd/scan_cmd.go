package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dzjyyds666/iso8601/internal/output"
	"github.com/dzjyyds666/iso8601/parse/iso8601"
	"github.com/dzjyyds666/iso8601/pkg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ScanParams struct {
	Kind   string `json:"kind"`   // 要解析的值类型
	Input  string `json:"input"`  // 输入文件路径，空或 "-" 表示标准输入
	Output string `json:"output"` // 输出文件地址，空表示标准输出
}

var scanParams *ScanParams

const scanChunk = 4 << 10

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Parse whitespace separated values from a file or stdin",
	Long: "scan reads its input in chunks and parses every whitespace separated token as a value " +
		"of the selected kind. Values may span chunk boundaries.",
	Example: "  echo '2015-06-26 2015-W26-5' | iso8601 scan -k date -F json",
	Args:    cobra.NoArgs,
	RunE:    scanRun,
}

func init() {
	scanParams = &ScanParams{}
	scanCmd.Flags().StringVarP(&scanParams.Kind, "kind", "k", "datetime", "value kind: "+strings.Join(kindNames(), ", "))
	scanCmd.Flags().StringVarP(&scanParams.Input, "input", "i", "", "input file path")
	scanCmd.Flags().StringVarP(&scanParams.Output, "output", "o", "", "output path")
}

type scanStats struct {
	parsed int
	failed int
}

func scanRun(cmd *cobra.Command, args []string) error {
	k, ok := kindByName(scanParams.Kind)
	if !ok {
		return fmt.Errorf("unknown kind %q, want one of %s", scanParams.Kind, strings.Join(kindNames(), ", "))
	}
	if scanParams.Input != "" && scanParams.Input != "-" {
		exist, err := pkg.CheckFileExist(scanParams.Input)
		if err != nil {
			return fmt.Errorf("check input file: %w", err)
		}
		if !exist {
			return fmt.Errorf("input file %s does not exist", scanParams.Input)
		}
	}

	r, err := pkg.OpenInput(scanParams.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := pkg.OpenOutput(scanParams.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer w.Close()

	enc, err := output.NewEncoder(w, format)
	if err != nil {
		return err
	}
	stats, err := scan(r, k, enc, cfg.Strict)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"kind": k.Name, "parsed": stats.parsed, "failed": stats.failed}).Debug("scan finished")
	if stats.failed > 0 {
		return fmt.Errorf("%d of %d %s values could not be parsed", stats.failed, stats.parsed+stats.failed, k.Name)
	}
	return nil
}

// scan 按块读取 r，只在整个 token 已缓冲时才解析，保证值可以跨块
func scan(r io.Reader, k kind, enc output.Encoder, strict bool) (scanStats, error) {
	var stats scanStats
	s := iso8601.NewStream()
	buf := make([]byte, scanChunk)
	for !s.Closed() {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = s.Write(buf[:n])
		}
		switch {
		case errors.Is(err, io.EOF):
			s.CloseWrite()
		case err != nil:
			return stats, err
		}

		for {
			s.SkipSpace()
			tok, ok := s.Token()
			if !ok || len(tok) == 0 {
				break
			}
			token := string(tok)
			entry := log.WithFields(logrus.Fields{"kind": k.Name, "input": token})

			rec, err := k.next(s)
			if err == nil {
				rest, _ := s.Token()
				rec.Input, rec.Rest = token, string(rest)
				if strict && len(rest) > 0 {
					err = fmt.Errorf("%w %q", ErrTrailingInput, rest)
				}
			}
			s.SkipToken()
			if err != nil {
				entry.WithError(err).Warn("cannot parse value")
				stats.failed++
				continue
			}
			entry.WithField("rest", rec.Rest).Debug("parsed")
			if err := enc.Encode(rec); err != nil {
				return stats, err
			}
			stats.parsed++
		}
	}
	return stats, nil
}
