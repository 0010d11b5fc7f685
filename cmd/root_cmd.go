package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/iso8601/internal/config"
	"github.com/dzjyyds666/iso8601/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type RootParams struct {
	Config  string `json:"config"`  // 配置文件路径
	Format  string `json:"format"`  // 输出格式 text / json / yaml
	Verbose bool   `json:"verbose"` // 打印每个解析结果的调试日志
	Strict  bool   `json:"strict"`  // 值后面有剩余输入时报错
}

var rootParams = &RootParams{}

var (
	cfg    = config.DefaultConfig()
	format = output.FormatText
	log    = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "iso8601",
	Short: "iso8601 parses and normalizes ISO 8601 values.",
	Long: "iso8601 parses ISO 8601 dates, times, datetimes, durations and UTC offsets given as " +
		"arguments or read from a file, and prints them in canonical form, as JSON lines or as YAML.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of iso8601",
	Long:  `All software has versions. This is iso8601's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "iso8601 v0.1 -- HEAD")
	},
}

// setup 加载配置（配置文件 < 环境变量 < 命令行参数）并初始化日志
func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	c, err := config.Load(rootParams.Config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		c.Format = rootParams.Format
	}
	if flags.Changed("verbose") {
		c.Verbose = rootParams.Verbose
	}
	if flags.Changed("strict") {
		c.Strict = rootParams.Strict
	}
	c.Normalize()
	f, err := c.OutputFormat()
	if err != nil {
		return err
	}
	cfg, format = c, f

	log.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(logrus.Fields{
		"format": cfg.Format,
		"strict": cfg.Strict,
	}).Debug("configuration loaded")
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootParams.Config, "config", "c", "", "config file (.yaml, .json, .toml or .env)")
	flags.StringVarP(&rootParams.Format, "format", "F", string(output.FormatText), "output format: text, json or yaml")
	flags.BoolVarP(&rootParams.Verbose, "verbose", "v", false, "log every parsed value")
	flags.BoolVar(&rootParams.Strict, "strict", false, "reject values followed by unparsed input")

	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + "\nEnvironment:\n" + config.Usage() + "\n")

	rootCmd.AddCommand(versionCmd)
	for _, k := range kinds {
		rootCmd.AddCommand(newParseCmd(k))
	}
	rootCmd.AddCommand(scanCmd)
}
