package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dzjyyds666/iso8601/internal/output"
	"github.com/dzjyyds666/iso8601/pkg"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config controls how the iso8601 command prints what it parses. Every field
// can be set from a config file (.yaml, .json, .toml or .env) and from the
// environment; environment variables win over the file.
type Config struct {
	// Format is the output format: "text" (canonical values), "json" or "yaml".
	Format string `yaml:"format" json:"format" toml:"format" env:"ISO8601_FORMAT" env-default:"text" env-description:"output format: text, json or yaml"`

	// Verbose enables debug logging of every parsed token.
	Verbose bool `yaml:"verbose" json:"verbose" toml:"verbose" env:"ISO8601_VERBOSE" env-description:"log every parsed token"`

	// Strict rejects values followed by unparsed input.
	Strict bool `yaml:"strict" json:"strict" toml:"strict" env:"ISO8601_STRICT" env-description:"reject trailing input after a value"`
}

var ErrConfigNotFound = errors.New("config file not found")

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{Format: string(output.FormatText)}
}

// Normalize trims and lower-cases string fields and fills in defaults.
func (c *Config) Normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = string(output.FormatText)
	}
}

// OutputFormat validates Format.
func (c *Config) OutputFormat() (output.Format, error) {
	return output.ParseFormat(c.Format)
}

// Load reads the environment, and the config file at path when path is not
// empty, on top of DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	} else {
		exist, err := pkg.CheckFileExist(path)
		if err != nil {
			return nil, fmt.Errorf("check config file: %w", err)
		}
		if !exist {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg.Normalize()
	if _, err := cfg.OutputFormat(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage describes the environment variables understood by Load.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
