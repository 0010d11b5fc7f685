// Package output writes parsed values as canonical text, JSON lines or a YAML
// document stream.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts "text", "json" or "yaml" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Record is one parsed value. Value is rendered through its text form.
type Record struct {
	Kind  string       `json:"kind" yaml:"kind"`
	Form  string       `json:"form,omitempty" yaml:"form,omitempty"`
	Input string       `json:"input" yaml:"input"`
	Value fmt.Stringer `json:"value" yaml:"value"`
	Rest  string       `json:"rest,omitempty" yaml:"rest,omitempty"`
}

type Encoder interface {
	Encode(rec Record) error
	Close() error
}

// NewEncoder returns an encoder for f writing to w.
func NewEncoder(w io.Writer, f Format) (Encoder, error) {
	switch f {
	case FormatText:
		return &textEncoder{w: w}, nil
	case FormatJSON:
		return &jsonEncoder{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlEncoder{enc: enc}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// textEncoder writes one canonical value per line.
type textEncoder struct {
	w io.Writer
}

func (e *textEncoder) Encode(rec Record) error {
	_, err := fmt.Fprintln(e.w, rec.Value.String())
	return err
}

func (e *textEncoder) Close() error { return nil }

type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) Encode(rec Record) error { return e.enc.Encode(rec) }

func (e *jsonEncoder) Close() error { return nil }

// yamlEncoder separates records with "---".
type yamlEncoder struct {
	enc *yaml.Encoder
}

func (e *yamlEncoder) Encode(rec Record) error { return e.enc.Encode(rec) }

func (e *yamlEncoder) Close() error { return e.enc.Close() }
