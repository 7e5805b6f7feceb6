// Package config loads cuboid settings from TOML or YAML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/chazu/cuboid/pkg/cuboid"
)

// Format is a config file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
}

// Perspective names the node that receives the perspective style.
type Perspective struct {
	Target string `toml:"target" yaml:"target"`
	Value  string `toml:"value" yaml:"value"`
}

// Enabled reports whether a perspective should be applied.
func (p Perspective) Enabled() bool {
	return p.Value != ""
}

// Config describes one cuboid and how the tools log.
//
// Width, Height and Depth are decoded loosely: numbers are magnitudes in
// Unit, and a width or height string is used verbatim ("auto", "50vw").
type Config struct {
	ID          string      `toml:"id" yaml:"id"`
	Width       any         `toml:"width" yaml:"width"`
	Height      any         `toml:"height" yaml:"height"`
	Depth       any         `toml:"depth" yaml:"depth"`
	Unit        string      `toml:"unit" yaml:"unit"`
	Perspective Perspective `toml:"perspective" yaml:"perspective"`
	LogLevel    string      `toml:"log_level" yaml:"log_level"`
}

// Default returns the demonstration cuboid: 400 x 200 x 40 with no unit,
// perspective 100px on the body.
func Default() Config {
	return Config{
		Width:       400,
		Height:      200,
		Depth:       40,
		Perspective: Perspective{Target: "body", Value: "100px"},
		LogLevel:    "info",
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	log.LogVf("config: loaded %s", path)
	return cfg, nil
}

// Decode reads a config over the defaults. Keys absent from r keep their
// default values.
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&cfg)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&cfg)
		if err == io.EOF {
			err = nil
		}
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that cannot be deferred to the builder's
// diagnostics: depth must be a non-negative number and the log level must
// be known. Unsupported widths and heights are left for the builder to
// report.
func (c Config) Validate() error {
	d, ok := number(c.Depth)
	if !ok {
		return fmt.Errorf("config: depth must be a number, got %T", c.Depth)
	}
	if d < 0 {
		return fmt.Errorf("config: depth must not be negative, got %v", d)
	}
	if c.LogLevel != "" {
		if _, err := log.ValidateLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: log_level: %w", err)
		}
	}
	return nil
}

// Dimensions converts the config into builder input.
func (c Config) Dimensions() cuboid.Dimensions {
	d, _ := number(c.Depth)
	return cuboid.Dimensions{
		Width:  cuboid.SizeOf(c.Width),
		Height: cuboid.SizeOf(c.Height),
		Depth:  d,
		Unit:   c.Unit,
	}
}

// number extracts a float from a decoded numeric value.
func number(v any) (float64, bool) {
	m, ok := cuboid.SizeOf(v).Magnitude()
	return m, ok
}
