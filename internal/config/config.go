// Package config loads dial simulator settings from YAML or HCL files and
// merges command-line overrides on top of them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dial"
	"github.com/aretw0/dial/internal/logging"
	"github.com/aretw0/dial/pkg/domain"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when none is given.
const DefaultPath = "dial.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings of a simulation run.
type Config struct {
	Perimeter int    `yaml:"perimeter" mapstructure:"perimeter"`
	Start     int    `yaml:"start" mapstructure:"start"`
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	Format    string `yaml:"format" mapstructure:"format"`
}

// hclConfig mirrors Config for gohcl; pointers tell absent attributes apart.
type hclConfig struct {
	Perimeter *int    `hcl:"perimeter,optional"`
	Start     *int    `hcl:"start,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	Format    *string `hcl:"format,optional"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Perimeter: dial.DefaultPerimeter,
		Start:     dial.DefaultStart,
		LogLevel:  "info",
		Format:    FormatText,
	}
}

// Load reads the file at path on top of the defaults and validates the result.
// Files ending in .hcl are parsed as HCL; anything else as YAML (which covers JSON).
func Load(path string) (Config, error) {
	cfg := Default()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		err = cfg.loadHCL(path)
	} else {
		err = cfg.loadYAML(path)
	}
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultPath from dir, falling back to Default when the file is absent.
func LoadDefault(dir string) (Config, error) {
	path := filepath.Join(dir, DefaultPath)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := c.Override(raw); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadHCL(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclConfig
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if parsed.Perimeter != nil {
		c.Perimeter = *parsed.Perimeter
	}
	if parsed.Start != nil {
		c.Start = *parsed.Start
	}
	if parsed.LogLevel != nil {
		c.LogLevel = *parsed.LogLevel
	}
	if parsed.Format != nil {
		c.Format = *parsed.Format
	}
	return nil
}

// Override decodes the given keys (config file keys, e.g. "perimeter") onto c.
// Unknown keys are rejected.
func (c *Config) Override(values map[string]any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      c,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}

// Validate checks that the settings describe a usable dial and known output options.
func (c Config) Validate() error {
	if _, err := domain.NewDial(c.Perimeter, c.Start); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
