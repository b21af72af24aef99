package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"selector-generator/internal/gen"
	"selector-generator/internal/structtag"
	"selector-generator/naming"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "selectorgen.yaml"

// CurrentVersion is the only supported configuration version.
const CurrentVersion = "1"

// Config describes one generated selectors file.
type Config struct {
	// Version of the configuration format.
	Version string `yaml:"version"`
	// Source is the Go package pattern to analyze, e.g. ./examples/drive.
	Source string `yaml:"source"`
	// Types restricts generation to these type names; empty selects every
	// exported struct type of Source.
	Types []string `yaml:"types,omitempty"`
	// Output is the generated file path; empty places selectors_gen.go in
	// the analyzed package directory.
	Output string `yaml:"output,omitempty"`
	// Package is the generated package name; empty uses the analyzed package's name.
	Package string `yaml:"package,omitempty"`
	// Mode is const or method.
	Mode string `yaml:"mode"`
	// Naming converts untagged Go field names to wire names.
	Naming string `yaml:"naming"`
	// TagKey is the serialization tag consulted for wire names.
	TagKey string `yaml:"tag_key"`
	// Comments enables doc comments in the generated file.
	Comments *bool `yaml:"comments,omitempty"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Load loads and parses a YAML configuration file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Dir = filepath.Dir(path)

	return cfg, nil
}

// Parse parses YAML data into a Config with defaults applied. The result is
// not validated.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document leaves every field to its default.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.Mode == "" {
		cfg.Mode = string(gen.ModeConst)
	}

	if cfg.Naming == "" {
		cfg.Naming = naming.Camel.String()
	}

	if cfg.TagKey == "" {
		cfg.TagKey = structtag.DefaultNameKey
	}

	if cfg.Comments == nil {
		comments := true
		cfg.Comments = &comments
	}

	if cfg.Dir == "" {
		cfg.Dir = "."
	}
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported version %q (want %q)", c.Version, CurrentVersion))
	}

	if c.Source == "" {
		errs = append(errs, errors.New("source is required"))
	}

	if _, err := gen.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}

	if _, err := naming.Parse(c.Naming); err != nil {
		errs = append(errs, err)
	}

	if c.TagKey == "" || strings.ContainsAny(c.TagKey, " \t:\"") {
		errs = append(errs, fmt.Errorf("invalid tag_key %q", c.TagKey))
	}

	if c.Package != "" && !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("invalid package %q", c.Package))
	}

	if c.Output != "" && filepath.Ext(c.Output) != ".go" {
		errs = append(errs, fmt.Errorf("output %q must be a .go file", c.Output))
	}

	seen := make(map[string]bool, len(c.Types))
	for _, name := range c.Types {
		switch {
		case !token.IsIdentifier(name):
			errs = append(errs, fmt.Errorf("invalid type name %q", name))
		case seen[name]:
			errs = append(errs, fmt.Errorf("duplicate type %q", name))
		}

		seen[name] = true
	}

	return errors.Join(errs...)
}

// NamingConvention returns the parsed naming convention.
func (c *Config) NamingConvention() naming.Convention {
	conv, err := naming.Parse(c.Naming)
	if err != nil {
		return naming.Camel
	}

	return conv
}

// GenerateComments reports whether doc comments are enabled.
func (c *Config) GenerateComments() bool {
	return c.Comments == nil || *c.Comments
}

// Resolve returns p relative to the configuration directory. Absolute paths
// are returned unchanged.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Dir, p)
}

// OutputPath returns the generated file path, placing the default file name
// in pkgDir when no output is configured.
func (c *Config) OutputPath(pkgDir string) string {
	if c.Output == "" {
		return filepath.Join(pkgDir, gen.DefaultFilename)
	}

	return c.Resolve(c.Output)
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
