// Package config loads the standup YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/golangast/standuptagger/internal/apperrors"
	"github.com/golangast/standuptagger/internal/logging"
	"github.com/golangast/standuptagger/internal/projects"
	"github.com/golangast/standuptagger/internal/report"
)

// DefaultPath is read when no --config flag is given; it may be absent.
const DefaultPath = "standup.yaml"

// Config holds the keyword lists and runtime settings.
type Config struct {
	Indicators []string `yaml:"indicators"`
	Prefixes   []string `yaml:"prefixes"`
	People     []string `yaml:"people"`
	DB         string   `yaml:"db"`
	LogLevel   string   `yaml:"log_level"`
	Workers    int      `yaml:"workers"`
	Format     string   `yaml:"format"`
}

// Default returns the built in configuration.
func Default() Config {
	m := projects.DefaultMatcher()
	return Config{
		Indicators: m.Indicators,
		Prefixes:   m.Prefixes,
		DB:         "data/standup.db",
		LogLevel:   "info",
		Workers:    runtime.NumCPU(),
		Format:     "text",
	}
}

// Load reads path over the defaults. A missing file is only an error when
// the path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, apperrors.NewConfigError("read config %s: %v", path, err)
	}
	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, apperrors.NewConfigError("parse config %s: %v", path, err)
	}
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the settings that can be wrong.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return apperrors.NewConfigError("workers must be at least 1, got %d", c.Workers)
	}
	if !slices.Contains(report.Formats, c.Format) {
		return apperrors.NewConfigError("unknown format %q (want one of %v)", c.Format, report.Formats)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("log_level: %v", err)
	}
	if len(c.Indicators) == 0 && len(c.Prefixes) == 0 {
		return apperrors.NewConfigError("indicators and prefixes are both empty")
	}
	return nil
}

// Matcher returns the project matcher for the configured keyword lists.
func (c Config) Matcher() projects.Matcher {
	return projects.Matcher{Indicators: c.Indicators, Prefixes: c.Prefixes}
}

// String renders the effective configuration as YAML.
func (c Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		type plain Config
		return fmt.Sprintf("%+v", plain(c))
	}
	return string(out)
}
