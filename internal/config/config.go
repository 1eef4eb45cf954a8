// Package config loads the golox command-line configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding a config file path
const EnvVar = "GOLOX_CONFIG"

// DefaultFile is looked up in the working directory
const DefaultFile = ".golox.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of the golox command
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       string `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
}

// Defaults returns the configuration used when no file is found
func Defaults() *Config {
	return &Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(os.TempDir(), ".golox_history"),
		Color:       ColorAuto,
		LogLevel:    "warn",
	}
}

// Resolve returns the config file to load: explicit path, then $GOLOX_CONFIG,
// then ./.golox.yaml. It returns "" when none applies.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r into cfg and validates the result
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var problems []string
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		problems = append(problems, fmt.Sprintf("color: must be one of auto, always, never (got %q)", c.Color))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("log_level: %v", err))
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New("configuration errors:\n  - " + strings.Join(problems, "\n  - "))
}

// Level returns the parsed log level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
