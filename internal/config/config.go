// Package config loads the CLI's default engine parameters from a YAML
// file, the way the original CLI's cobra flags carried indirect defaults
// through a config layer rather than hard-coded literals.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the default engine parameters the morphctl subcommands fall
// back to when a flag is not given explicitly.
type Config struct {
	Grid     string `yaml:"grid"`      // square, hexagonal, cubic, fcc
	Edge     string `yaml:"edge"`      // empty, filled
	MaxLevel int    `yaml:"max_level"` // watershed flood ceiling, 0 = unbounded
	LabelLow int    `yaml:"label_low"`
	LabelHigh int   `yaml:"label_high"`
	Log      Log    `yaml:"log"`
}

// Log holds rotating-file-log settings. The morphctl CLI does not read
// them: it always logs to stdout.
type Log struct {
	Path       string `yaml:"path"`
	JSON       bool   `yaml:"json"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the built-in defaults used when no config file is given.
func Default() Config {
	return Config{
		Grid:      "square",
		Edge:      "empty",
		MaxLevel:  0,
		LabelLow:  1,
		LabelHigh: 255,
		Log: Log{
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load reads and parses a YAML config file, starting from Default() so a
// partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
