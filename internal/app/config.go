package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/schematicscan/internal/report"
)

// StdinPath makes the app read a single schematic from its input reader.
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath   string // schematic file, directory, or "-"
	ProfilePath string // optional HCL scanner profile
	Extension   string // file suffix used when InputPath is a directory

	Format    string // report format
	LogFormat string
	LogLevel  string
	Workers   int
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Extension == "" {
		cfg.Extension = ".txt"
	}
	if cfg.Format == "" {
		cfg.Format = report.FormatText
	}
	if cfg.Format != report.FormatText && cfg.Format != report.FormatJSON {
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid workers %d: must not be negative", cfg.Workers)
	}
	return &cfg, nil
}
