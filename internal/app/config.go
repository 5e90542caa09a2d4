package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PackName string
	Day      string
	Test     bool
	Censor   bool
	Timing   bool

	SettingsPath string // .hcl, .yaml or a directory of them
	InputDir     string // overrides every configured input root

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PackName == "" {
		return nil, errors.New("pack name is a required configuration field and cannot be empty")
	}
	if cfg.Day == "" {
		return nil, errors.New("day is a required configuration field and cannot be empty")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
