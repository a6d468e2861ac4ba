package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/oy3o/serial"
)

// Output modes.
const (
	ModeRaw    = "raw"
	ModeHex    = "hex"
	ModeEscape = "escape"
)

// Config holds hexcat settings. Environment variables provide the defaults
// and command-line flags override them.
type Config struct {
	Mode         string `env:"MODE"`
	SinkCapacity int    `env:"SINK_CAPACITY"`
	Debug        bool   `env:"DEBUG"`
}

// LoadConfig reads HEXCAT_* environment variables on top of the defaults.
func LoadConfig() (*Config, error) {
	cfg := Config{
		Mode:         ModeRaw,
		SinkCapacity: serial.DefaultSinkCapacity,
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "HEXCAT_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings after flags have been applied.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeRaw, ModeHex, ModeEscape:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.SinkCapacity <= 0 {
		return fmt.Errorf("sink capacity must be positive, got %d", c.SinkCapacity)
	}
	return nil
}
