package config

import (
	"fmt"
	"strings"
)

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag overrides a value. Layer defaults mirror the classic
// "any 3 of 5 sheets" split.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Layers: LayersConfig{
			Total:    5,
			Required: 3,
			Seed:     0,
			Workers:  1,
			Verify:   false,
		},
		Output: OutputConfig{
			Dir:     "layers",
			Prefix:  "qr_layer_",
			BoxSize: 10,
			Border:  4,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxBodyKB:       64,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.Layers.Total < 1 {
		return fmt.Errorf("invalid layer total: %d (must be at least 1)", c.Layers.Total)
	}
	if c.Layers.Required < 1 || c.Layers.Required > c.Layers.Total {
		return fmt.Errorf("invalid required layer count: %d (must be between 1 and %d)", c.Layers.Required, c.Layers.Total)
	}
	if c.Layers.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d (must not be negative)", c.Layers.Workers)
	}

	if c.Output.BoxSize < 1 {
		return fmt.Errorf("invalid box size: %d (must be at least 1)", c.Output.BoxSize)
	}
	if c.Output.Border < 0 {
		return fmt.Errorf("invalid border: %d (must not be negative)", c.Output.Border)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("invalid server timeout: %d (must be positive)", c.Server.TimeoutSec)
	}
	if c.Server.MaxBodyKB <= 0 {
		return fmt.Errorf("invalid max body size: %d (must be positive)", c.Server.MaxBodyKB)
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
