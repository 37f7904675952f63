package config

// Config represents the complete configuration for the stackqr application.
// It covers all commands (generate, stack, serve) and supports loading from
// configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Layer distribution settings
	Layers LayersConfig `mapstructure:"layers" yaml:"layers" json:"layers"`

	// Output rendering settings
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// LayersConfig contains layer distribution settings.
type LayersConfig struct {
	// Total is n, the number of layer images produced.
	Total int `mapstructure:"total" yaml:"total" json:"total"`

	// Required is k, the number of layers that must be stacked to restore
	// the code.
	Required int `mapstructure:"required" yaml:"required" json:"required"`

	// Seed keys the random layer assignment; 0 picks a fresh seed per run.
	Seed uint64 `mapstructure:"seed" yaml:"seed" json:"seed"`

	// Workers is the number of goroutines distributing matrix rows.
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`

	// Verify re-checks every k-subset of the generated layers against the
	// source matrix before writing any file.
	Verify bool `mapstructure:"verify" yaml:"verify" json:"verify"`
}

// OutputConfig contains raster output settings.
type OutputConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir" json:"dir"`
	Prefix  string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
	BoxSize int    `mapstructure:"box_size" yaml:"box_size" json:"box_size"`
	Border  int    `mapstructure:"border" yaml:"border" json:"border"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxBodyKB       int64  `mapstructure:"max_body_kb" yaml:"max_body_kb" json:"max_body_kb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}
