// Package config defines process configuration and how it is loaded.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables on top.
// - Errors are marked with this package's sentinels.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MaxLineLength caps one line of console input; longer lines are truncated.
	MaxLineLength int `koanf:"max_line_length"`

	// MetricsAddr, when set, serves Prometheus metrics at /metrics, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Banner prints the program title and command list at start-up.
	Banner bool `koanf:"banner"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "warn",
		MaxLineLength: 1023,
		MetricsAddr:   "",
		Banner:        true,
	}
}
