// Package config loads and validates the small tunable surface a
// knuckleball dispatcher process reads at startup and hot-reloads on
// file change.
package config

// Config is the complete process configuration.
type Config struct {
	// LogfileName is the path the dispatcher appends request/response
	// records to. Empty disables file logging.
	LogfileName string `yaml:"logfile_name"`

	// QuietMode suppresses stdout logging when LogfileName is empty.
	QuietMode bool `yaml:"quiet_mode"`

	// FloatPrecision is the initial number of digits after the decimal
	// point used to render Float values. Must be > 0.
	FloatPrecision int `yaml:"float_precision"`

	// FloatComparisonTolerance is the initial absolute tolerance
	// Float.equals: uses. Must be >= 0.
	FloatComparisonTolerance float64 `yaml:"float_comparison_tolerance"`

	// ListenAddress is consumed only by the CLI's TCP listener, never
	// by Context itself.
	ListenAddress string `yaml:"listen_address"`
}

// DefaultConfig returns the configuration a Context starts with absent
// any file or environment override.
func DefaultConfig() *Config {
	return &Config{
		LogfileName:              "",
		QuietMode:                false,
		FloatPrecision:           6,
		FloatComparisonTolerance: 1e-6,
		ListenAddress:            ":7300",
	}
}

// Validate rejects a configuration that would leave Context in an
// inconsistent state, the same bound setFloatPrecision:/
// setFloatComparisonTolerance: enforce at runtime.
func (c *Config) Validate() error {
	if c.FloatPrecision <= 0 {
		return ErrInvalidFloatPrecision
	}
	if c.FloatComparisonTolerance < 0 {
		return ErrInvalidFloatTolerance
	}
	if c.ListenAddress == "" {
		return ErrInvalidListenAddress
	}
	return nil
}
