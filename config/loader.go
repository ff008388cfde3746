package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// envPrefix namespaces every environment variable override this
// package recognizes.
const envPrefix = "KNUCKLEBALL_"

// Load reads path as YAML into a Config seeded with DefaultConfig,
// applies environment variable overrides, and validates the result.
// An empty path skips the file read and returns defaults plus
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envPrefix + "LOGFILE"); v != "" {
		cfg.LogfileName = v
	}
	if v := os.Getenv(envPrefix + "QUIET"); v != "" {
		cfg.QuietMode = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv(envPrefix + "FLOAT_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FloatPrecision = n
		}
	}
	if v := os.Getenv(envPrefix + "FLOAT_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FloatComparisonTolerance = f
		}
	}
	if v := os.Getenv(envPrefix + "LISTEN"); v != "" {
		cfg.ListenAddress = v
	}
}
