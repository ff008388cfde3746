package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should validate, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"ZeroPrecision":     func(c *Config) { c.FloatPrecision = 0 },
		"NegativePrecision": func(c *Config) { c.FloatPrecision = -1 },
		"NegativeTolerance": func(c *Config) { c.FloatComparisonTolerance = -0.1 },
		"EmptyListen":       func(c *Config) { c.ListenAddress = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knuckleball.yaml")
	yamlBody := "float_precision: 4\nfloat_comparison_tolerance: 0.001\nlisten_address: \":9000\"\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FloatPrecision != 4 {
		t.Errorf("FloatPrecision = %d, want 4", cfg.FloatPrecision)
	}
	if cfg.ListenAddress != ":9000" {
		t.Errorf("ListenAddress = %q, want :9000", cfg.ListenAddress)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("KNUCKLEBALL_FLOAT_PRECISION", "9")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FloatPrecision != 9 {
		t.Errorf("FloatPrecision = %d, want 9 from env override", cfg.FloatPrecision)
	}
}
