package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Backend.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("BaseURL = %q", c.Backend.BaseURL)
	}
	if c.Query.Commodity != "wheat" || c.Query.Location != "Indore" || c.Query.HorizonDays != 53 {
		t.Errorf("query defaults = %+v", c.Query)
	}
	if c.Query.DashboardCity != "Bhopal" {
		t.Errorf("DashboardCity = %q", c.Query.DashboardCity)
	}
	if c.Trade.QtyTonnes != 20 {
		t.Errorf("QtyTonnes = %v", c.Trade.QtyTonnes)
	}
	if c.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v", c.Timeout())
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
backend:
  base_url: http://backend.internal:9000
query:
  commodity: soybean
  horizon_days: 30
trade:
  qty_tonnes: 50
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Backend.BaseURL != "http://backend.internal:9000" {
		t.Errorf("BaseURL = %q", c.Backend.BaseURL)
	}
	if c.Query.Commodity != "soybean" || c.Query.HorizonDays != 30 {
		t.Errorf("query = %+v", c.Query)
	}
	// Untouched fields fall back to defaults.
	if c.Query.Location != "Indore" {
		t.Errorf("Location = %q, want default", c.Query.Location)
	}
	if c.Backend.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want default", c.Backend.TimeoutSeconds)
	}
	if c.Trade.QtyTonnes != 50 {
		t.Errorf("QtyTonnes = %v", c.Trade.QtyTonnes)
	}
	if c.Trade.Source != "Mumbai Port" {
		t.Errorf("Source = %q, want default", c.Trade.Source)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "backend: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.Backend.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.Backend.TimeoutSeconds = 0 }},
		{"empty commodity", func(c *Config) { c.Query.Commodity = "" }},
		{"empty location", func(c *Config) { c.Query.Location = "" }},
		{"negative horizon", func(c *Config) { c.Query.HorizonDays = -1 }},
		{"horizon above cap", func(c *Config) { c.Query.HorizonDays = 121 }},
		{"zero quantity", func(c *Config) { c.Trade.QtyTonnes = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("invalid config passed validation")
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
query:
  horizon_days: 500
`)
	if _, err := Load(path); err == nil {
		t.Error("out-of-range horizon accepted")
	}

	// LoadUnchecked skips validation for the same file.
	c, err := LoadUnchecked(path)
	if err != nil {
		t.Fatalf("LoadUnchecked: %v", err)
	}
	if c.Query.HorizonDays != 500 {
		t.Errorf("HorizonDays = %d, want raw value preserved", c.Query.HorizonDays)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("AGRIPULSE_BASE_URL", "http://override:7000")

	c := FromEnv()
	if c.Backend.BaseURL != "http://override:7000" {
		t.Errorf("FromEnv BaseURL = %q", c.Backend.BaseURL)
	}

	// Env wins over the file value too.
	path := writeConfig(t, "backend:\n  base_url: http://file:9000\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Backend.BaseURL != "http://override:7000" {
		t.Errorf("Load BaseURL = %q, env should win", c.Backend.BaseURL)
	}
}

func TestMergeDomesticAlwaysWins(t *testing.T) {
	base := *Default()
	base.Trade.Domestic = true

	merged := Merge(base, Config{})
	if merged.Trade.Domestic {
		t.Error("override false did not win for Domestic")
	}
}
