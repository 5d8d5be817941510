package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Query   QueryConfig   `yaml:"query"`
	Trade   TradeConfig   `yaml:"trade"`
}

// BackendConfig points at the remote AgriPulse service.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// QueryConfig is the initial committed analytics query.
type QueryConfig struct {
	Commodity   string `yaml:"commodity"`
	Location    string `yaml:"location"`
	HorizonDays int    `yaml:"horizon_days"`
	// DashboardCity seeds the dashboard page; it is independent of Location.
	DashboardCity string `yaml:"dashboard_city"`
}

// TradeConfig is the initial trade simulation form state.
type TradeConfig struct {
	Commodity   string  `yaml:"commodity"`
	Source      string  `yaml:"source"`
	Destination string  `yaml:"destination"`
	QtyTonnes   float64 `yaml:"qty_tonnes"`
	Domestic    bool    `yaml:"domestic"`
}

// Default returns the built-in configuration, matching the defaults the
// terminal ships with when no config file is provided.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://127.0.0.1:8000",
			TimeoutSeconds: 30,
		},
		Query: QueryConfig{
			Commodity:     "wheat",
			Location:      "Indore",
			HorizonDays:   53,
			DashboardCity: "Bhopal",
		},
		Trade: TradeConfig{
			Commodity:   "Wheat",
			Source:      "Mumbai Port",
			Destination: "Novorossiysk",
			QtyTonnes:   20,
			Domestic:    false,
		},
	}
}

// Load reads a YAML config, overlays it onto the defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	merged := Merge(*Default(), c)
	merged.applyEnv()
	return &merged, nil
}

// FromEnv returns the default config with environment overrides applied.
// Used when no config file is present.
func FromEnv() *Config {
	c := Default()
	c.applyEnv()
	return c
}

func (c *Config) applyEnv() {
	if v := os.Getenv("AGRIPULSE_BASE_URL"); v != "" {
		c.Backend.BaseURL = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	if c.Backend.TimeoutSeconds <= 0 {
		return errors.New("backend.timeout_seconds must be positive")
	}
	if c.Query.Commodity == "" {
		return errors.New("query.commodity is required")
	}
	if c.Query.Location == "" {
		return errors.New("query.location is required")
	}
	if c.Query.HorizonDays < 0 || c.Query.HorizonDays > 120 {
		return fmt.Errorf("query.horizon_days must be in [0,120], got %d", c.Query.HorizonDays)
	}
	if c.Trade.QtyTonnes <= 0 {
		return fmt.Errorf("trade.qty_tonnes must be positive, got %v", c.Trade.QtyTonnes)
	}
	return nil
}

// Timeout returns the backend request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override Config) Config {
	out := base
	if override.Backend.BaseURL != "" {
		out.Backend.BaseURL = override.Backend.BaseURL
	}
	if override.Backend.TimeoutSeconds != 0 {
		out.Backend.TimeoutSeconds = override.Backend.TimeoutSeconds
	}
	if override.Query.Commodity != "" {
		out.Query.Commodity = override.Query.Commodity
	}
	if override.Query.Location != "" {
		out.Query.Location = override.Query.Location
	}
	if override.Query.HorizonDays != 0 {
		out.Query.HorizonDays = override.Query.HorizonDays
	}
	if override.Query.DashboardCity != "" {
		out.Query.DashboardCity = override.Query.DashboardCity
	}
	if override.Trade.Commodity != "" {
		out.Trade.Commodity = override.Trade.Commodity
	}
	if override.Trade.Source != "" {
		out.Trade.Source = override.Trade.Source
	}
	if override.Trade.Destination != "" {
		out.Trade.Destination = override.Trade.Destination
	}
	if override.Trade.QtyTonnes != 0 {
		out.Trade.QtyTonnes = override.Trade.QtyTonnes
	}
	// Domestic is a plain bool: false is indistinguishable from unset, so the
	// override always wins.
	out.Trade.Domestic = override.Trade.Domestic
	return out
}
