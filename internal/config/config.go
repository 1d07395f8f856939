// Package config loads and saves bcalc's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"bcalc/internal/budget"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config holds all bcalc configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Chart      ChartConfig      `toml:"chart"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultTimeFrameMonths int `toml:"default_time_frame_months"`
}

// ChartConfig holds the abstract drawing dimensions handed to the geometry
// builders. Renderers map these units onto terminal cells or pixels.
type ChartConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	PieRadius float64 `toml:"pie_radius"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultTimeFrameMonths: budget.DefaultTimeFrameMonths,
		},
		Chart: ChartConfig{
			Width:     640,
			Height:    240,
			PieRadius: 80,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "bcalc", "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.DefaultTimeFrameMonths <= 0 {
		cfg.General.DefaultTimeFrameMonths = budget.DefaultTimeFrameMonths
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		def := DefaultConfig()
		cfg.Chart.Width = def.Chart.Width
		cfg.Chart.Height = def.Chart.Height
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := filepath.Dir(Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
