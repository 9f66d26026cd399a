// Package config loads and saves the brush configuration as TOML.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"inkboard/internal/style"
)

// Config is the persisted tool configuration. Both option sets are kept so
// switching styles between strokes does not lose the other set's tuning.
type Config struct {
	BrushStyle      style.BrushStyle      `toml:"brush_style"`
	SmoothOptions   style.SmoothOptions   `toml:"smooth_options"`
	TexturedOptions style.TexturedOptions `toml:"textured_options"`
}

// Default returns the configuration a fresh install starts with.
func Default() Config {
	return Config{
		BrushStyle:      style.DefaultBrushStyle,
		SmoothOptions:   style.DefaultSmoothOptions(),
		TexturedOptions: style.DefaultTexturedOptions(),
	}
}

// Load reads a config file. File fields override the defaults, so a file
// without a brush_style key decodes with the style selector set to solid.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.BrushStyle.Valid() {
		cfg.BrushStyle = style.DefaultBrushStyle
	}
	return cfg, nil
}

// Save writes the config file.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
