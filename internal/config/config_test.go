package config

import (
	"os"
	"path/filepath"
	"testing"

	"inkboard/internal/style"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkboard.toml")

	cfg := Default()
	cfg.BrushStyle = style.BrushStyleTextured
	cfg.SmoothOptions.Width = 3.5
	cfg.SmoothOptions.SegmentConstantWidth = true
	seed := uint64(42)
	cfg.TexturedOptions.Seed = &seed

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.BrushStyle != style.BrushStyleTextured {
		t.Errorf("BrushStyle = %s, want textured", got.BrushStyle)
	}
	if got.SmoothOptions.Width != 3.5 || !got.SmoothOptions.SegmentConstantWidth {
		t.Errorf("SmoothOptions = %+v", got.SmoothOptions)
	}
	if got.TexturedOptions.Seed == nil || *got.TexturedOptions.Seed != 42 {
		t.Errorf("Seed = %v, want 42", got.TexturedOptions.Seed)
	}
}

func TestMissingStyleDefaultsToSolid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkboard.toml")
	data := "[smooth_options]\nwidth = 7.0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.BrushStyle != style.BrushStyleSolid {
		t.Errorf("BrushStyle = %s, want solid", got.BrushStyle)
	}
	if got.SmoothOptions.Width != 7.0 {
		t.Errorf("Width = %v, want 7", got.SmoothOptions.Width)
	}
	// Untouched sections keep their defaults.
	if got.TexturedOptions.Width != style.DefaultTexturedOptions().Width {
		t.Errorf("TexturedOptions.Width = %v, want default", got.TexturedOptions.Width)
	}
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.BrushStyle != style.DefaultBrushStyle {
		t.Errorf("BrushStyle = %s, want default", got.BrushStyle)
	}
}
