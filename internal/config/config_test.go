package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Render.Theme != "default" {
		t.Errorf("Render.Theme = %q, want %q", cfg.Render.Theme, "default")
	}
	if !cfg.Render.ShowLabels {
		t.Error("Render.ShowLabels should be true by default")
	}
	if cfg.Render.ASCII {
		t.Error("Render.ASCII should be false by default")
	}

	if cfg.Solve.Width != 500 || cfg.Solve.Height != 500 {
		t.Errorf("Solve size = %vx%v, want 500x500", cfg.Solve.Width, cfg.Solve.Height)
	}
	if cfg.Solve.Precision != 1 {
		t.Errorf("Solve.Precision = %d, want 1", cfg.Solve.Precision)
	}

	if !cfg.Watch.Enabled {
		t.Error("Watch.Enabled should be true by default")
	}
	if got := cfg.Watch.Debounce(); got != 250*time.Millisecond {
		t.Errorf("Watch.Debounce() = %v, want 250ms", got)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() with pure defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("render.theme", "ocean")
	viper.Set("solve.width", 1024)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.Theme != "ocean" {
		t.Errorf("Render.Theme = %q, want %q", cfg.Render.Theme, "ocean")
	}
	if cfg.Solve.Width != 1024 {
		t.Errorf("Solve.Width = %v, want 1024", cfg.Solve.Width)
	}
	// Untouched keys keep their defaults.
	if cfg.Watch.DebounceMs != 250 {
		t.Errorf("Watch.DebounceMs = %d, want 250", cfg.Watch.DebounceMs)
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	if cfg := Get(); *cfg != *Default() {
		t.Errorf("Get() = %+v, want defaults", cfg)
	}
}
