// Package config loads griddemo settings through viper: defaults first,
// then an optional config file, then GRIDDEMO_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete griddemo configuration
type Config struct {
	Render Render `mapstructure:"render"`
	Solve  Solve  `mapstructure:"solve"`
	Watch  Watch  `mapstructure:"watch"`
}

// Render controls how the show command draws the grid
type Render struct {
	// Theme is the color theme: "default", "mono", "ocean"
	Theme string `mapstructure:"theme"`
	// ShowLabels draws each cell's name in its top-left corner
	ShowLabels bool `mapstructure:"show_labels"`
	// ASCII forces plain ASCII borders instead of box-drawing runes
	ASCII bool `mapstructure:"ascii"`
}

// Solve controls the solve command's defaults
type Solve struct {
	// Width is the available width used when --width is not given
	Width float64 `mapstructure:"width"`
	// Height is the available height used when --height is not given
	Height float64 `mapstructure:"height"`
	// Precision is the number of fractional digits printed per coordinate
	Precision int `mapstructure:"precision"`
}

// Watch controls hot reload of the grid definition file
type Watch struct {
	// Enabled controls whether show watches the definition file for edits
	Enabled bool `mapstructure:"enabled"`
	// DebounceMs coalesces rapid write events before reloading
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Debounce returns the watch debounce as a time.Duration
func (w *Watch) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Render: Render{
			Theme:      "default",
			ShowLabels: true,
			ASCII:      false,
		},
		Solve: Solve{
			Width:     500,
			Height:    500,
			Precision: 1,
		},
		Watch: Watch{
			Enabled:    true,
			DebounceMs: 250,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("render.theme", defaults.Render.Theme)
	viper.SetDefault("render.show_labels", defaults.Render.ShowLabels)
	viper.SetDefault("render.ascii", defaults.Render.ASCII)

	viper.SetDefault("solve.width", defaults.Solve.Width)
	viper.SetDefault("solve.height", defaults.Solve.Height)
	viper.SetDefault("solve.precision", defaults.Solve.Precision)

	viper.SetDefault("watch.enabled", defaults.Watch.Enabled)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}

// Init wires viper to the config file and environment. The file is optional;
// a missing one leaves the defaults in place.
func Init() error {
	SetDefaults()

	viper.SetConfigName(".griddemo")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(ConfigDir())

	viper.SetEnvPrefix("GRIDDEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return err
	}
	return nil
}

// Load reads the configuration from viper into a Config struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if
// unmarshaling fails
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "griddemo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".griddemo"
	}
	return filepath.Join(home, ".config", "griddemo")
}
