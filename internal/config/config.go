// Package config loads Carlo's process-wide settings: numeric
// precision, default render mode, and CLI color, via a small
// Viper-backed settings struct.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Mode selects the rendering target cmd/carlo's root command uses when
// it runs without the run or latex subcommand.
type Mode string

const (
	ModeText  Mode = "text"
	ModeLaTeX Mode = "latex"
)

// Settings is Carlo's full set of user-configurable defaults.
type Settings struct {
	// Precision is the number of fractional digits printed for a
	// numeric value. spec.md fixes this at 4; cmd/carlo passes it
	// straight to render.SetPrecision at startup, so a config file can
	// override it for local experimentation.
	Precision int `mapstructure:"precision"`

	// DefaultMode is "text" or "latex": which rendering cmd/carlo's
	// root command uses when invoked without the run/latex subcommand.
	DefaultMode Mode `mapstructure:"default_mode"`

	// Color enables ANSI diagnostic coloring in cmd/carlo.
	Color bool `mapstructure:"color"`
}

// Defaults returns spec-matching settings: 4 fractional digits, plain
// text output, color on.
func Defaults() Settings {
	return Settings{
		Precision:   4,
		DefaultMode: ModeText,
		Color:       true,
	}
}

// Load reads settings from an optional config file (YAML/TOML/JSON,
// whatever Viper's format sniffing detects) at path, falling back to
// Defaults for anything the file doesn't set. An empty path only
// applies environment variable overrides (CARLO_PRECISION, etc.) on
// top of the defaults.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("carlo")
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault("precision", defaults.Precision)
	v.SetDefault("default_mode", string(defaults.DefaultMode))
	v.SetDefault("color", defaults.Color)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decoding settings: %w", err)
	}

	if s.DefaultMode != ModeText && s.DefaultMode != ModeLaTeX {
		return Settings{}, fmt.Errorf("config: default_mode must be %q or %q, got %q", ModeText, ModeLaTeX, s.DefaultMode)
	}

	return s, nil
}
