package config

import (
	_ "embed"
)

//go:embed defaults/fpt.yaml
var defaultFPTYAML []byte

// DefaultFPTConfig returns the built-in configuration.
func DefaultFPTConfig() FPTConfig {
	return FPTConfig{
		Gravity: GravityConfig{
			IntervalMS: 500,
		},
		View: ViewConfig{
			Mode:      ViewRotating,
			CellWidth: 2,
		},
		Colors: map[string]string{
			"I":          "cyan",
			"O":          "yellow",
			"S":          "lime",
			"Z":          "red",
			"J":          "blue",
			"L":          "orange",
			"T":          "magenta",
			WallColorKey: "gray",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFPTYAML
}
