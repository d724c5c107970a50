package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local config file checked by Load.
var LocalConfigPath = filepath.Join("configs", "fpt.yaml")

// Load loads the game configuration.
// Search order: customPath -> ~/.fpt/configs/fpt.yaml -> ./configs/fpt.yaml -> embedded default.
// Fields missing from a file keep their default values. A custom path that
// cannot be read, parsed or validated is an error; the optional locations
// are skipped when broken.
func Load(customPath string) (FPTConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFPTConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultFPTConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("fpt.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultFPTYAML)
	if err != nil {
		return DefaultFPTConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parse decodes a YAML document over the defaults and validates the result.
func parse(data []byte) (FPTConfig, error) {
	cfg := DefaultFPTConfig()
	// Colors from the file replace individual entries, not the whole map.
	colors := cfg.Colors
	cfg.Colors = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FPTConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	for k, v := range cfg.Colors {
		colors[k] = v
	}
	cfg.Colors = colors

	if err := cfg.Validate(); err != nil {
		return FPTConfig{}, fmt.Errorf("invalid: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fpt", "configs", filename)
}
