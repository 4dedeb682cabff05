package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "hanoi.yaml"

// LoadHanoi loads Tower of Hanoi configuration.
// Search order: customPath -> ~/.hanoi/configs/hanoi.yaml -> ./configs/hanoi.yaml -> embedded default
// The returned config is always normalized.
func LoadHanoi(customPath string) (HanoiConfig, error) {
	cfg := DefaultHanoiConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultHanoiConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.resolve()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if parsed, ok := readConfig(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := readConfig(filepath.Join("configs", ConfigFile)); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHanoiYAML, &cfg); err != nil {
		cfg = DefaultHanoiConfig() // Fallback to hardcoded if embed fails
	}
	cfg.resolve()
	return cfg, nil
}

// readConfig parses a config file layered over the defaults.
// Missing or malformed files report false so the search can continue.
func readConfig(path string) (HanoiConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HanoiConfig{}, false
	}
	cfg := DefaultHanoiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HanoiConfig{}, false
	}
	cfg.resolve()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hanoi", "configs", filename)
}
