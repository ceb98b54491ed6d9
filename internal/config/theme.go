package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeConfig is the only client-side preference that survives restarts.
type ThemeConfig struct {
	Dark bool `yaml:"dark"`
}

func themePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "termdex", "theme.yaml"), nil
}

// LoadTheme reads the persisted theme preference. A missing or unreadable
// file falls back to the light theme.
func LoadTheme() ThemeConfig {
	path, err := themePath()
	if err != nil {
		return ThemeConfig{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ThemeConfig{}
	}

	var theme ThemeConfig
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return ThemeConfig{}
	}
	return theme
}

func SaveTheme(theme ThemeConfig) error {
	path, err := themePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(theme)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
