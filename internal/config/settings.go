// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration loaded from settings.yaml.
// Everything here has a sensible default; a missing file is not an error.
type Settings struct {
	WindowWidth   int    `yaml:"window_width"`
	WindowHeight  int    `yaml:"window_height"`
	WindowTitle   string `yaml:"window_title"`
	Seed          int64  `yaml:"seed"` // 0 means time-based
	StartingMoney int    `yaml:"starting_money"`
	AudioEnabled  bool   `yaml:"audio_enabled"`
	TowerDefsPath string `yaml:"tower_defs_path"`
}

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:   ScreenWidth,
		WindowHeight:  ScreenHeight,
		WindowTitle:   "Elemental Defense",
		Seed:          0,
		StartingMoney: 300,
		AudioEnabled:  true,
		TowerDefsPath: "assets/towers.json",
	}
}

// LoadSettings reads settings from the given YAML file, falling back to
// defaults when the file does not exist.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return settings, nil
}
