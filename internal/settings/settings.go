// Package settings persists user preferences as a YAML file under the XDG
// config directory. Preferences only affect presentation and which mode
// flags a round is started with; the engine never reads them directly.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds everything the player can configure.
type Settings struct {
	DarkMode        bool   `yaml:"dark_mode"`
	UnitaryMode     bool   `yaml:"unitary_mode"`
	AcuteAnglesOnly bool   `yaml:"acute_angles_only"`
	EasyInterval    bool   `yaml:"easy_interval"`
	LineThickness   int    `yaml:"line_thickness"`
	FirstColor      string `yaml:"first_color"`
	SecondColor     string `yaml:"second_color"`
}

// Default returns the settings used on first launch.
func Default() Settings {
	return Settings{
		DarkMode:        true,
		UnitaryMode:     false,
		AcuteAnglesOnly: true,
		EasyInterval:    true,
		LineThickness:   1,
		FirstColor:      "#14B8A6",
		SecondColor:     "#F97316",
	}
}

// DefaultPath resolves the settings file path:
// 1. ANGLER_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/angler/settings.yaml
// 3. ~/.config/angler/settings.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("ANGLER_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "angler", "settings.yaml"), nil
}

// Load reads settings from path. A missing file yields the defaults; a
// malformed file is an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s.normalized(), nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// normalized clamps values a hand-edited file may have pushed out of range.
func (s Settings) normalized() Settings {
	if s.LineThickness < 1 {
		s.LineThickness = 1
	}
	if s.LineThickness > 3 {
		s.LineThickness = 3
	}
	if s.FirstColor == "" {
		s.FirstColor = Default().FirstColor
	}
	if s.SecondColor == "" {
		s.SecondColor = Default().SecondColor
	}
	return s
}
