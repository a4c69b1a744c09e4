package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/diegok/duopong/internal/game"
)

// LoadSettings reads a settings file on top of the defaults and validates
// the result. The format is picked from the extension.
func LoadSettings(path string) (game.Settings, error) {
	settings := game.DefaultSettings()
	if err := decodeFile(path, &settings); err != nil {
		return game.Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return game.Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// decodeFile leaves fields missing from the file untouched
func decodeFile(path string, settings *game.Settings) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, settings); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	return nil
}
