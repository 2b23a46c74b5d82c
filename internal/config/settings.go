package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings is the persisted shellpane configuration.
type Settings struct {
	// Theme names the color palette applied to the pane and overlay.
	Theme string `json:"theme" jsonschema:"default=vitesse-dark,description=Color theme name"`
	// Shell overrides $SHELL when non-empty.
	Shell string `json:"shell,omitempty" jsonschema:"description=Shell binary to run (defaults to $SHELL)"`
	// TabWidth is the tab stop width mirrored into the sticky overlay.
	TabWidth int `json:"tabWidth" jsonschema:"default=8,minimum=1"`
	// ScrollbackLimit caps retained history lines; 0 means unlimited.
	ScrollbackLimit int `json:"scrollbackLimit" jsonschema:"default=10000,minimum=0"`
	// StickyDebounceMS is the sticky refresh coalescing window in
	// milliseconds. Zero keeps trailing-edge coalescing with no delay.
	StickyDebounceMS int `json:"stickyDebounceMs" jsonschema:"default=0,minimum=0"`
	// MinContrast is the minimum contrast ratio the overlay enforces when
	// copying colors from the pane.
	MinContrast float64 `json:"minContrast" jsonschema:"default=1,minimum=1"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme:           "vitesse-dark",
		TabWidth:        8,
		ScrollbackLimit: 10000,
		MinContrast:     1,
	}
}

// LoadSettings reads settings.json, returning defaults when the file is
// missing. A malformed file is an error; a missing one is not.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()
	path, err := SettingsPath()
	if err != nil {
		return s, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return DefaultSettings(), err
	}
	return normalize(s), nil
}

// SaveSettings writes settings.json, creating the config dir when needed.
func SaveSettings(s Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(normalize(s), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func normalize(s Settings) Settings {
	if s.Theme == "" {
		s.Theme = "vitesse-dark"
	}
	if s.TabWidth < 1 {
		s.TabWidth = 8
	}
	if s.ScrollbackLimit < 0 {
		s.ScrollbackLimit = 0
	}
	if s.StickyDebounceMS < 0 {
		s.StickyDebounceMS = 0
	}
	if s.MinContrast < 1 {
		s.MinContrast = 1
	}
	return s
}
