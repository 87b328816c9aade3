package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

// Settings is the state persisted between runs: read at startup, written
// back on exit. A missing or corrupt file degrades to defaults.
type Settings struct {
	History []string `json:"history"` // hex colors, oldest first
	Zoom    int      `json:"zoom"`    // preview cell width in terminal columns
	Format  string   `json:"format"`  // active copy format name
}

// settingsDir overrides the default settings directory for testing.
// When empty, the user's home directory is used.
var settingsDir string

func settingsPath() (string, error) {
	if settingsDir != "" {
		return filepath.Join(settingsDir, "settings.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pixelpeeker", "settings.json"), nil
}

// DefaultSettings returns the settings used when nothing is persisted yet.
func DefaultSettings() Settings {
	return Settings{Zoom: defaultZoom, Format: FormatHex.String()}
}

// LoadSettings reads the persisted settings, sanitizing out-of-range
// values. Never fails; any problem yields defaults.
func LoadSettings() Settings {
	defaults := DefaultSettings()
	path, err := settingsPath()
	if err != nil {
		return defaults
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		log.WithError(err).Warn("ignoring corrupt settings file")
		return defaults
	}
	if s.Zoom < 1 || s.Zoom > maxZoom {
		s.Zoom = defaults.Zoom
	}
	if s.Format == "" {
		s.Format = defaults.Format
	}
	if len(s.History) > historyLimit {
		s.History = s.History[len(s.History)-historyLimit:]
	}
	return s
}

// SaveSettings persists s, creating the settings directory with 0700 if
// needed.
func SaveSettings(s Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// historyColors decodes persisted hex strings, silently dropping any that
// do not parse.
func historyColors(hexes []string) []RGB {
	var colors []RGB
	for _, h := range hexes {
		col, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		r, g, b := col.RGB255()
		colors = append(colors, RGB{r, g, b})
	}
	return colors
}

// historyStrings encodes history colors for persistence.
func historyStrings(colors []RGB) []string {
	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.String()
	}
	return hexes
}
