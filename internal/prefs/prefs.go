// Package prefs persists marquee user preferences.
// Preferences are stored in ~/.config/marquee/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/marquee/internal/config"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/marquee/prefs.toml"
	DefaultTheme     = "Nightfox" // used when prefs are missing
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Preferences are cosmetic, so a missing,
// unreadable, or malformed file yields the defaults rather than an error.
func Load(path string) (Prefs, error) {
	prefs := Prefs{Theme: DefaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return prefs, nil
	}
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: DefaultTheme}, nil
	}
	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = DefaultTheme
	}
	return prefs, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
