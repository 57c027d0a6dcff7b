// Package prefs handles flipgrid user preferences persistence.
// Preferences are stored in ~/.config/flipgrid/prefs.toml and are written
// back whenever the user changes them from the grid.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/flipgrid/internal/config"
)

// Prefs holds the choices the grid remembers between runs.
type Prefs struct {
	Theme string `toml:"theme"`
	// Exclusive keeps at most one card showing its back: a user flip
	// forces every other card to the front.
	Exclusive bool `toml:"exclusive"`
}

const (
	defaultPrefsPath = "~/.config/flipgrid/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path, unexpanded.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing was saved yet.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Exclusive: true}
}

// Load reads preferences from path, or DefaultPath when empty. Preferences
// never block startup: a missing, unreadable or malformed file yields
// Default.
func Load(path string) (Prefs, error) {
	resolved, err := locate(path)
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p, nil
}

// Save writes p to path, creating directories as needed. The file is
// replaced through a rename so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := locate(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func locate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
