// Package prefs stores the settings changed from inside the window, kept
// apart from config.toml so the app never rewrites a hand-edited config.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lunaracodes/gagwatch/internal/config"
)

// DefaultTheme names the theme used until the user picks another.
const DefaultTheme = "Classic"

const defaultPath = "~/.config/gagwatch/prefs.toml"

// Prefs holds user preferences for the window.
type Prefs struct {
	Theme string `toml:"theme"`
	View  string `toml:"view,omitempty"` // tab shown when the window opens
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string { return defaultPath }

// Defaults returns the preferences used when no file exists.
func Defaults() Prefs { return Prefs{Theme: DefaultTheme} }

// Load reads preferences from path, or the default path when empty. A
// missing file yields the defaults. Any other failure also yields the
// defaults, together with the error for the caller to log.
func Load(path string) (Prefs, error) {
	p := Defaults()

	resolved, err := resolve(path)
	if err != nil {
		return p, err
	}
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return p, nil
	case err != nil:
		return p, fmt.Errorf("read prefs: %w", err)
	}

	var saved Prefs
	if err := toml.Unmarshal(data, &saved); err != nil {
		return p, fmt.Errorf("parse prefs: %w", err)
	}
	if theme := strings.TrimSpace(saved.Theme); theme != "" {
		p.Theme = theme
	}
	p.View = strings.ToLower(strings.TrimSpace(saved.View))
	return p, nil
}

// Save replaces the preferences file at path through a temp file and a
// rename, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	return replaceFile(resolved, data)
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve prefs path: %w", err)
	}
	return resolved, nil
}

func replaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
