package watch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lunaracodes/gagwatch/internal/catalog"
)

// DefaultPath is the watch file name, resolved against the working directory.
const DefaultPath = "gag_notifier_config.json"

type fileFormat struct {
	SelectedSeeds map[string]bool `json:"selected_seeds"`
	SelectedGear  map[string]bool `json:"selected_gear"`
}

// Load applies the saved flags at path to s. A missing file is not an
// error. On a read or parse error s is left untouched and the error is
// returned; callers log it and keep the defaults. Names that are not in the
// current catalogs are ignored.
func Load(path string, s *Selection) error {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read watch file: %w", err)
	}

	var saved fileFormat
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("parse watch file: %w", err)
	}

	for name, on := range saved.SelectedSeeds {
		s.Set(catalog.Seeds, name, on)
	}
	for name, on := range saved.SelectedGear {
		s.Set(catalog.Gear, name, on)
	}
	return nil
}

// Save writes both categories to path, replacing any existing file. The
// write goes through a temp file in the same directory and a rename.
func Save(path string, s *Selection) error {
	if path == "" {
		path = DefaultPath
	}
	data, err := json.MarshalIndent(fileFormat{
		SelectedSeeds: s.Snapshot(catalog.Seeds),
		SelectedGear:  s.Snapshot(catalog.Gear),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal watch file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".watch-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod watch file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write watch file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close watch file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace watch file: %w", err)
	}
	return nil
}
