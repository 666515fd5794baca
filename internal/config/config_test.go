package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SeedsURL != defaultSeedsURL || cfg.GearURL != defaultGearURL {
		t.Fatalf("URLs = %q, %q, want defaults", cfg.SeedsURL, cfg.GearURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.Granularity != 5 {
		t.Fatalf("Granularity = %d, want 5", cfg.Granularity)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	wd, _ := os.Getwd()
	if cfg.WatchFile != filepath.Join(wd, defaultWatchFile) {
		t.Fatalf("WatchFile = %q, want it in the working directory", cfg.WatchFile)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
seeds_url = "  http://localhost:8080/seeds  "
gear_url = "http://localhost:8080/gear"
request_timeout = 3
granularity = 15
watch_file = "  ~/watch.json  "
log_file = "~/logs/gw.log"
log_level = " DEBUG "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SeedsURL != "http://localhost:8080/seeds" {
		t.Fatalf("SeedsURL = %q", cfg.SeedsURL)
	}
	if cfg.RequestTimeout != 3*time.Second || cfg.Granularity != 15 {
		t.Fatalf("timeout/granularity = %v/%d", cfg.RequestTimeout, cfg.Granularity)
	}
	if cfg.WatchFile != filepath.Join(home, "watch.json") {
		t.Fatalf("WatchFile = %q", cfg.WatchFile)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "gw.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
seeds_url = "   "
granularity = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SeedsURL != defaultSeedsURL || cfg.Granularity != defaultGranularity {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_RejectsOutOfRangeNumbers(t *testing.T) {
	tests := map[string]string{
		"granularity too large": "granularity = 61",
		"negative granularity":  "granularity = -5",
		"negative timeout":      "request_timeout = -1",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("Load(%q) returned nil error", body)
			}
		})
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`seeds_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
