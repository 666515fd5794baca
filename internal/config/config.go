package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything gagwatch reads from its config file.
type Config struct {
	SeedsURL       string
	GearURL        string
	RequestTimeout time.Duration
	Granularity    int // minutes
	WatchFile      string
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/gagwatch/config.toml"
	defaultSeedsURL       = "https://gagapi.onrender.com/seeds"
	defaultGearURL        = "https://gagapi.onrender.com/gear"
	defaultRequestTimeout = 10 * time.Second
	defaultGranularity    = 5
	defaultWatchFile      = "gag_notifier_config.json"
	defaultLogFile        = "~/.local/state/gagwatch/gagwatch.log"
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SeedsURL:       defaultSeedsURL,
		GearURL:        defaultGearURL,
		RequestTimeout: defaultRequestTimeout,
		Granularity:    defaultGranularity,
		WatchFile:      mustExpand(defaultWatchFile),
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SeedsURL       string `toml:"seeds_url"`
		GearURL        string `toml:"gear_url"`
		RequestTimeout int    `toml:"request_timeout"`
		Granularity    int    `toml:"granularity"`
		WatchFile      string `toml:"watch_file"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.SeedsURL); v != "" {
		cfg.SeedsURL = v
	}
	if v := strings.TrimSpace(raw.GearURL); v != "" {
		cfg.GearURL = v
	}
	if raw.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("parse config: request_timeout must be positive, got %d", raw.RequestTimeout)
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}
	if raw.Granularity < 0 || raw.Granularity > 60 {
		return Config{}, fmt.Errorf("parse config: granularity must be between 1 and 60 minutes, got %d", raw.Granularity)
	}
	if raw.Granularity > 0 {
		cfg.Granularity = raw.Granularity
	}
	if v := strings.TrimSpace(raw.WatchFile); v != "" {
		cfg.WatchFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
