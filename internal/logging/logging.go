// Package logging builds the application's zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string
	FilePath   string    // empty disables the file writer
	Console    io.Writer // nil disables console output
	MaxSize    int       // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultConfig returns rotation defaults for the given file.
func DefaultConfig(path string) Config {
	return Config{
		Level:      "info",
		FilePath:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     14,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger from cfg. The returned Closer releases the log file.
// With neither a file nor a console configured the logger discards output.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if cfg.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        cfg.Console,
			TimeFormat: time.TimeOnly,
		})
	}

	if strings.TrimSpace(cfg.FilePath) != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
		writers = append(writers, file)
		closer = file
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		return zerolog.Nop(), closer, nil
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return parsed, nil
}
