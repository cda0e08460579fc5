// Package logging builds the zerolog loggers marquee writes to.
//
// The TUI owns the terminal, so interactive runs log JSON lines to a file.
// Non-interactive runs log human-readable lines to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewFile opens path for appending and returns a JSON logger writing to it.
// The caller closes the returned io.Closer on shutdown.
func NewFile(path, level string) (zerolog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(file).Level(ParseLevel(level)).With().Timestamp().Logger()
	return logger, file, nil
}

// NewConsole returns a human-readable logger for non-interactive output.
func NewConsole(w io.Writer, level string, color bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	return zerolog.New(output).Level(ParseLevel(level)).With().Timestamp().Logger()
}
