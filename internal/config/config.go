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

	"github.com/five82/marquee/internal/catalog"
)

// Config captures the settings marquee reads from its TOML file.
type Config struct {
	Endpoint        string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration // zero disables auto refresh
	LogFile         string
	LogLevel        string
}

const (
	defaultConfigPath     = "~/.config/marquee/config.toml"
	defaultRequestTimeout = 10 * time.Second
	defaultLogFile        = "~/.local/state/marquee/marquee.log"
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:       catalog.DefaultEndpoint,
		RequestTimeout: defaultRequestTimeout,
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
		Endpoint        string `toml:"endpoint"`
		RequestTimeout  string `toml:"request_timeout"`
		RefreshInterval string `toml:"refresh_interval"`
		LogFile         string `toml:"log_file"`
		LogLevel        string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, defaultRequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RefreshInterval, err = parseDuration("refresh_interval", raw.RefreshInterval, 0); err != nil {
		return Config{}, err
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Path returns the config file Load would read for path.
func Path(path string) string {
	resolved, err := resolvePath(path)
	if err != nil {
		return path
	}
	return resolved
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse config: %s must not be negative", key)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
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
