package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	// ContentDir is checked for YAML and script overrides before the
	// embedded copies.
	ContentDir string
	Volume     float64
	Mute       bool

	Debug        bool
	StartLevel   int
	AllAbilities bool
	BaseMonitor  bool
}

// Load reads the environment and then the command line. Flags win.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		Environment: getEnv("TERRA_ENV", "development"),
		LogLevel:    parseLogLevel(getEnv("TERRA_LOG_LEVEL", "info")),
		ContentDir:  getEnv("TERRA_CONTENT_DIR", "prefabs"),
		Volume:      parseVolume(getEnv("TERRA_VOLUME", "0.5")),
	}

	fs := flag.NewFlagSet("terra", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.AllAbilities, "ab", false, "start with the special attack unlocked")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug mode")
	fs.BoolVar(&cfg.BaseMonitor, "m", false, "use base monitor instead of primary (for multi-monitor setups)")
	fs.IntVar(&cfg.StartLevel, "level", 0, "level index to start on, 0 plays the prologue")
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.StartLevel < 0 {
		return nil, fmt.Errorf("config: level must not be negative, got %d", cfg.StartLevel)
	}
	if cfg.Debug && cfg.LogLevel > slog.LevelDebug {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg, nil
}

func (c *Config) Production() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseVolume(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0.5
	}
	return max(0, min(f, 1))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
