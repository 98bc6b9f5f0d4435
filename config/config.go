package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	// LogFile redirects logs away from stderr; the terminal frontend needs it.
	LogFile    string
	Seed       int64
	StartScene string
	Debug      bool
	SkipIntro  bool
}

// Load reads the environment only.
func Load() *Config {
	return &Config{
		Environment: getEnv("ZUUL_ENV", "development"),
		LogLevel:    parseLogLevel(getEnv("ZUUL_LOG_LEVEL", "info")),
		LogFile:     getEnv("ZUUL_LOG_FILE", ""),
		Seed:        parseSeed(getEnv("ZUUL_SEED", "")),
		StartScene:  getEnv("ZUUL_START_SCENE", ""),
	}
}

// Parse applies command line flags on top of the environment. Flags win.
func Parse(name string, args []string) (*Config, error) {
	cfg := Load()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	level := fs.String("log-level", cfg.LogLevel.String(), "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Environment, "env", cfg.Environment, "environment: development or production")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for maze decoration")
	fs.StringVar(&cfg.StartScene, "start", cfg.StartScene, "override the first scene")
	fs.BoolVar(&cfg.Debug, "debug", false, "hot reload scene files from disk")
	fs.BoolVar(&cfg.SkipIntro, "skip-intro", false, "start playing immediately")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.LogLevel = parseLogLevel(*level)
	return cfg, nil
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

// parseSeed falls back to the clock when no usable seed is set.
func parseSeed(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return time.Now().UnixNano()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
