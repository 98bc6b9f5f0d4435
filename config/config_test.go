package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ZUUL_ENV", "production")
	t.Setenv("ZUUL_LOG_LEVEL", "WARN")
	t.Setenv("ZUUL_LOG_FILE", "zuul.log")
	t.Setenv("ZUUL_SEED", "1234")
	t.Setenv("ZUUL_START_SCENE", "basement")

	cfg := Load()
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "zuul.log", cfg.LogFile)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "basement", cfg.StartScene)
	assert.False(t, cfg.Debug)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZUUL_ENV", "")
	t.Setenv("ZUUL_LOG_LEVEL", "")
	t.Setenv("ZUUL_SEED", "not a number")

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotZero(t, cfg.Seed)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ZUUL_SEED", "1")
	t.Setenv("ZUUL_LOG_LEVEL", "error")

	cfg, err := Parse("zuul", []string{"-seed", "42", "-log-level", "debug", "-start", "maze_1", "-debug", "-skip-intro"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "maze_1", cfg.StartScene)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.SkipIntro)
}

func TestParseKeepsEnvironmentLevel(t *testing.T) {
	t.Setenv("ZUUL_LOG_LEVEL", "error")
	cfg, err := Parse("zuul", nil)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func TestParseRejectsUnknownFlags(t *testing.T) {
	_, err := Parse("zuul", []string{"-fly"})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
