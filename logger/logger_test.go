package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/zuul/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupProductionWritesJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	log := Setup(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)
	WithScene(log, "ice").Info("scene changed")
	log.Debug("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scene changed", rec["msg"])
	assert.Equal(t, "ice", rec["scene"])
	assert.NotEmpty(t, rec["session"])
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestSetupDevelopmentWritesText(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Setup(&config.Config{Environment: "development", LogLevel: slog.LevelDebug}, &buf)
	WithError(slog.Default(), errors.New("boom")).Debug("reload failed")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="reload failed"`)
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "session=")
}

func TestOpen(t *testing.T) {
	w, closeFn, err := Open(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "zuul.log")
	w, closeFn, err = Open(&config.Config{LogFile: path})
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
