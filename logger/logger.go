package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/milk9111/zuul/config"
)

// Setup configures the global slog logger based on environment. Every record
// carries the session id so logs from separate runs can be told apart.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("session", uuid.NewString())
	slog.SetDefault(logger)
	return logger
}

// Open returns the destination configured by cfg.LogFile, or stderr. The
// returned close func is always safe to call.
func Open(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.LogFile == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// WithScene adds the scene name to logger context.
func WithScene(logger *slog.Logger, scene string) *slog.Logger {
	return logger.With("scene", scene)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
