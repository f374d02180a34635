package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog so the rest of gh-profile never touches handler setup.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

// Config contains logging information used to set up the logger
type Config struct {
	// Log Level.  One of: debug, info, warn, error
	Level string
	// Optional file to append JSON logs to.  Empty means text logs on Writer.
	FilePath string
	// Destination for text logs.  Defaults to stderr.
	Writer io.Writer
}

func New(config Config) (*Logger, error) {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(config.Level),
	}

	if config.FilePath == "" {
		w := config.Writer
		if w == nil {
			w = os.Stderr
		}
		return &Logger{logger: slog.New(slog.NewTextHandler(w, opts))}, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o700); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	return &Logger{
		logger: slog.New(slog.NewJSONHandler(file, opts)),
		file:   file,
	}, nil
}

// Close the log file, if any
func (l *Logger) Close() {
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error closing logger: %v\n", err)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// parseLogLevel defaults to warn so a normal run only prints its result line.
func parseLogLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
