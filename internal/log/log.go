// Package log provides the process-wide structured logger.
package log

import "sync"

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

// SetDefaultLogger sets the logger used by the package-level functions
func SetDefaultLogger(logger *Logger) {
	mu.Lock()
	defaultLogger = logger
	mu.Unlock()
}

// DefaultLogger returns the current default logger, which may be nil
func DefaultLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Debug logs at debug level using the default logger.
func Debug(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs at info level using the default logger.
func Info(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level using the default logger.
func Warn(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Warn(msg, args...)
	}
}
