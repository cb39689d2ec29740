// internal/logger/logger.go
// Package logger provides the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	level         slog.LevelVar
	defaultLogger *slog.Logger
	once          sync.Once
)

// Initialize sets up the structured logger. Diagnostics go to stderr so
// report output on stdout stays machine-readable.
func Initialize() {
	once.Do(func() {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: &level,
		})
		defaultLogger = slog.New(handler)
	})
}

// Get returns the default structured logger.
func Get() *slog.Logger {
	Initialize()
	return defaultLogger
}

// SetQuiet suppresses everything below the error level.
func SetQuiet(quiet bool) {
	if quiet {
		level.Set(slog.LevelError)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Info logs an info level message.
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs a warning level message.
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs an error level message.
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// Debug logs a debug level message.
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger { return Get().With(args...) }
