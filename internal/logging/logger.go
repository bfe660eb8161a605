// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// defaultLogger is the package-level default logger instance.
//
//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var defaultLogger atomic.Pointer[log.Logger]

// New creates a stderr logger with the specified level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w with the specified level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

// NewInteractive creates a logger for messages aimed at a person at a
// terminal, prefixed with the program name and timestamped.
func NewInteractive() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "mdscan",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(log.InfoLevel)
	return logger
}

// ParseLevel maps a level name to a log.Level; unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func setLoggerLevel(logger *log.Logger, level string) {
	logger.SetLevel(ParseLevel(level))
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(Default(), level)
}
