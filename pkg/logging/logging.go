// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                          // INFO level, from LOG_LEVEL env
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//	logging.SetupWithOptions(logging.Options{Level: "debug", File: "clevermart.log"})
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
//	LOG_FILE:  also write plain-text logs to this file, rotated by size
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log level and an optional rotated log file.
type Options struct {
	Level string
	File  string
}

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO), with file output if LOG_FILE is set.
func Setup() io.Closer {
	return SetupWithOptions(Options{Level: os.Getenv("LOG_LEVEL"), File: os.Getenv("LOG_FILE")})
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(consoleHandler(os.Stderr, level)))
}

// SetupWithOptions configures colored logging on stderr and, when opts.File
// is set, a rotated text log next to it. The returned Closer releases the
// file; it is a no-op without one.
func SetupWithOptions(opts Options) io.Closer {
	level := ParseLevel(opts.Level)
	if opts.File == "" {
		SetupWithLevel(level)
		return nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}
	slog.SetDefault(slog.New(fanout{
		consoleHandler(os.Stderr, level),
		slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}),
	}))
	return file
}

// ParseLevel maps debug, warn and error to their slog levels and anything
// else to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func consoleHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
