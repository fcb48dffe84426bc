// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/alias/internal/color"
)

const (
	levelEnvSuffix  = "_LOG_LEVEL"
	formatEnvSuffix = "_LOG_FORMAT"
	formatJSON      = "json"
)

type loggerKey struct{}

// LevelVar is the level shared by every logger built by this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when the context carries no logger.
var DefaultLogger = NewPrettyLogger(os.Stderr)

func init() {
	LevelVar.Set(ParseLevel(os.Getenv(LevelEnvName(executableName()))))
}

// New creates a new context with the given logger.
// If logger is nil, it uses the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// NewPrettyLogger returns a logger using the PrettyHandler, coloured when the color package allows it.
func NewPrettyLogger(w io.Writer) *slog.Logger {
	return slog.New(NewPrettyHandler(w, LevelVar, color.Enabled()))
}

// NewJSONLogger returns a logger emitting one JSON object per record.
func NewJSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: LevelVar,
	}))
}

// FromEnv builds the logger selected by the <EXE>_LOG_FORMAT variable, writing to w.
func FromEnv(getenv func(string) string, w io.Writer) *slog.Logger {
	name := strings.ToUpper(executableName()) + formatEnvSuffix
	if strings.EqualFold(strings.TrimSpace(getenv(name)), formatJSON) {
		return NewJSONLogger(w)
	}

	return NewPrettyLogger(w)
}

// LevelEnvName returns the level variable name for an executable, e.g. A_LOG_LEVEL for `a`.
func LevelEnvName(exe string) string {
	return strings.ToUpper(exe) + levelEnvSuffix
}

// ParseLevel converts a level name to a slog.Level. Unknown or empty values mean WARN.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// executableName returns the base name of the running binary without a .exe suffix.
func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return "a"
	}

	exe = filepath.Base(exe)
	if ext := filepath.Ext(exe); strings.EqualFold(ext, ".exe") {
		exe = exe[:len(exe)-len(ext)]
	}

	return exe
}
