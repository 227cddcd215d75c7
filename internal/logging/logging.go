// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package logging configures the process-wide stdlib logger with an
// optional rotating file sink alongside stderr, and gates Debugf/Infof/
// Warnf/Errorf calls against the configured verbosity.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	aclerrors "grimm.is/aclcheck/internal/errors"
)

// Level is a coarse logging verbosity, ordered least to most severe.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, aclerrors.Errorf(aclerrors.KindValidation, "logging: unknown level %q", s)
	}
}

// Configure points the standard logger at file (if non-empty, rotated via
// lumberjack) in addition to stderr, and sets the threshold Debugf/Infof/
// Warnf/Errorf are gated against.
func Configure(level Level, file string) error {
	current.Store(int32(level))
	log.SetFlags(log.LstdFlags)

	var out io.Writer = os.Stderr
	if file != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}
	log.SetOutput(out)
	return nil
}

// Enabled reports whether a message at level would be emitted under the
// threshold most recently passed to Configure.
func Enabled(level Level) bool {
	return level >= Level(current.Load())
}

// Debugf logs format/args through the standard logger if the configured
// level is LevelDebug.
func Debugf(format string, args ...interface{}) { logAt(LevelDebug, format, args...) }

// Infof logs format/args through the standard logger if the configured
// level is LevelInfo or more verbose.
func Infof(format string, args ...interface{}) { logAt(LevelInfo, format, args...) }

// Warnf logs format/args through the standard logger if the configured
// level is LevelWarn or more verbose.
func Warnf(format string, args ...interface{}) { logAt(LevelWarn, format, args...) }

// Errorf logs format/args through the standard logger unconditionally;
// LevelError is the least verbose threshold, so errors are never filtered.
func Errorf(format string, args ...interface{}) { logAt(LevelError, format, args...) }

func logAt(level Level, format string, args ...interface{}) {
	if !Enabled(level) {
		return
	}
	log.Printf(format, args...)
}
