// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger used by the rectilinear CLI:
// a human-readable console writer plus an optional size-rotated JSON file.
// Library packages never log; only cmd/rectilinear and package cli do.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// timeFormat is used by both the console and the JSON file.
const timeFormat = "2006-01-02 15:04:05.000"

// Config selects level and outputs.
type Config struct {
	// Level is a zerolog level name; unknown names fall back to info.
	Level string
	// File, when non-empty, adds a rotating JSON log at this path.
	File string
	// MaxSizeMB is the size at which File is rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
	// NoColor disables ANSI colours on the console.
	NoColor bool
}

// consoleWriter reports len(p) back to zerolog: ConsoleWriter rewrites the
// JSON entry, and the rewritten length would make MultiLevelWriter fail with
// a short write.
type consoleWriter struct {
	zerolog.ConsoleWriter
}

func (c consoleWriter) Write(p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

func (c consoleWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	return c.Write(p)
}

// New returns a logger writing to console and, if cfg.File is set, to a
// lumberjack-rotated file. The returned close function releases the file.
func New(cfg Config, console io.Writer) (zerolog.Logger, func() error) {
	writers := []io.Writer{consoleWriter{zerolog.ConsoleWriter{
		Out:        console,
		NoColor:    cfg.NoColor,
		TimeFormat: timeFormat,
		FormatCaller: func(i interface{}) string {
			caller, _ := i.(string)
			return filepath.Base(caller)
		},
	}}}

	closer := func() error { return nil }
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		writers = append(writers, lj)
		closer = lj.Close
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, closer
}

// ParseLevel maps a level name ("debug", "WARN", …) to a zerolog level,
// defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}

	return parsed
}

// Banner returns the separator line written at the start of every run.
func Banner(command string, now time.Time) string {
	return fmt.Sprintf("── rectilinear %s started %s ──", command, now.Format(timeFormat))
}
