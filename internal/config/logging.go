package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates the diagnostics logger: a terse console handler on
// stderr and a JSON handler appending to logFile, whose directory is created
// when missing. Returns the logger and a cleanup function to close the file.
func SetupLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	file, err := openLogFile(logFile)
	if err != nil {
		logger := slog.New(consoleHandler(os.Stderr, level)).With("run", runID())
		logger.Warn("diagnostics file unavailable, logging to stderr only", "error", err, "file", logFile)
		return logger, func() error { return nil }
	}
	return newLogger(os.Stderr, file, level), file.Close
}

// SetupLoggerWithWriters creates a logger with custom writers (for testing).
func SetupLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return newLogger(stderr, file, level)
}

func newLogger(stderr, file io.Writer, level slog.Level) *slog.Logger {
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(slogmulti.Fanout(consoleHandler(stderr, level), fileHandler)).With("run", runID())
}

// consoleHandler writes warnings and errors to the terminal the menu runs in.
// Debug level (--verbose) shows everything. Timestamps are left to the file.
func consoleHandler(w io.Writer, level slog.Level) slog.Handler {
	if level > slog.LevelDebug && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func runID() string {
	return uuid.New().String()[:8]
}
