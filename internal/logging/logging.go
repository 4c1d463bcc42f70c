// Package logging configures the process-wide diagnostic logger.
//
// Diagnostics always go to stderr: stdout carries the MCP protocol frames
// and must never receive log output. An optional log file can be attached
// alongside stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init points the logger at stderr plus, when logPath is non-empty, the
// given file. Parent directories are created as needed. Calling Init again
// closes any previously attached file.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	writers := []io.Writer{os.Stderr}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	return nil
}

// Close detaches and closes the log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current process logger. Packages that want a scoped
// logger should derive from this one with With().
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent records an informational event.
func LogEvent(format string, args ...any) {
	l := Logger()
	l.Info().Msgf(format, args...)
}

// LogError records a failure together with its cause.
func LogError(err error, format string, args ...any) {
	l := Logger()
	l.Error().Err(err).Msgf(format, args...)
}
