// Package logger provides the structured logger shared by every manus package.
//
// Output is discarded until Init is called, so library code and tests can log
// freely without touching the filesystem. The TUI owns the terminal, which is
// why logs go to a file rather than stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.RWMutex
	level   = new(slog.LevelVar)
	current = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
	logFile *os.File
	logPath string
)

func init() {
	level.Set(slog.LevelInfo)
}

// Init opens (or creates) the log file at path and routes all logging to it.
// Calling Init again closes the previous file.
func Init(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logPath = path
	current = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// SetOutput routes logging to w. Used by tests that want to assert on log lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	current = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDebug toggles debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Path returns the active log file path, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// Get returns the process logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// WithComponent returns a logger tagged with the component name.
func WithComponent(name string) *slog.Logger {
	return Get().With("component", name)
}

// Log writes a printf-style debug line. Prefer WithComponent for new code.
func Log(format string, args ...any) {
	Get().Debug(fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file and reverts to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	current = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
	logPath = ""
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
