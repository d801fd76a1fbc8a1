package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Logger provides structured logging backed by log/slog.
//
// All output goes to stderr (and optionally a file): stdout is reserved
// for the single JSON result line of the invocation.
type Logger struct {
	inner   *slog.Logger
	level   slog.Level
	writers []io.Writer
	file    *os.File
}

// NewLogger creates a new structured logger tagged with a fresh
// invocation ID so log lines from concurrent bridge calls can be told apart.
func NewLogger(level string) *Logger {
	lvl := parseLevel(level)

	output := os.Stderr
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: lvl})

	return &Logger{
		inner:   slog.New(handler).With("invocation", uuid.NewString()),
		level:   lvl,
		writers: []io.Writer{output},
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// WithFile adds file output to the logger.
func (l *Logger) WithFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = file
	l.writers = append(l.writers, file)

	multi := io.MultiWriter(l.writers...)
	handler := slog.NewTextHandler(multi, &slog.HandlerOptions{Level: l.level})
	l.inner = slog.New(handler).With("invocation", uuid.NewString())

	return nil
}

// Close closes the file writer opened via WithFile, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.inner.Debug(msg, keyvals...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.inner.Info(msg, keyvals...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.inner.Warn(msg, keyvals...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.inner.Error(msg, keyvals...)
}
