package system

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger provides file-based logging with daily rotation
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	logger *slog.Logger
	logDir string
	level  slog.Level
	json   bool
	date   string
	out    io.Writer
}

// Global logger instance
var globalLogger *Logger

// InitLogger initializes the global logger.
// level is one of debug/info/warn/error, format is text or json.
func InitLogger(logDir, level, format string) error {
	if logDir == "" {
		logDir = "./logs"
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		logDir: logDir,
		level:  ParseLevel(level),
		json:   strings.EqualFold(format, "json"),
		out:    os.Stdout,
	}
	if err := l.rotateIfNeeded(); err != nil {
		return err
	}

	globalLogger = l
	slog.SetDefault(l.current())
	return nil
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// rotateIfNeeded checks if log rotation is needed (daily)
func (l *Logger) rotateIfNeeded() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	if l.date == today && l.file != nil {
		return nil
	}

	if l.file != nil {
		l.file.Close()
	}

	logPath := filepath.Join(l.logDir, fmt.Sprintf("contacts-manager-%s.log", today))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Also write to stdout for the container/journal
	multi := io.MultiWriter(l.out, file)
	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.json {
		handler = slog.NewJSONHandler(multi, opts)
	} else {
		handler = slog.NewTextHandler(multi, opts)
	}

	l.file = file
	l.logger = slog.New(handler)
	l.date = today

	return nil
}

func (l *Logger) current() *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logger
}

// Log writes a log entry
func (l *Logger) Log(level slog.Level, format string, args ...any) {
	if l == nil {
		slog.Log(context.Background(), level, fmt.Sprintf(format, args...))
		return
	}

	_ = l.rotateIfNeeded()
	l.current().Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	globalLogger.Log(slog.LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	globalLogger.Log(slog.LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	globalLogger.Log(slog.LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	globalLogger.Log(slog.LevelError, format, args...)
}

// Close closes the logger
func Close() {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	if globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger.file = nil
	}
}
