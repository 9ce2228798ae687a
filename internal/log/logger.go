package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wangjing53406/navi/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger appends timestamped lines to a file. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	now      func() time.Time
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init opens logPath and installs it as the global logger.
func Init(logPath string, minLevel Level) error {
	l, err := New(logPath, minLevel)
	if err != nil {
		return err
	}
	defaultLoggerMu.Lock()
	old := defaultLogger
	defaultLogger = l
	defaultLoggerMu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// New creates a logger writing to logPath. The file and its directory are
// created with owner-only permissions.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:     file,
		minLevel: minLevel,
		now:      time.Now,
	}, nil
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s\n", l.now().Format("2006-01-02 15:04:05"), level, message)

	if _, err := l.file.WriteString(line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug writes to the global logger, if any.
func Debug(format string, args ...any) { current().Debug(format, args...) }

// Info writes to the global logger, if any.
func Info(format string, args ...any) { current().Info(format, args...) }

// Warn writes to the global logger, if any.
func Warn(format string, args ...any) { current().Warn(format, args...) }

// Error writes to the global logger, if any.
func Error(format string, args ...any) { current().Error(format, args...) }

// Close closes the global logger.
func Close() error {
	defaultLoggerMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultLoggerMu.Unlock()
	return l.Close()
}

// Default returns the global logger, or NopLogger when none is installed.
func Default() domain.Logger {
	if l := current(); l != nil {
		return l
	}
	return NopLogger{}
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
