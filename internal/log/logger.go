package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/fsbteam/chat/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Rotation limits for the log file
const (
	maxSizeMB  = 16
	maxBackups = 3
	maxAgeDays = 28
)

// sink is shared by a logger and every logger derived from it with Named.
type sink struct {
	mu      sync.Mutex
	file    io.WriteCloser
	console io.Writer
	enabled bool
}

func (s *sink) write(level Level, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	if s.file != nil {
		if _, err := io.WriteString(s.file, line); err != nil && level >= LevelError {
			fmt.Fprintf(os.Stderr, "fsb: log write failed: %v: %s", err, line)
		}
	}
	if s.console != nil {
		_, _ = io.WriteString(s.console, line)
	}
}

// Logger writes levelled lines to a rotated file, and optionally to a
// console writer. Safe for concurrent use. A nil *Logger discards.
type Logger struct {
	sink     *sink
	name     string
	minLevel Level
}

// New creates a logger appending to logPath, rotated by size.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := tightenMode(logPath); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return &Logger{sink: &sink{file: file, enabled: true}, minLevel: minLevel}, nil
}

// tightenMode makes an existing log file owner-only before appending.
func tightenMode(path string) error {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return nil
	case info.IsDir():
		return fmt.Errorf("open log file: %s is a directory", path)
	case info.Mode().Perm() == 0600:
		return nil
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("chmod log file: %w", err)
	}
	return nil
}

// NewConsole creates a logger that only writes to w.
func NewConsole(w io.Writer, minLevel Level) *Logger {
	return &Logger{sink: &sink{console: w, enabled: true}, minLevel: minLevel}
}

// Named returns a logger sharing l's outputs whose lines carry name.
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Logger{sink: l.sink, name: name, minLevel: l.minLevel}
}

// WithConsole tees every line to w as well.
func (l *Logger) WithConsole(w io.Writer) *Logger {
	if l == nil {
		return nil
	}
	l.sink.mu.Lock()
	l.sink.console = w
	l.sink.mu.Unlock()
	return l
}

func (l *Logger) Close() error {
	if l == nil || l.sink.file == nil {
		return nil
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.file.Close()
}

// SetEnabled turns logging on or off for l and every logger sharing its outputs.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.sink.mu.Lock()
	l.sink.enabled = enabled
	l.sink.mu.Unlock()
}

func (l *Logger) format(level Level, msg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: ", time.Now().Format(timeLayout), level)
	if l.name != "" {
		fmt.Fprintf(&b, "[%s] ", l.name)
	}
	b.WriteString(msg)
	b.WriteByte('\n')
	return b.String()
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}
	l.sink.write(level, l.format(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return lineWriter{l, level}
}

type lineWriter struct {
	l     *Logger
	level Level
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.l.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NopLogger discards everything. Used when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) Close() error         { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
