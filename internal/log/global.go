package log

import "sync"

var (
	std   *Logger
	stdMu sync.RWMutex
	once  sync.Once
)

// Init opens logPath and installs it as the package logger. Only the
// first call has any effect.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		if l, err = New(logPath, minLevel); err == nil {
			SetDefault(l)
		}
	})
	return err
}

// SetDefault replaces the package logger.
func SetDefault(l *Logger) {
	stdMu.Lock()
	std = l
	stdMu.Unlock()
}

// GetLogger returns the package logger, nil until Init succeeds.
func GetLogger() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// A nil *Logger drops everything, so these are safe before Init.

func Debug(format string, args ...any) { GetLogger().Debug(format, args...) }
func Info(format string, args ...any)  { GetLogger().Info(format, args...) }
func Warn(format string, args ...any)  { GetLogger().Warn(format, args...) }
func Error(format string, args ...any) { GetLogger().Error(format, args...) }

func Close() error { return GetLogger().Close() }
