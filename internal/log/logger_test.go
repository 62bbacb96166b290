package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info %s", "message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	logContent := readLog(t, logPath)
	for _, want := range []string{
		"DEBUG: debug message",
		"INFO: info message",
		"WARN: warning message",
		"ERROR: error message",
	} {
		if !strings.Contains(logContent, want) {
			t.Errorf("%q not found in log:\n%s", want, logContent)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelWarn)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	logContent := readLog(t, logPath)
	if strings.Contains(logContent, "DEBUG") || strings.Contains(logContent, "INFO") {
		t.Errorf("Debug and info should have been filtered:\n%s", logContent)
	}
	if !strings.Contains(logContent, "WARN: warning message") {
		t.Error("Warning message should be present")
	}
	if !strings.Contains(logContent, "ERROR: error message") {
		t.Error("Error message should be present")
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Log file permissions = %o, want %o", info.Mode().Perm(), 0600)
	}
}

func TestLogger_DirectoryPermissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(filepath.Join(logDir, "test.log"), LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logDir)
	if err != nil {
		t.Fatalf("Failed to stat log directory: %v", err)
	}
	if expected := os.FileMode(0700) | os.ModeDir; info.Mode() != expected {
		t.Errorf("Log directory permissions = %o, want %o", info.Mode(), expected)
	}
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	for _, msg := range []string{"first message", "second message"} {
		logger, err := New(logPath, LevelInfo)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		logger.Info("%s", msg)
		_ = logger.Close()
	}

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "first message") || !strings.Contains(logContent, "second message") {
		t.Errorf("Both messages should be present:\n%s", logContent)
	}
}

func TestLogger_Named(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Named("server").Named("session").Info("joined")
	logger.Info("plain")
	_ = logger.Close()

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "INFO: [server.session] joined") {
		t.Errorf("Named line not found:\n%s", logContent)
	}
	if !strings.Contains(logContent, "INFO: plain") {
		t.Errorf("Plain line not found:\n%s", logContent)
	}
}

func TestLogger_WithConsole(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	var console bytes.Buffer
	logger.WithConsole(&console).Named("hub").Warn("slow client %d", 3)

	if !strings.Contains(console.String(), "WARN: [hub] slow client 3") {
		t.Errorf("Console output = %q", console.String())
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, LevelDebug)

	logger.Debug("hello")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on console logger should return nil, got %v", err)
	}
	if !strings.HasSuffix(buf.String(), "DEBUG: hello\n") {
		t.Errorf("Console output = %q", buf.String())
	}
}

func TestLogger_Disabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Named("child").Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")
	_ = logger.Close()

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "enabled message") {
		t.Error("First message not found")
	}
	if strings.Contains(logContent, "disabled message") {
		t.Error("Disabled message should not be present")
	}
	if !strings.Contains(logContent, "enabled again") {
		t.Error("Third message not found")
	}
}

func TestLogger_Writer(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	_, _ = logger.Writer(LevelInfo).Write([]byte("message from writer\n"))
	_ = logger.Close()

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "INFO: message from writer\n") {
		t.Errorf("Writer message not found in log:\n%q", logContent)
	}
	if strings.Contains(logContent, "writer\n\n") {
		t.Error("Writer should not double the trailing newline")
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger

	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger should return nil, got %v", err)
	}
	logger.SetEnabled(true)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	if logger.Named("x") != nil {
		t.Error("Named() on nil logger should return nil")
	}
}

func TestGlobalLogger_NilDefault(t *testing.T) {
	saved := GetLogger()
	SetDefault(nil)
	defer SetDefault(saved)

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	if err := Close(); err != nil {
		t.Errorf("Close() with nil default should return nil, got %v", err)
	}
	if GetLogger() != nil {
		t.Error("GetLogger() should return nil")
	}
}

func TestGlobalLogger_WithLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	saved := GetLogger()
	SetDefault(logger)
	defer SetDefault(saved)

	Debug("debug message")
	Info("info message")

	if GetLogger() != logger {
		t.Error("GetLogger() should return the default logger")
	}
	if err := Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "debug message") || !strings.Contains(logContent, "info message") {
		t.Errorf("Global messages not found:\n%s", logContent)
	}
}

func TestNew_MkdirAllError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(filePath, nil, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	_, err := New(filepath.Join(filePath, "subdir", "test.log"), LevelInfo)
	if err == nil {
		t.Fatal("New() should fail when path contains a file as directory")
	}
	if !strings.Contains(err.Error(), "create log directory") {
		t.Errorf("Error should mention directory creation, got: %v", err)
	}
}

func TestNew_PathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir, LevelInfo)
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Errorf("New() on a directory should fail, got: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}

	nop.Debug("test %s", "debug")
	nop.Info("test %s", "info")
	nop.Warn("test %s", "warn")
	nop.Error("test %s", "error")

	if err := nop.Close(); err != nil {
		t.Errorf("NopLogger.Close() should return nil, got %v", err)
	}
}
