package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// setupTempHome creates a temporary HOME directory for testing
func setupTempHome(t *testing.T) string {
	t.Helper()
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	return tempHome
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name         string
		setupContent string
		wantLines    []string
	}{
		{
			name:         "single line",
			setupContent: "key=value\n",
			wantLines:    []string{"key=value"},
		},
		{
			name:         "multiple lines",
			setupContent: "key1=value1\nkey2=value2\nkey3=value3\n",
			wantLines:    []string{"key1=value1", "key2=value2", "key3=value3"},
		},
		{
			name:         "lines with comments",
			setupContent: "# Comment\nkey=value\n",
			wantLines:    []string{"# Comment", "key=value"},
		},
		{
			name:         "Windows CRLF line endings",
			setupContent: "key1=value1\r\nkey2=value2\r\n",
			wantLines:    []string{"key1=value1", "key2=value2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)
			configPath := filepath.Join(tempHome, ".fsbrc")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.setupContent), 0644))

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			// Permissions are tightened on read
			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_InitializesDefaults(t *testing.T) {
	tempHome := setupTempHome(t)
	configPath := filepath.Join(tempHome, ".fsbrc")

	_, err := os.Stat(configPath)
	require.True(t, os.IsNotExist(err))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, "# fsb configuration", lines[0])
	require.Contains(t, lines, "server_addr=localhost:7777")
	require.Contains(t, lines, "listen_addr=:7777")
	require.Contains(t, lines, "# color_error=")
	require.Contains(t, lines, "# [Server]")
	require.Less(t, indexOf(lines, "# [Connection]"), indexOf(lines, "server_addr=localhost:7777"))
	require.Less(t, indexOf(lines, "server_addr=localhost:7777"), indexOf(lines, "# [Server]"))

	// Defaults were persisted
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, strings.Join(lines, "\n")+"\n", string(content))

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "info", cfg["log_level"])
}

func indexOf(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}

func TestReadLines_EmptyFileGetsDefaults(t *testing.T) {
	tempHome := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempHome, ".fsbrc"), nil, 0600))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, "# fsb configuration", lines[0])
}

func TestWriteLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty lines", lines: []string{}},
		{name: "single line", lines: []string{"key=value"}},
		{name: "lines with comments", lines: []string{"# Comment", "key=value", "# Another comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)

			require.NoError(t, WriteLines(tt.lines))

			configPath := filepath.Join(tempHome, ".fsbrc")
			content, err := os.ReadFile(configPath)
			require.NoError(t, err)

			expected := ""
			for _, line := range tt.lines {
				expected += line + "\n"
			}
			require.Equal(t, expected, string(content))

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())

			// No temp files left behind
			matches, err := filepath.Glob(filepath.Join(tempHome, ".fsbrc.tmp.*"))
			require.NoError(t, err)
			require.Empty(t, matches)
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "theme",
			value:        "neon",
			wantLines:    []string{"theme=neon"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"theme=default", "log_level=info"},
			key:          "theme",
			value:        "ocean",
			wantLines:    []string{"theme=ocean", "log_level=info"},
			wantUpdated:  true,
		},
		{
			name:         "preserves inline comment",
			initialLines: []string{"rate_limit=5 # per second"},
			key:          "rate_limit",
			value:        "2",
			wantLines:    []string{"rate_limit=2 # per second"},
			wantUpdated:  true,
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Comment", "", "key1=value1"},
			key:          "key2",
			value:        "value2",
			wantLines:    []string{"# Comment", "", "key1=value1", "key2=value2"},
		},
		{
			name:         "fills optional key placeholder",
			initialLines: []string{"theme=default", "# color_error=", "log_level=info"},
			key:          "color_error",
			value:        "196",
			wantLines:    []string{"theme=default", "color_error=196", "log_level=info"},
		},
		{
			name:         "other comments are not placeholders",
			initialLines: []string{"# color_error is red by default"},
			key:          "color_error",
			value:        "196",
			wantLines:    []string{"# color_error is red by default", "color_error=196"},
		},
		{
			name:         "quotes value with padding",
			initialLines: []string{},
			key:          "server_addr",
			value:        " padded ",
			wantLines:    []string{`server_addr=" padded "`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		wantLines    []string
		wantRemoved  bool
	}{
		{
			name:         "remove from empty",
			initialLines: []string{},
			key:          "key",
			wantLines:    []string{},
		},
		{
			name:         "remove existing key",
			initialLines: []string{"key1=value1", "key2=value2"},
			key:          "key1",
			wantLines:    []string{"key2=value2"},
			wantRemoved:  true,
		},
		{
			name:         "remove non-existent key",
			initialLines: []string{"key1=value1"},
			key:          "key2",
			wantLines:    []string{"key1=value1"},
		},
		{
			name:         "keeps placeholder",
			initialLines: []string{"# color_error=", "color_error=196"},
			key:          "color_error",
			wantLines:    []string{"# color_error="},
			wantRemoved:  true,
		},
		{
			name:         "handles whitespace in line",
			initialLines: []string{"  key1  =  value1  "},
			key:          "key1",
			wantLines:    []string{},
			wantRemoved:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Unset(tt.initialLines, tt.key)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestProvider(t *testing.T) {
	tempHome := setupTempHome(t)
	require.NoError(t, WriteLines([]string{"# mine", "theme=mono"}))

	p := NewProvider()

	value, ok := p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "mono", value)

	require.NoError(t, p.Set("server_addr", "chat.example.com:7777"))
	value, ok = p.Get("server_addr")
	require.True(t, ok)
	require.Equal(t, "chat.example.com:7777", value)

	require.NoError(t, p.Unset("theme"))
	value, ok = p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "default", value)

	// Unsetting a missing key is not an error
	require.NoError(t, p.Unset("theme"))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, []string{"# mine", "server_addr=chat.example.com:7777"}, lines)

	// The lock file is released
	_, err = os.Stat(filepath.Join(tempHome, ".fsbrc.lock"))
	require.True(t, os.IsNotExist(err))
}

func shortenLockTiming(t *testing.T) {
	t.Helper()
	saved := lockTiming
	lockTiming.timeout = 100 * time.Millisecond
	lockTiming.poll = 10 * time.Millisecond
	t.Cleanup(func() { lockTiming = saved })
}

func TestWithLock_Timeout(t *testing.T) {
	tempHome := setupTempHome(t)
	shortenLockTiming(t)
	lockPath := filepath.Join(tempHome, ".fsbrc.lock")
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))

	called := false
	err := WithLock(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrLockTimeout)
	require.False(t, called)
}

func TestWithLock_BreaksStaleLock(t *testing.T) {
	tempHome := setupTempHome(t)
	shortenLockTiming(t)
	lockPath := filepath.Join(tempHome, ".fsbrc.lock")
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	called := false
	err := WithLock(func() error {
		data, err := os.ReadFile(lockPath)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(data))
		called = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)

	_, err = os.Stat(lockPath)
	require.True(t, os.IsNotExist(err))
}

func TestWithLock_ReturnsFnError(t *testing.T) {
	setupTempHome(t)

	err := WithLock(func() error { return ErrLockTimeout })
	require.ErrorIs(t, err, ErrLockTimeout)
}

func TestEdit(t *testing.T) {
	setupTempHome(t)
	require.NoError(t, WriteLines([]string{"theme=mono"}))

	require.NoError(t, Edit(func(lines []string) ([]string, error) {
		require.Equal(t, []string{"theme=mono"}, lines)
		return append(lines, "log_level=debug"), nil
	}))
	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, []string{"theme=mono", "log_level=debug"}, lines)

	// nil result and errors leave the file as it was
	require.NoError(t, Edit(func([]string) ([]string, error) { return nil, nil }))
	require.EqualError(t, Edit(func([]string) ([]string, error) {
		return []string{}, fmt.Errorf("no")
	}), "no")

	lines, err = ReadLines()
	require.NoError(t, err)
	require.Equal(t, []string{"theme=mono", "log_level=debug"}, lines)
}
