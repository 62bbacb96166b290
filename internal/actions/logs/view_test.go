package logs

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/usage"
)

const sampleLog = `[2024-01-15 10:30:45] DEBUG: [server] accepted 127.0.0.1:51000
[2024-01-15 10:30:46] INFO: [server.session] alice logged in
[2024-01-15 10:30:47] WARN: [server.session] unknown client type "tty"
stray line
[2024-01-15 10:30:48] ERROR: [server] accept: too many open files
`

// fileDeps points the commands at path inside a temp dir, writing content
// there unless it is nil.
func fileDeps(t *testing.T, content []byte) (Deps, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fsb.log")
	if content != nil {
		require.NoError(t, os.WriteFile(path, content, 0600))
	}

	out := &bytes.Buffer{}
	deps := DefaultDeps()
	deps.LogFilePath = func() string { return path }
	deps.Out = out
	return deps, out
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func flags(raw ...string) *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(raw)
}

func TestView(t *testing.T) {
	deps, out := fileDeps(t, []byte(sampleLog))

	require.NoError(t, view(nil, flags(), deps))

	lines := outputLines(out)
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "accepted 127.0.0.1")
	require.Equal(t, "stray line", lines[3])
}

func TestView_Limit(t *testing.T) {
	deps, out := fileDeps(t, []byte(sampleLog))

	require.NoError(t, view(nil, flags("--limit=2"), deps))

	lines := outputLines(out)
	require.Equal(t, "stray line", lines[0])
	require.Contains(t, lines[1], "too many open files")
}

func TestView_NonPositiveLimitUsesDefault(t *testing.T) {
	var b strings.Builder
	for i := range 60 {
		b.WriteString("[2024-01-15 10:30:45] INFO: line ")
		b.WriteString(strings.Repeat("x", i))
		b.WriteString("\n")
	}
	deps, out := fileDeps(t, []byte(b.String()))

	require.NoError(t, view(nil, flags("--limit=-5"), deps))
	require.Len(t, outputLines(out), defaultLogLimit)
}

func TestView_InvalidLimit(t *testing.T) {
	deps, _ := fileDeps(t, []byte(sampleLog))

	var ue *usage.Error
	require.ErrorAs(t, view(nil, flags("--limit=lots"), deps), &ue)
	require.Equal(t, usage.ErrInvalidFlag, ue.Kind)
}

func TestView_LevelFilter(t *testing.T) {
	deps, out := fileDeps(t, []byte(sampleLog))

	require.NoError(t, view(nil, flags("--level=warn"), deps))

	lines := outputLines(out)
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "unknown client type")
	require.Equal(t, "stray line", lines[1])
	require.Contains(t, lines[2], "too many open files")
}

func TestView_NoLog(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		flags   []string
		want    string
	}{
		{"missing", nil, nil, "No log file found at "},
		{"missing json", nil, []string{"--json"}, "[]\n"},
		{"empty", []byte{}, nil, "Log file is empty\n"},
		{"empty json", []byte{}, []string{"--json"}, "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, out := fileDeps(t, tt.content)
			require.NoError(t, view(nil, flags(tt.flags...), deps))
			require.Contains(t, out.String(), tt.want)
		})
	}
}

func TestView_ReadError(t *testing.T) {
	deps, _ := fileDeps(t, nil)
	deps.ReadFile = func(string) ([]byte, error) { return nil, errors.New("permission denied") }

	require.EqualError(t, view(nil, flags(), deps), "read log file: permission denied")
}

func TestView_JSON(t *testing.T) {
	deps, out := fileDeps(t, []byte(sampleLog))

	require.NoError(t, view(nil, flags("--json", "--limit=2"), deps))

	var entries []entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Equal(t, []entry{
		{Message: "stray line", Raw: "stray line"},
		{Timestamp: "2024-01-15 10:30:48", Level: "ERROR", Component: "server", Message: "accept: too many open files"},
	}, entries)
}

func TestClear(t *testing.T) {
	deps, out := fileDeps(t, []byte(sampleLog))

	require.NoError(t, clear(nil, flags(), deps))

	data, err := os.ReadFile(deps.LogFilePath())
	require.NoError(t, err)
	require.Empty(t, data)
	require.Contains(t, out.String(), "Log file cleared")
}

func TestClear_CreatesMissingFile(t *testing.T) {
	deps, _ := fileDeps(t, nil)

	require.NoError(t, clear(nil, flags(), deps))
	require.FileExists(t, deps.LogFilePath())
}

func TestClear_Error(t *testing.T) {
	deps, _ := fileDeps(t, nil)
	deps.Truncate = func(string) error { return errors.New("read-only file system") }

	require.EqualError(t, clear(nil, flags(), deps), "clear log file: read-only file system")
}
