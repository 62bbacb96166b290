package logs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/ui/style"
)

const defaultLogLimit = 50

// View prints the last --limit lines of the log, optionally only those at
// --level or above, as text or --json.
func View(args []string, flags *dispatchers.ParsedFlags) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	limit, err := flags.Int("--limit", defaultLogLimit)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = defaultLogLimit
	}
	asJSON := flags.Has("--json")
	path := deps.LogFilePath()

	content, err := deps.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nothing(deps.Out, asJSON, "No log file found at "+path)
	case err != nil:
		return fmt.Errorf("read log file: %w", err)
	case len(content) == 0:
		return nothing(deps.Out, asJSON, "Log file is empty")
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if floor, ok := levelFlag(flags); ok {
		lines = filterLevel(lines, floor)
	}
	lines = lines[max(len(lines)-limit, 0):]

	if asJSON {
		return writeJSON(deps.Out, lines)
	}
	for _, line := range lines {
		fmt.Fprintln(deps.Out, colorize(line))
	}
	return nil
}

func nothing(w io.Writer, asJSON bool, note string) error {
	if asJSON {
		_, err := fmt.Fprintln(w, "[]")
		return err
	}
	_, err := fmt.Fprintln(w, style.Muted(note))
	return err
}

// levelFlag reads --level. Unknown names parse as warn.
func levelFlag(flags *dispatchers.ParsedFlags) (log.Level, bool) {
	name := flags.String("--level", "")
	if name == "" {
		return log.LevelDebug, false
	}
	return log.ParseLevel(name), true
}

func filterLevel(lines []string, floor log.Level) []string {
	kept := lines[:0:0]
	for _, line := range lines {
		if parseEntry(line).passes(floor) {
			kept = append(kept, line)
		}
	}
	return kept
}

func writeJSON(w io.Writer, lines []string) error {
	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			entries = append(entries, parseEntry(line))
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
