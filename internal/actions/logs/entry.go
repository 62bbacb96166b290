package logs

import (
	"regexp"

	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/ui/style"
)

// linePattern matches what internal/log writes:
//
//	[2025-01-29 10:30:45] INFO: [server.session] alice logged in
var linePattern = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(?:\[([^\]]+)\]\s*)?(.*)$`)

// entry is one parsed log line. Lines in another format (panics, stack
// traces) keep their text in Raw and have no Level.
type entry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
	Raw       string `json:"raw,omitempty"`
}

func parseEntry(line string) entry {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return entry{Message: line, Raw: line}
	}
	return entry{Timestamp: m[1], Level: m[2], Component: m[3], Message: m[4]}
}

// passes reports whether the entry is at or above floor. Unparsed lines
// always pass so that multi-line output is not torn apart.
func (e entry) passes(floor log.Level) bool {
	return e.Level == "" || log.ParseLevel(e.Level) >= floor
}

var levelStyles = map[string]func(string) string{
	"ERROR": style.Error,
	"WARN":  style.Warning,
	"INFO":  style.Info,
	"DEBUG": style.Muted,
}

// colorize styles a whole line by its level.
func colorize(line string) string {
	if paint, ok := levelStyles[parseEntry(line).Level]; ok {
		return paint(line)
	}
	return line
}
