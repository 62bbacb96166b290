package cli

import (
	"fmt"
	"strings"

	"github.com/fsbteam/chat/internal/dispatchers"
)

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	ServeFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--addr"},
			ValueHint:   "<host:port>",
			Description: "Listen on this address instead of listen_addr",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--db"},
			ValueHint:   "<path>",
			Description: "Use this database file instead of db_path",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConnectFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--addr"},
			ValueHint:   "<host:port>",
			Description: "Connect to this address instead of server_addr",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigListFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--json"},
			Description: "Output as JSON",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--install"},
			Description: "Write the script where the shell loads it",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	LogsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Show the last n lines (default 50)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--level"},
			ValueHint:   "<level>",
			Description: "Hide lines below level: debug, info, warn, error",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--json"},
			Description: "Output as JSON",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)

// localFlags maps a command path to the flags only it accepts.
var localFlags = map[string][]dispatchers.FlagDescriptor{
	"serve":        ServeFlags,
	"connect":      ConnectFlags,
	"config unset": ConfigUnsetFlags,
	"config list":  ConfigListFlags,
	"logs":         LogsFlags,
	"completions":  CompletionsFlags,
}

// FlagsFor returns the flag sets valid for the command named by words:
// the root flags plus those of the longest matching command path.
func FlagsFor(words []string) [][]dispatchers.FlagDescriptor {
	sets := [][]dispatchers.FlagDescriptor{RootFlags}
	if len(words) > 0 && words[0] == "help" {
		words = words[1:]
	}
	for n := min(len(words), 2); n > 0; n-- {
		if local, ok := localFlags[strings.Join(words[:n], " ")]; ok {
			return append(sets, local)
		}
	}
	return sets
}

// commandFlags returns the flags declared for exactly path.
func commandFlags(path []string) []dispatchers.FlagDescriptor {
	if len(path) == 0 {
		return RootFlags
	}
	return localFlags[strings.Join(path, " ")]
}

// FlagHelp renders the flags valid for words as an indented table.
func FlagHelp(words []string) string {
	var b strings.Builder
	b.WriteString("\nFlags:\n")
	for _, set := range FlagsFor(words) {
		for _, f := range set {
			fmt.Fprintf(&b, "  %-26s %s\n", f.Usage(), f.Description)
		}
	}
	return b.String()
}
