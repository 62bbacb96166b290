package completions

import (
	"os"
	"path/filepath"
)

const defaultBinary = "fsb"

// registry holds what the completions command needs from the rest of the CLI.
var registry struct {
	commands []CommandInfo
	exe      string
}

// RegisterCommands records the command tree for the completions command,
// along with the resolved path of the running binary.
func RegisterCommands(cmds []CommandInfo) {
	registry.commands = cmds
	registry.exe = executable()
}

func executable() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

func Commands() []CommandInfo {
	return registry.commands
}

// GetBinaryName is the base name completion scripts are registered under.
func GetBinaryName() string {
	if registry.exe == "" {
		return defaultBinary
	}
	return filepath.Base(registry.exe)
}

// GetBinaryPath is what generated scripts invoke to list candidates.
func GetBinaryPath() string {
	if registry.exe == "" {
		return defaultBinary
	}
	return registry.exe
}
