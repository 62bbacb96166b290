package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// Shell names a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

type shellSupport struct {
	generate func([]CommandInfo) string
	rcFile   string
	// source is a format string taking the binary path.
	source string
	// autoload returns the per-user directory the shell loads completions
	// from, or "" when there is none.
	autoload func(home string) string
}

var support = map[Shell]shellSupport{
	ShellBash: {
		generate: GenerateBash,
		rcFile:   "~/.bashrc",
		source:   `eval "$(%s completions bash --script)"`,
		autoload: func(home string) string {
			if !IsBashCompletionInstalled() {
				return ""
			}
			return filepath.Join(home, ".local", "share", "bash-completion", "completions")
		},
	},
	ShellZsh: {
		generate: GenerateZsh,
		rcFile:   "~/.zshrc",
		source:   `eval "$(%s completions zsh --script)"`,
		autoload: func(string) string { return "" },
	},
	ShellFish: {
		generate: GenerateFish,
		rcFile:   "~/.config/fish/config.fish",
		source:   `%s completions fish --script | source`,
		autoload: func(home string) string {
			return filepath.Join(home, ".config", "fish", "completions")
		},
	},
}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	if _, ok := support[Shell(name)]; !ok {
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", name)
	}
	return Shell(name), nil
}

// DetectShell guesses the user's shell from $SHELL.
func DetectShell() (Shell, error) {
	env := os.Getenv("SHELL")
	if env == "" {
		return "", fmt.Errorf("cannot detect shell: SHELL is not set")
	}
	return ParseShell(filepath.Base(env))
}

// RcFile is the startup file the source line goes into.
func (s Shell) RcFile() string {
	return support[s].rcFile
}

// SourceLine loads the completions from the running binary.
func (s Shell) SourceLine() string {
	format := support[s].source
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, GetBinaryPath())
}

// AutoInstallPath is the file the shell loads completions from without any
// rc file change, or "" if the shell has no such place.
func (s Shell) AutoInstallPath() string {
	sup, ok := support[s]
	if !ok {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := sup.autoload(home)
	if dir == "" {
		return ""
	}
	name := GetBinaryName()
	if s == ShellFish {
		name += ".fish"
	}
	return filepath.Join(dir, name)
}

func (s Shell) script(commands []CommandInfo) string {
	if sup, ok := support[s]; ok {
		return sup.generate(commands)
	}
	return ""
}

var bashCompletionScripts = []string{
	"/usr/share/bash-completion/bash_completion",
	"/etc/bash_completion",
	"/usr/local/etc/profile.d/bash_completion.sh",
	"/opt/homebrew/etc/profile.d/bash_completion.sh",
}

// IsBashCompletionInstalled reports whether the bash-completion package,
// which loads per-user completion files, is present.
func IsBashCompletionInstalled() bool {
	for _, p := range bashCompletionScripts {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
