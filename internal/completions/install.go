package completions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, shell Shell, commands []CommandInfo) error {
	if len(commands) == 0 {
		return errors.New("no commands registered")
	}
	script := shell.script(commands)
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// Install writes the script where the shell loads it automatically and
// returns the file written.
func Install(shell Shell, commands []CommandInfo) (path string, err error) {
	path = shell.AutoInstallPath()
	if path == "" {
		return "", fmt.Errorf("%s does not auto-load completions; add this to %s:\n  %s",
			shell, shell.RcFile(), shell.SourceLine())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := PrintCompletions(f, shell, commands); err != nil {
		return "", err
	}
	return path, nil
}
