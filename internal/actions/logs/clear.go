package logs

import (
	"fmt"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
)

// Clear empties the log file, creating it if it does not exist.
func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clear(args, flags, DefaultDeps())
}

func clear(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if err := deps.Truncate(deps.LogFilePath()); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	_, err := fmt.Fprintln(deps.Out, style.Success("Log file cleared"))
	return err
}
