package config

import (
	"fmt"

	"github.com/fsbteam/chat/internal/config"
	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
	"github.com/fsbteam/chat/internal/usage"
)

// Unset removes a key from ~/.fsbrc so its default applies again.
// With --all the file is emptied.
func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags.Has("--all") {
		return unsetAll(args, deps)
	}

	key, err := keyArg(args)
	if err != nil {
		return err
	}

	var removed bool
	err = deps.Edit(func(lines []string) ([]string, error) {
		updated, ok := config.Unset(lines, key)
		removed = ok
		if !ok {
			return nil, nil
		}
		return updated, nil
	})
	if err != nil {
		return err
	}

	if !removed {
		_, err = fmt.Fprintf(deps.Out, "%s is not set, the default applies\n", key)
		return err
	}
	_, err = fmt.Fprintf(deps.Out, "unset %s\n", key)
	return err
}

func unsetAll(args []string, deps Deps) error {
	if len(args) > 0 {
		return usage.InvalidFlag("--all does not take arguments")
	}
	err := deps.Edit(func([]string) ([]string, error) { return []string{}, nil })
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(deps.Out, style.Warning("all config entries removed"))
	return err
}
