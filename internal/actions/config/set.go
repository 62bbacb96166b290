package config

import (
	"fmt"

	"github.com/fsbteam/chat/internal/config"
	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/ui/style"
	"github.com/fsbteam/chat/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	key, err := keyArg(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return usage.MissingArgument("value")
	}
	value := args[1]

	if k, _ := domain.LookupConfigKey(key); !k.Accepts(value) {
		return usage.InvalidConfigValue(key, value, k.Hint())
	}

	var replaced bool
	err = deps.Edit(func(lines []string) ([]string, error) {
		var updated []string
		updated, replaced = config.Set(lines, key, value)
		return updated, nil
	})
	if err != nil {
		return err
	}

	verb := "added"
	if replaced {
		verb = "updated"
	}
	_, err = fmt.Fprintf(deps.Out, "%s %s=%s\n", verb, key, style.Info(value))
	return err
}
