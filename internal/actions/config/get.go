package config

import (
	"fmt"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/usage"
)

// Get prints the effective value of a key: the file's if set, else the
// default.
func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	key, err := keyArg(args)
	if err != nil {
		return err
	}
	value, ok := deps.Get(key)
	if !ok {
		return usage.InvalidConfigKey(key)
	}
	_, err = fmt.Fprintln(deps.Out, value)
	return err
}

// keyArg returns the first argument if it names a known key.
func keyArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", usage.MissingArgument("key")
	}
	if !domain.IsValidConfigKey(args[0]) {
		return "", usage.InvalidConfigKey(args[0])
	}
	return args[0], nil
}
