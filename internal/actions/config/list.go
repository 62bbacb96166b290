package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/ui/style"
)

// List prints every visible setting grouped by section, or a JSON array
// with --json. Color overrides only appear once set.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}
	if flags.Has("--json") {
		return writeJSON(deps.Out, values)
	}

	bySection := domain.ConfigKeysBySection()
	printed := 0
	for _, section := range domain.ConfigSections() {
		keys := shownKeys(bySection[section], values)
		if len(keys) == 0 {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(deps.Out)
		}
		printed++

		fmt.Fprintln(deps.Out, style.Header("# "+section))
		for _, key := range keys {
			fmt.Fprintf(deps.Out, "%s=%s\n", key.Name, values[key.Name])
		}
	}
	return nil
}

// shownKeys drops HideIfEmpty keys that have no value.
func shownKeys(keys []domain.ConfigKey, values map[string]string) []domain.ConfigKey {
	shown := make([]domain.ConfigKey, 0, len(keys))
	for _, key := range keys {
		if key.HideIfEmpty && values[key.Name] == "" {
			continue
		}
		shown = append(shown, key)
	}
	return shown
}

type jsonEntry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Section string `json:"section"`
}

func writeJSON(w io.Writer, values map[string]string) error {
	keys := shownKeys(domain.VisibleConfigKeys(), values)
	entries := make([]jsonEntry, len(keys))
	for i, key := range keys {
		entries[i] = jsonEntry{Key: key.Name, Value: values[key.Name], Section: key.Section}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
