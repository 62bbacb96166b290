package config

import (
	"maps"

	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/paths"
)

// Defaults resolves the default of every known key. Most are static;
// db_path depends on the data directory at the time it is read.
var Defaults = func() map[string]func() string {
	defaults := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		defaults[key.Name] = func() string { return value }
	}
	defaults["db_path"] = paths.DatabasePath
	return defaults
}()

// fileValues parses ~/.fsbrc. A missing, unreadable or malformed file
// yields no values, so callers fall back to the defaults.
func fileValues() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return nil
	}
	values, err := Parse(lines)
	if err != nil {
		log.Warn("config: ignoring ~/%s: %v", paths.ConfigFileName, err)
		return nil
	}
	return values
}

// Get returns the value of key from the file, else its default. The
// boolean is false only for keys that are neither set nor known.
func Get(key string) (string, bool) {
	if value, ok := fileValues()[key]; ok {
		return value, true
	}
	return defaultValue(key)
}

func defaultValue(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// GetAll merges the file over the defaults. Unknown keys in the file are
// kept. The error is always nil; it is kept for domain.ConfigProvider.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		result[key] = fn()
	}
	maps.Copy(result, fileValues())
	return result, nil
}
