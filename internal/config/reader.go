package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/paths"
)

// ReadLines returns the raw lines of the config file. A missing or empty
// file is replaced by the commented default config.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		// editors may have recreated it with a wider mode
		if err := os.Chmod(configPath, 0600); err != nil {
			log.Warn("config: could not set permissions on config file: %v", err)
		}
	}

	if len(data) == 0 {
		lines := defaultLines()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
		return lines, nil
	}

	return splitLines(string(data)), nil
}

// splitLines splits file content into lines, tolerating CRLF.
func splitLines(content string) []string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// defaultLines renders every visible key with its default, one block per
// section. Optional overrides are written as "# key=" placeholders that
// Set fills in.
func defaultLines() []string {
	lines := []string{
		"# fsb configuration",
		"# Edit values below or use: fsb config set <key> <value>",
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]
		if len(keys) == 0 {
			continue
		}

		lines = append(lines, "", "# ["+section+"]")
		for _, key := range keys {
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}

			// some defaults depend on the machine
			value := key.Default
			if fn, ok := Defaults[key.Name]; ok {
				value = fn()
			}
			lines = append(lines, key.Name+"="+quoteValue(value))
		}
	}

	return lines
}
