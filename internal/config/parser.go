package config

import (
	"fmt"
	"strings"
)

// Parse turns config lines into a key/value map. Blank lines and lines
// starting with # are skipped, as is an inline " #" comment after a value.
// A value may be wrapped in double quotes. The last occurrence of a key
// wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		value = strings.TrimSpace(value)
		if last := strings.LastIndex(value, `"`); strings.HasPrefix(value, `"`) && last > 0 {
			value = value[1:last]
		} else if i := strings.Index(value, " #"); i >= 0 {
			value = strings.TrimSpace(value[:i])
		}

		cfg[key] = value
	}

	return cfg, nil
}
