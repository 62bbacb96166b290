package config

import "strings"

// entry is a key=value line split into its parts. comment keeps an inline
// "# ..." suffix, including the hash.
type entry struct {
	key     string
	comment string
}

// parseEntry splits an active key=value line. Comments, blank lines and
// lines without "=" are not entries.
func parseEntry(line string) (entry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return entry{}, false
	}
	key, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		return entry{}, false
	}

	e := entry{key: strings.TrimSpace(key)}
	if i := strings.Index(value, " #"); i >= 0 {
		e.comment = strings.TrimSpace(value[i:])
	}
	return e, true
}

// isPlaceholder reports whether line is the commented-out "# key=" that
// the default config writes for optional keys.
func isPlaceholder(line, key string) bool {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, "#")
	return ok && strings.TrimSpace(rest) == key+"="
}

// quoteValue wraps values that would not survive Parse unquoted.
func quoteValue(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " #") {
		return `"` + value + `"`
	}
	return value
}

// Set writes key=value into lines. An existing entry keeps its position
// and inline comment and reports true. Otherwise the optional-key
// placeholder is filled in, or the entry is appended.
func Set(lines []string, key, value string) ([]string, bool) {
	assignment := key + "=" + quoteValue(value)

	for i, line := range lines {
		if e, ok := parseEntry(line); ok && e.key == key {
			if e.comment != "" {
				assignment += " " + e.comment
			}
			lines[i] = assignment
			return lines, true
		}
	}

	for i, line := range lines {
		if isPlaceholder(line, key) {
			lines[i] = assignment
			return lines, false
		}
	}

	return append(lines, assignment), false
}

// Unset drops every entry for key and reports whether one was found.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if e, ok := parseEntry(line); ok && e.key == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
