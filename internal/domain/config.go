package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Sections group keys in ~/.fsbrc and in `fsb config list`, in this order.
const (
	SectionConnection = "Connection"
	SectionServer     = "Server"
	SectionDisplay    = "Display"
	SectionLogging    = "Logging"
	SectionColors     = "Color Overrides"
)

// ConfigKey describes one ~/.fsbrc setting.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
	Hidden      bool     // never listed
	HideIfEmpty bool     // listed only once set
	Values      []string // allowed values, any when empty
	Numeric     bool     // a non-negative integer
}

// Accepts reports whether value may be stored under k.
func (k ConfigKey) Accepts(value string) bool {
	if k.Numeric {
		n, err := strconv.Atoi(value)
		return err == nil && n >= 0
	}
	return len(k.Values) == 0 || slices.Contains(k.Values, value)
}

// Hint describes the values k accepts.
func (k ConfigKey) Hint() string {
	switch {
	case k.Numeric:
		return "a whole number"
	case len(k.Values) > 0:
		return "one of " + strings.Join(k.Values, ", ")
	}
	return "any value"
}

// ConfigKeys is every setting fsb understands, in display order.
// db_path has no static default; the config package fills it in.
var ConfigKeys = []ConfigKey{
	{Name: "server_addr", Default: "localhost:7777", Section: SectionConnection,
		Description: "Address the chat client connects to"},
	{Name: "client_type", Default: "console", Section: SectionConnection, Values: []string{"console", "gui"},
		Description: "Client type announced to the server: console, gui"},

	{Name: "listen_addr", Default: ":7777", Section: SectionServer,
		Description: "Address the chat server listens on"},
	{Name: "db_path", Section: SectionServer,
		Description: "Path to the server database"},
	{Name: "rate_limit", Default: "5", Section: SectionServer, Numeric: true,
		Description: "Chat messages per second allowed per connection"},
	{Name: "rate_burst", Default: "10", Section: SectionServer, Numeric: true,
		Description: "Chat messages allowed in a burst per connection"},
	{Name: "history_size", Default: "20", Section: SectionServer, Numeric: true,
		Description: "Messages replayed when a group is opened"},

	{Name: "theme", Default: "default", Section: SectionDisplay,
		Description: "Color theme: default, neon, aurora, mono, ocean, sunset, candy, contrast"},
	{Name: "display_time", Default: "24h", Section: SectionDisplay, Values: []string{"12h", "24h", "off"},
		Description: "Time format: 12h, 24h, off"},

	{Name: "enable_log", Default: "true", Section: SectionLogging, Values: []string{"true", "false"},
		Description: "Enable logging to file (true/false)"},
	{Name: "log_level", Default: "info", Section: SectionLogging, Values: []string{"debug", "info", "warn", "error"},
		Description: "Minimum log level: debug, info, warn, error"},

	colorOverride("success"),
	colorOverride("warning"),
	colorOverride("error"),
	colorOverride("info"),
	colorOverride("muted"),
	colorOverride("header"),
	colorOverride("self"),
	colorOverride("peer"),
	colorOverride("notice"),
}

func colorOverride(role string) ConfigKey {
	return ConfigKey{
		Name:        "color_" + role,
		Section:     SectionColors,
		Description: "Override the theme's " + role + " color (ANSI 0-255 or 'bold')",
		HideIfEmpty: true,
	}
}

var configKeyIndex = func() map[string]int {
	idx := make(map[string]int, len(ConfigKeys))
	for i, key := range ConfigKeys {
		idx[key.Name] = i
	}
	return idx
}()

// IsValidConfigKey reports whether name is a known setting.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyIndex[name]
	return ok
}

// LookupConfigKey returns the setting called name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	i, ok := configKeyIndex[name]
	if !ok {
		return ConfigKey{}, false
	}
	return ConfigKeys[i], true
}

// VisibleConfigKeys returns the keys that are not hidden.
func VisibleConfigKeys() []ConfigKey {
	visible := make([]ConfigKey, 0, len(ConfigKeys))
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the section names in display order.
func ConfigSections() []string {
	return []string{SectionConnection, SectionServer, SectionDisplay, SectionLogging, SectionColors}
}

// ConfigKeysBySection groups the visible keys by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range VisibleConfigKeys() {
		result[key.Section] = append(result[key.Section], key)
	}
	return result
}
