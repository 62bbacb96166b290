package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Self    string // own chat lines
	Peer    string // other members' chat lines
	Notice  string // server notices and confirmation prompts
}

// field returns the color for a role name as used in color_<role> keys.
func (c *ColorConfig) field(role string) *string {
	switch role {
	case "success":
		return &c.Success
	case "warning":
		return &c.Warning
	case "error":
		return &c.Error
	case "info":
		return &c.Info
	case "muted":
		return &c.Muted
	case "header":
		return &c.Header
	case "self":
		return &c.Self
	case "peer":
		return &c.Peer
	case "notice":
		return &c.Notice
	}
	return nil
}

var overridableRoles = []string{"success", "warning", "error", "info", "muted", "header", "self", "peer", "notice"}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "neon", "aurora", "mono", "ocean", "sunset", "candy", "contrast"}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = func() []string {
	names := make([]string, 0, 2*len(BaseThemeNames))
	for _, base := range BaseThemeNames {
		names = append(names, base+"-dark", base+"-light")
	}
	return names
}()

// palette builds a theme; headers are bold in every theme.
func palette(success, warning, errorColor, info, muted, self, peer, notice string) ColorConfig {
	return ColorConfig{
		Success: success,
		Warning: warning,
		Error:   errorColor,
		Info:    info,
		Muted:   muted,
		Header:  "bold",
		Self:    self,
		Peer:    peer,
		Notice:  notice,
	}
}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants use dark ones.
//
//	                          success warn  error info  muted self  peer  notice
var Themes = map[string]ColorConfig{
	"default-dark":   palette("10", "11", "9", "14", "245", "10", "13", "12"),
	"default-light":  palette("28", "130", "124", "27", "243", "28", "90", "27"),
	"neon-dark":      palette("48", "220", "197", "51", "244", "46", "201", "39"),
	"neon-light":     palette("29", "166", "161", "32", "245", "28", "127", "26"),
	"aurora-dark":    palette("121", "222", "204", "147", "246", "121", "183", "111"),
	"aurora-light":   palette("30", "136", "125", "62", "244", "30", "133", "61"),
	"mono-dark":      palette("50", "229", "210", "50", "245", "50", "251", "248"),
	"mono-light":     palette("30", "136", "124", "30", "244", "30", "241", "244"),
	"ocean-dark":     palette("43", "221", "174", "75", "245", "43", "105", "75"),
	"ocean-light":    palette("30", "130", "124", "25", "244", "30", "61", "25"),
	"sunset-dark":    palette("216", "221", "204", "183", "245", "216", "213", "183"),
	"sunset-light":   palette("166", "136", "125", "90", "244", "166", "127", "90"),
	"candy-dark":     palette("158", "222", "211", "153", "250", "158", "218", "153"),
	"candy-light":    palette("36", "172", "168", "68", "244", "36", "132", "68"),
	"contrast-dark":  palette("46", "226", "196", "51", "250", "46", "201", "21"),
	"contrast-light": palette("22", "130", "124", "21", "240", "22", "90", "19"),
}

// IsDarkBackground reports whether the terminal background is dark.
// termenv assumes dark when it cannot tell.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name,
// depending on the terminal background. Full names are returned as-is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme named by FSB_THEME or cfg["theme"]
// (default-dark when unknown) and applies color_<role> overrides.
// FSB_COLOR_<ROLE> in the environment wins over the config file.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := cfg["theme"]
	if env := os.Getenv("FSB_THEME"); env != "" {
		name = env
	}
	if name == "" {
		name = "default"
	}

	colors, ok := Themes[ResolveThemeName(name)]
	if !ok {
		colors = Themes["default-dark"]
	}

	for _, role := range overridableRoles {
		key := "color_" + role
		value := os.Getenv("FSB_" + strings.ToUpper(key))
		if value == "" {
			value = cfg[key]
		}
		if value != "" {
			*colors.field(role) = value
		}
	}
	return colors
}
