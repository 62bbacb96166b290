// Package style provides semantic terminal styling using lipgloss.
//
// Text is styled by what it means (Success, Error, Self, Peer...) rather
// than how it looks. The colors come from a theme plus config overrides.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role is the meaning a piece of text carries.
type Role int

const (
	RoleSuccess Role = iota
	RoleWarning
	RoleError
	RoleInfo
	RoleMuted
	RoleHeader
	RoleSelf   // own chat lines
	RolePeer   // other members' chat lines
	RoleNotice // server notices and confirmation prompts
	roleCount
)

// byRole orders the configured colors by Role.
func (c ColorConfig) byRole() [roleCount]string {
	return [roleCount]string{
		RoleSuccess: c.Success,
		RoleWarning: c.Warning,
		RoleError:   c.Error,
		RoleInfo:    c.Info,
		RoleMuted:   c.Muted,
		RoleHeader:  c.Header,
		RoleSelf:    c.Self,
		RolePeer:    c.Peer,
		RoleNotice:  c.Notice,
	}
}

// Palette renders text by role. A disabled palette returns text unchanged.
type Palette struct {
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
}

// NewPalette builds the styles for colors. Each color is "bold" or an
// ANSI 256 color number.
func NewPalette(enabled bool, colors ColorConfig) *Palette {
	p := &Palette{enabled: enabled, colors: colors}
	if enabled {
		for role, value := range colors.byRole() {
			p.styles[role] = makeStyle(value)
		}
	}
	return p
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled reports whether p emits ANSI codes.
func (p *Palette) Enabled() bool {
	return p != nil && p.enabled
}

// Colors returns the configuration p was built from.
func (p *Palette) Colors() ColorConfig {
	if p == nil {
		return ColorConfig{}
	}
	return p.colors
}

// Render styles text for role.
func (p *Palette) Render(role Role, text string) string {
	if !p.Enabled() || role < 0 || role >= roleCount {
		return text
	}
	return p.styles[role].Render(text)
}

// plain is the palette used until Init enables styling.
var plain = NewPalette(false, ColorConfig{})

var current = plain

// Init sets the palette behind the package-level helpers. NO_COLOR and
// FSB_NO_COLOR (any non-empty value) disable styling regardless of enable.
//
// The cfg parameter selects the theme and per-color overrides; nil means
// the default theme.
//
// This function should be called once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if !enable || noColorEnv() {
		current = plain
		return
	}

	// Force ANSI256 regardless of TTY detection; the caller already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)
	current = NewPalette(true, LoadColorConfig(cfg))
}

func noColorEnv() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("FSB_NO_COLOR") != ""
}

// Current returns the palette set by Init.
func Current() *Palette {
	return current
}

// GetColors returns the current color configuration, empty when styling
// is disabled.
func GetColors() ColorConfig {
	return current.Colors()
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return current.Enabled()
}

// Success styles text for successful operations.
func Success(text string) string { return current.Render(RoleSuccess, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return current.Render(RoleWarning, text) }

// Error styles text for error messages.
func Error(text string) string { return current.Render(RoleError, text) }

// Info styles text for informational messages.
func Info(text string) string { return current.Render(RoleInfo, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return current.Render(RoleHeader, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return current.Render(RoleMuted, text) }

// Self styles the user's own chat lines.
func Self(text string) string { return current.Render(RoleSelf, text) }

// Peer styles chat lines sent by other members.
func Peer(text string) string { return current.Render(RolePeer, text) }

// Notice styles server notices and confirmation prompts.
func Notice(text string) string { return current.Render(RoleNotice, text) }
