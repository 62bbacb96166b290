// Package splitpanel lays out the chat screen: a conversation pane and a
// narrow status sidebar, each boxed with a scrollbar.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fsbteam/chat/internal/ui/style"
)

// chrome is the columns a pane spends on its border, padding and scrollbar.
const chrome = 6

const ellipsis = "..."

// Panel is the content of one side of the split.
type Panel struct {
	Lines      []string // visible lines, already scrolled
	ScrollPos  int      // index of the first visible line
	TotalItems int      // total scrollable lines, 0 means len(Lines)
}

func (p Panel) total() int {
	if p.TotalItems == 0 {
		return len(p.Lines)
	}
	return p.TotalItems
}

// Config sizes the sidebar as a share of the terminal width, clamped.
type Config struct {
	SidebarWidthPercent float64
	SidebarMinWidth     int
	SidebarMaxWidth     int
}

var DefaultConfig = Config{
	SidebarWidthPercent: 0.25,
	SidebarMinWidth:     18,
	SidebarMaxWidth:     32,
}

// Layout is the split for one terminal width.
type Layout struct {
	Width        int
	SidebarWidth int
	ContentWidth int

	active, dim lipgloss.Color
}

// NewLayout computes the split. The sidebar is dropped entirely when the
// conversation pane would be left narrower than two minimum sidebars.
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	side := int(float64(width) * cfg.SidebarWidthPercent)
	side = min(max(side, cfg.SidebarMinWidth), cfg.SidebarMaxWidth)
	if width-side < 2*cfg.SidebarMinWidth {
		side = 0
	}
	return &Layout{
		Width:        width,
		SidebarWidth: side,
		ContentWidth: width - side,
		active:       colorOr(colors.Info, "14"),
		dim:          colorOr(colors.Muted, "245"),
	}
}

func colorOr(value, fallback string) lipgloss.Color {
	if value == "" || value == "bold" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(value)
}

// Render draws the conversation on the left and the sidebar on the right,
// both height rows tall. Only the conversation pane is drawn as focused.
func (l *Layout) Render(content, sidebar Panel, height int) string {
	left := l.pane(content, l.ContentWidth, height, true)
	if l.SidebarWidth == 0 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, l.pane(sidebar, l.SidebarWidth, height, false))
}

func (l *Layout) pane(p Panel, width, height int, focused bool) string {
	inner := max(width-chrome, 1)
	rows := VisibleHeight(height)
	bar := BuildScrollbar(rows, p.total(), p.ScrollPos, l.active, l.dim, focused)

	out := make([]string, rows)
	for i := range out {
		var line string
		if i < len(p.Lines) {
			line = p.Lines[i]
		}
		out[i] = fit(line, inner) + " " + bar[i]
	}

	border := l.dim
	if focused {
		border = l.active
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(out, "\n"))
}

// fit pads or truncates line to exactly width cells.
func fit(line string, width int) string {
	w := lipgloss.Width(line)
	if w > width {
		line = truncateString(line, width)
		w = lipgloss.Width(line)
	}
	return line + strings.Repeat(" ", max(width-w, 0))
}

// truncateString cuts s to maxWidth cells, ending in an ellipsis. Escape
// sequences in styled lines are kept intact.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= len(ellipsis) {
		if lipgloss.Width(s) <= maxWidth {
			return s
		}
		return ellipsis[:max(maxWidth, 0)]
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// MainContentWidth is the usable width for conversation lines.
func (l *Layout) MainContentWidth() int {
	return max(l.ContentWidth-chrome, 1)
}

// SidebarContentWidth is the usable width for sidebar lines, 0 without a sidebar.
func (l *Layout) SidebarContentWidth() int {
	if l.SidebarWidth == 0 {
		return 0
	}
	return l.SidebarWidth - chrome
}

// VisibleHeight is the number of lines a pane of the given height shows.
func VisibleHeight(height int) int {
	return max(height-2, 1)
}
