package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fsbteam/chat/internal/ui/splitpanel"
)

const (
	headerHeight = 1
	inputHeight  = 1
)

// View implements tea.Model
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	mainHeight := max(m.height-headerHeight-inputHeight, 3)
	layout := splitpanel.NewLayout(m.width, splitpanel.DefaultConfig, m.colors)

	conversation := m.conversationPanel(layout.MainContentWidth(), splitpanel.VisibleHeight(mainHeight))
	main := layout.Render(conversation, m.statusPanel(), mainHeight)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), main, m.input.View())
}

func (m model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(orDefault(m.colors.Info, "14"))).Render("fsb")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(m.colors.Muted, "245")))

	status := muted.Render(" | offline")
	if m.connected {
		status = muted.Render(" | " + m.address)
	}
	if m.scrollBack > 0 {
		status += muted.Render(fmt.Sprintf(" | scrolled %d", m.scrollBack))
	}

	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(title + status)
}

// conversationPanel wraps the conversation to width and cuts the window
// that ends scrollBack lines above the bottom.
func (m model) conversationPanel(width, height int) splitpanel.Panel {
	wrap := lipgloss.NewStyle().Width(width)

	var wrapped []string
	for _, line := range m.lines {
		wrapped = append(wrapped, strings.Split(wrap.Render(line), "\n")...)
	}

	end := max(len(wrapped)-m.scrollBack, 0)
	start := max(end-height, 0)
	return splitpanel.Panel{
		Lines:      wrapped[start:end],
		ScrollPos:  start,
		TotalItems: len(wrapped),
	}
}

func (m model) statusPanel() splitpanel.Panel {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(m.colors.Muted, "245")))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(m.colors.Info, "14")))
	header := lipgloss.NewStyle().Bold(true)

	state := "offline"
	if m.connected {
		state = "online"
	}

	lines := []string{
		header.Render("STATUS"),
		"",
		label.Render("Server: ") + value.Render(state),
	}
	if m.address != "" {
		lines = append(lines, label.Render("Address: ")+value.Render(m.address))
	}
	lines = append(lines,
		label.Render("Messages: ")+value.Render(fmt.Sprintf("%d", m.received)),
		"",
		header.Render("KEYS"),
		"",
		label.Render("enter   send"),
		label.Render("pgup/dn scroll"),
		label.Render("ctrl+c  quit"),
	)
	return splitpanel.Panel{Lines: lines}
}

func orDefault(value, fallback string) string {
	if value == "" || value == "bold" {
		return fallback
	}
	return value
}
