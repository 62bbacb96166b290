package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
)

func Pick(args []string, flags *dispatchers.ParsedFlags) error {
	return pick(args, flags, DefaultDeps())
}

func pick(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	// Bubble Tea needs a real terminal on both ends
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("theme picker requires an interactive terminal")
	}

	current := currentTheme(deps)
	p := tea.NewProgram(newModel(deps, current), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}

	return report(final.(model), current, deps)
}

// report saves the picked theme and says what happened.
func report(m model, current string, deps Deps) error {
	switch {
	case m.cancelled:
		fmt.Fprintln(deps.Out, "Cancelled")
	case m.chosen == current:
		fmt.Fprintf(deps.Out, "Theme %s is already active\n", style.Info(m.chosen))
	case m.chosen != "":
		if err := saveTheme(deps, m.chosen); err != nil {
			return err
		}
		fmt.Fprintf(deps.Out, "theme set to %s\n", style.Success(m.chosen))
	}
	return nil
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

type model struct {
	themes    []string
	configs   map[string]style.ColorConfig
	cursor    int
	selected  string
	chosen    string
	cancelled bool
}

func newModel(deps Deps, current string) model {
	m := model{
		themes:   deps.Names,
		configs:  deps.Themes,
		selected: current,
	}
	for i, name := range m.themes {
		if name == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.themes) == 0 {
		return m, nil
	}

	last := len(m.themes) - 1
	switch {
	case key.Matches(k, keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(k, keys.Select):
		m.chosen = m.themes[m.cursor]
		return m, tea.Quit
	case key.Matches(k, keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = last
		}
	case key.Matches(k, keys.Down):
		m.cursor++
		if m.cursor > last {
			m.cursor = 0
		}
	case key.Matches(k, keys.Top):
		m.cursor = 0
	case key.Matches(k, keys.Bottom):
		m.cursor = last
	}
	return m, nil
}

func (m model) View() string {
	if len(m.themes) == 0 {
		return "No themes available.\n"
	}

	var b strings.Builder
	b.WriteString("Select a theme:\n\n")

	left := make([]string, len(m.themes))
	for i, name := range m.themes {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}

		selected := "  "
		if name == m.selected {
			selected = "✓ "
		}

		styleName := lipgloss.NewStyle().Width(16)
		if i == m.cursor {
			styleName = styleName.Bold(true).Background(lipgloss.Color("237"))
		}

		left[i] = cursor + selected + styleName.Render(name)
	}

	name := m.themes[m.cursor]
	right := renderPreviewCard(buildChatPreview(name, m.configs[name]))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), "    ", right))
	b.WriteString("\n\n")
	b.WriteString(renderFooter())

	return b.String()
}

func renderFooter() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(" │ ")

	bindings := []key.Binding{keys.Up, keys.Down, keys.Top, keys.Bottom, keys.Select, keys.Quit}
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		h := kb.Help()
		parts[i] = keyStyle.Render(h.Key) + label.Render(" "+h.Desc)
	}
	return strings.Join(parts, sep)
}

func renderPreviewCard(lines []string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// buildChatPreview renders a short sample conversation in the theme.
func buildChatPreview(name string, cfg style.ColorConfig) []string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return []string{
		muted.Render("Preview: ") + colorize(name, cfg.Info),
		colorize("success", cfg.Success) + "  " +
			colorize("warning", cfg.Warning) + "  " +
			colorize("error", cfg.Error) + "  " +
			colorize("info", cfg.Info) + "  " +
			colorize("muted", cfg.Muted) + "  " +
			colorize("header", cfg.Header),
		"",
		colorize("Opened Book club (book_club).", cfg.Notice),
		colorize("[18:02] [Alice] finished chapter 3?", cfg.Peer),
		colorize("» [18:03] [Bob] almost, no spoilers", cfg.Self),
		colorize("Carol joined the group.", cfg.Notice),
	}
}
