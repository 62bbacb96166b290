package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current := currentTheme(deps)

	fmt.Fprint(deps.Out, "Available themes (* = current)\n\n")
	for _, name := range deps.Names {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}
		fmt.Fprintf(deps.Out, "%s%-16s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}
	fmt.Fprint(deps.Out, "\nUse 'fsb theme set <name>' or 'fsb theme pick' to change\n")
	return nil
}

// colorize renders text in an ANSI color, or bold for "bold" and "".
func colorize(text, color string) string {
	s := lipgloss.NewStyle()
	if color == "" || color == "bold" {
		return s.Bold(true).Render(text)
	}
	return s.Foreground(lipgloss.Color(color)).Render(text)
}

// renderColorPreview shows the message roles, then the chat roles.
func renderColorPreview(cfg style.ColorConfig) string {
	samples := []struct{ text, color string }{
		{"success", cfg.Success}, {"error", cfg.Error}, {"info", cfg.Info}, {"muted", cfg.Muted},
	}
	chat := []struct{ text, color string }{
		{"you", cfg.Self}, {"peer", cfg.Peer}, {"notice", cfg.Notice},
	}

	render := func(set []struct{ text, color string }) string {
		parts := make([]string, len(set))
		for i, s := range set {
			parts[i] = colorize(s.text, s.color)
		}
		return strings.Join(parts, " ")
	}
	return render(samples) + "   " + render(chat)
}
