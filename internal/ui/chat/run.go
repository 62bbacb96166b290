package chat

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/fsbteam/chat/internal/client"
)

// Run shows the chat screen over c until the user quits.
func Run(c *client.Client) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the chat client requires an interactive terminal")
	}

	p := tea.NewProgram(newModel(c), tea.WithAltScreen())
	_, err := p.Run()
	c.Disconnect()
	return err
}
