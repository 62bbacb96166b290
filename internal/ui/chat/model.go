// Package chat is the full-screen console client: the conversation on the
// left, connection status on the right and a prompt at the bottom.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsbteam/chat/internal/client"
	"github.com/fsbteam/chat/internal/ui/style"
)

const (
	maxLines   = 1000
	scrollPage = 10
)

// Session is the part of client.Client the screen drives.
type Session interface {
	HandleInput(line string)
	Events() <-chan client.Event
}

// eventMsg wraps a client event for the update loop.
type eventMsg client.Event

// closedMsg reports that the event channel was closed.
type closedMsg struct{}

// waitForEvent blocks on the next client event.
func waitForEvent(events <-chan client.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(e)
	}
}

// submit runs the line off the update loop, since /connect blocks on the
// dial. Results come back as events.
func submit(s Session, line string) tea.Cmd {
	return func() tea.Msg {
		s.HandleInput(line)
		return nil
	}
}

// model is the Bubble Tea model of the chat screen
type model struct {
	session Session
	input   textinput.Model

	// Conversation, oldest first, already styled
	lines []string
	// Lines scrolled up from the bottom; 0 follows new lines
	scrollBack int

	// Connection state
	connected bool
	address   string
	prompting bool
	received  int

	width  int
	height int

	colors style.ColorConfig
}

func newModel(s Session) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message or /help"
	ti.CharLimit = 4096
	ti.Focus()

	return model{
		session: s,
		input:   ti,
		colors:  style.GetColors(),
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.session.Events()))
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case eventMsg:
		cmd := m.handleEvent(client.Event(msg))
		return m, tea.Batch(cmd, waitForEvent(m.session.Events()))

	case closedMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		if line == "" && !m.prompting {
			return m, nil
		}
		if strings.HasPrefix(line, "/") {
			m.appendLines(style.Muted(line))
		}
		m.prompting = false
		m.input.Placeholder = "Type a message or /help"
		m.scrollBack = 0
		return m, submit(m.session, line)

	case tea.KeyPgUp:
		m.scroll(scrollPage)
		return m, nil

	case tea.KeyPgDown:
		m.scroll(-scrollPage)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleEvent(e client.Event) tea.Cmd {
	switch e.Kind {
	case client.EventSelf:
		m.received++
		m.appendLines(style.Self(e.Text))
	case client.EventChat:
		m.received++
		m.appendLines(style.Peer(e.Text))
	case client.EventNotice:
		m.appendLines(style.Notice(e.Text))
	case client.EventError:
		m.appendLines(strings.Split(style.Explain(e.Err), "\n")...)
	case client.EventPrompt:
		m.prompting = true
		m.input.Placeholder = "Y/n"
		m.appendLines(style.Warning(e.Text))
	case client.EventConnected:
		m.connected = true
		m.address = e.Text
		m.appendLines(style.Success("Connected to " + e.Text + "."))
	case client.EventDisconnected:
		m.connected = false
		m.prompting = false
		m.appendLines(style.Warning("Disconnected."))
	case client.EventClear:
		m.lines = nil
		m.scrollBack = 0
	case client.EventQuit:
		return tea.Quit
	}
	return nil
}

func (m *model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - maxLines; over > 0 {
		m.lines = m.lines[over:]
	}
	if m.scrollBack > 0 {
		m.scrollBack += len(lines)
	}
}

func (m *model) scroll(delta int) {
	m.scrollBack = min(max(m.scrollBack+delta, 0), max(len(m.lines)-1, 0))
}
