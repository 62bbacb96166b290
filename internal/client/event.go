package client

import "github.com/fsbteam/chat/internal/command"

// EventKind classifies what the client reports to its UI.
type EventKind int

const (
	// EventNotice is server or local informational text.
	EventNotice EventKind = iota
	// EventChat is a chat line from another user.
	EventChat
	// EventSelf is the echo of the user's own chat line.
	EventSelf
	// EventError carries a rejected command line in Err.
	EventError
	// EventPrompt asks the user a Y/n question; the next input answers it.
	EventPrompt
	EventConnected
	EventDisconnected
	EventClear
	EventQuit
)

// Event is one thing for the UI to show or do.
type Event struct {
	Kind EventKind
	Text string
	Err  *command.Error
}
