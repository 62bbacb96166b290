package server

import (
	"regexp"

	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/format"
)

// Replies shared by several commands.
const (
	msgNotLoggedIn     = "You aren't logged in."
	msgAlreadyLoggedIn = "You are already logged in."
	msgNoGroup         = "No group opened."
	msgOpenGroupFirst  = "Open group first."
	msgNoPermission    = "You don't have permission to manage this group."
	msgOwnerOnly       = "Only the group owner can do that."
	msgChownFirst      = "Chown ownership before exiting."
	msgTooFast         = "Slow down! You are sending messages too fast."
	msgSomethingWrong  = "Something went wrong!"
	msgUserNotFound    = "User not found."
	msgGroupNotFound   = "Group not found."
)

// SelfMarker prefixes the echo of a user's own chat lines.
const SelfMarker = "» "

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,24}$`)

// validName reports whether s can be used as a username or groupname.
func validName(s string) bool {
	return namePattern.MatchString(s)
}

// chatLine renders a stored message. Lines always start with "[" or the
// self marker so a client never mistakes them for control lines.
func chatLine(m domain.Message, self bool, clockMode string) string {
	line := format.StampIn(m.SentAt.Local(), clockMode) + "[" + m.Sender + "] " + m.Body
	if self {
		return SelfMarker + line
	}
	return line
}
