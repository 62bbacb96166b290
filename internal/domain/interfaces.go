package domain

import (
	"io"
)

// ChatStore defines persistence for accounts, friendships, groups and
// messages.
type ChatStore interface {
	// CreateUser registers an account. Returns ErrExists if the username is taken.
	CreateUser(username, password string) (User, error)

	// Authenticate checks credentials and returns the account.
	Authenticate(username, password string) (User, error)

	UserByUsername(username string) (User, error)
	UserByID(id int64) (User, error)

	// ChangeNickname sets the display name of an account.
	ChangeNickname(userID int64, nickname string) error

	// ChangePassword replaces the password after checking the old one.
	ChangePassword(userID int64, oldPassword, newPassword string) error

	// SendFriendRequest records a pending request from one user to another.
	SendFriendRequest(fromID, toID int64) error

	// DismissFriendRequest withdraws a request the sender made.
	DismissFriendRequest(fromID, toID int64) error

	// AcceptFriendRequest turns a pending request into a friendship.
	AcceptFriendRequest(toID, fromID int64) error

	// DenyFriendRequest drops a pending request addressed to toID.
	DenyFriendRequest(toID, fromID int64) error

	RemoveFriend(userID, friendID int64) error
	ListFriends(userID int64) ([]User, error)

	// ListIncomingRequests returns the senders of pending requests, oldest first.
	ListIncomingRequests(userID int64) ([]User, error)

	// CreateGroup creates a group owned by ownerID.
	CreateGroup(groupname, name string, ownerID int64) (Group, error)

	GroupByName(groupname string) (Group, error)
	ListUserGroups(userID int64) ([]Group, error)
	Members(groupID int64) ([]Member, error)

	// Role returns the role of a member. Returns ErrNotFound for non-members.
	Role(groupID, userID int64) (Role, error)

	// Invite records a pending invitation to a group.
	Invite(groupID, userID, inviterID int64) error

	// ListInvites returns pending invitations of a user, oldest first.
	ListInvites(userID int64) ([]Invite, error)

	AcceptInvite(userID, groupID int64) error
	DenyInvite(userID, groupID int64) error

	RemoveMember(groupID, userID int64) error
	DeleteGroup(groupID int64) error
	SetRole(groupID, userID int64, role Role) error

	// TransferOwnership makes a member the owner; the previous owner becomes an admin.
	TransferOwnership(groupID, newOwnerID int64) error

	RenameGroup(groupID int64, name string) error

	// AppendMessage stores a chat message sent to a group.
	AppendMessage(groupID, senderID int64, body string) (Message, error)

	// History returns up to limit most recent messages, oldest first.
	History(groupID int64, limit int) ([]Message, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager shows content through a pager when it is taller than minLines.
	Pager(content string, minLines int)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string

	// Chat roles
	Self(text string) string
	Peer(text string) string
	Notice(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
