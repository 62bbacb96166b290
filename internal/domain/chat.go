package domain

import (
	"errors"
	"time"
)

// Store errors, checked with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrExists        = errors.New("already exists")
	ErrWrongPassword = errors.New("wrong password")
)

// User is a registered account.
type User struct {
	ID        int64
	Username  string
	Nickname  string
	CreatedAt time.Time
}

// DisplayName returns the nickname, falling back to the username.
func (u User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

// Role is the rank of a group member.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// CanManage reports whether the role may invite, kick and rename.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Group is a chat room identified by its unique groupname.
type Group struct {
	ID        int64
	Groupname string
	Name      string
	OwnerID   int64
	CreatedAt time.Time
}

// Title returns the display name, falling back to the groupname.
func (g Group) Title() string {
	if g.Name != "" {
		return g.Name
	}
	return g.Groupname
}

// Member is a user together with their role in a group.
type Member struct {
	User
	Role Role
}

// Invite is a pending invitation to a group.
type Invite struct {
	Group   Group
	Inviter User
}

// Message is a chat line sent to a group.
type Message struct {
	ID       string
	GroupID  int64
	SenderID int64
	Sender   string
	Body     string
	SentAt   time.Time
}
