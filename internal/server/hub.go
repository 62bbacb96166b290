package server

import (
	"sync"

	"github.com/fsbteam/chat/internal/domain"
)

// Hub is the registry of online sessions. Safe for concurrent use.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*Session)}
}

func (h *Hub) Add(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID] = s
}

func (h *Hub) Remove(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s.ID)
}

// Len returns the number of connected sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// snapshot copies the session list so sends happen without the lock held.
func (h *Hub) snapshot() []*Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		out = append(out, s)
	}
	return out
}

// Broadcast sends line to every connected session.
func (h *Hub) Broadcast(line string) {
	for _, s := range h.snapshot() {
		s.Send(line)
	}
}

// ForUser calls fn for every session logged in as userID and reports
// whether there was at least one.
func (h *Hub) ForUser(userID int64, fn func(s *Session)) bool {
	found := false
	for _, s := range h.snapshot() {
		if u, ok := s.User(); ok && u.ID == userID {
			fn(s)
			found = true
		}
	}
	return found
}

// SendToUser sends line to every session of userID.
func (h *Hub) SendToUser(userID int64, line string) bool {
	return h.ForUser(userID, func(s *Session) { s.Send(line) })
}

// IsOnline reports whether userID has a logged-in session.
func (h *Hub) IsOnline(userID int64) bool {
	return h.ForUser(userID, func(*Session) {})
}

// SendToGroup sends to every session that has groupID open. render
// returns the line for a session, or "" to skip it.
func (h *Hub) SendToGroup(groupID int64, render func(s *Session) string) {
	for _, s := range h.snapshot() {
		g, ok := s.Group()
		if !ok || g.ID != groupID {
			continue
		}
		if line := render(s); line != "" {
			s.Send(line)
		}
	}
}

// CloseGroup clears groupID from every session that has it open and
// sends them notice.
func (h *Hub) CloseGroup(groupID int64, notice string) {
	for _, s := range h.snapshot() {
		if g, ok := s.Group(); ok && g.ID == groupID {
			s.setGroup(nil)
			s.Send(notice)
		}
	}
}

// CloseAll disconnects every session.
func (h *Hub) CloseAll() {
	for _, s := range h.snapshot() {
		s.Close()
	}
}

// UpdateGroup replaces the open group of every session that has g open
// and sends them notice.
func (h *Hub) UpdateGroup(g domain.Group, notice string) {
	for _, s := range h.snapshot() {
		if open, ok := s.Group(); ok && open.ID == g.ID {
			s.setGroup(&g)
			if notice != "" {
				s.Send(notice)
			}
		}
	}
}
