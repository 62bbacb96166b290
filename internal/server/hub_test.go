package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fsbteam/chat/internal/domain"
)

func hubSession(id string, user *domain.User, group *domain.Group) *Session {
	return &Session{ID: id, user: user, group: group}
}

func TestHub_AddRemove(t *testing.T) {
	h := NewHub()
	a := hubSession("a", nil, nil)

	h.Add(a)
	h.Add(hubSession("b", nil, nil))
	require.Equal(t, 2, h.Len())

	h.Remove(a)
	require.Equal(t, 1, h.Len())
}

func TestHub_ForUser(t *testing.T) {
	h := NewHub()
	alice := &domain.User{ID: 1, Username: "alice"}
	h.Add(hubSession("a1", alice, nil))
	h.Add(hubSession("a2", alice, nil))
	h.Add(hubSession("guest", nil, nil))

	var seen []string
	require.True(t, h.ForUser(1, func(s *Session) { seen = append(seen, s.ID) }))
	require.ElementsMatch(t, []string{"a1", "a2"}, seen)

	require.True(t, h.IsOnline(1))
	require.False(t, h.IsOnline(2))
}

func TestHub_UpdateGroup(t *testing.T) {
	h := NewHub()
	team := &domain.Group{ID: 7, Groupname: "team"}
	other := &domain.Group{ID: 8, Groupname: "other"}
	inTeam := hubSession("a", &domain.User{ID: 1}, team)
	inOther := hubSession("b", &domain.User{ID: 2}, other)
	h.Add(inTeam)
	h.Add(inOther)

	h.UpdateGroup(domain.Group{ID: 7, Groupname: "team", Name: "Team"}, "")

	g, ok := inTeam.Group()
	require.True(t, ok)
	require.Equal(t, "Team", g.Title())
	g, _ = inOther.Group()
	require.Equal(t, "other", g.Title())
}
