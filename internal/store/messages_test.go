package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAppendMessage(t *testing.T) {
	s := newTestStore(t)
	alice := seed(t, s, "alice")[0]
	require.NoError(t, s.ChangeNickname(alice.ID, "Ally"))

	g, err := s.CreateGroup("devs", "", alice.ID)
	require.NoError(t, err)

	msg, err := s.AppendMessage(g.ID, alice.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, "Ally", msg.Sender)
	require.Equal(t, "hello", msg.Body)
	_, err = uuid.Parse(msg.ID)
	require.NoError(t, err)

	_, err = s.AppendMessage(g.ID, 999, "ghost")
	require.Error(t, err)
}

func TestHistory(t *testing.T) {
	s := newTestStore(t)
	users := seed(t, s, "alice", "bob")
	alice, bob := users[0], users[1]

	g, err := s.CreateGroup("devs", "", alice.ID)
	require.NoError(t, err)

	for i := range 5 {
		sender := alice.ID
		if i%2 == 1 {
			sender = bob.ID
		}
		_, err := s.AppendMessage(g.ID, sender, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	history, err := s.History(g.ID, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, "m2", history[0].Body)
	require.Equal(t, "m4", history[2].Body)
	require.Equal(t, "bob", history[1].Sender)

	all, err := s.History(g.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "m0", all[0].Body)
}
