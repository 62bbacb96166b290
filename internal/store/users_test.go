package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fsbteam/chat/internal/domain"
)

func TestCreateUser(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t)
	s.now = func() time.Time { return fixed }

	u, err := s.CreateUser("alice", "secret")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, "alice", u.DisplayName())
	require.True(t, u.CreatedAt.Equal(fixed))

	_, err = s.CreateUser("alice", "other")
	require.ErrorIs(t, err, domain.ErrExists)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "alice")

	u, err := s.Authenticate("alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	_, err = s.Authenticate("alice", "wrong")
	require.ErrorIs(t, err, domain.ErrWrongPassword)

	_, err = s.Authenticate("bob", "secret")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPasswordIsHashed(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "alice")

	var hash string
	require.NoError(t, s.DB().QueryRow(`SELECT password_hash FROM users WHERE username = 'alice'`).Scan(&hash))
	require.NotEqual(t, "secret", hash)
	require.Contains(t, hash, "$2")
}

func TestChangeNickname(t *testing.T) {
	s := newTestStore(t)
	alice := seed(t, s, "alice")[0]

	require.NoError(t, s.ChangeNickname(alice.ID, "Ally"))

	u, err := s.UserByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, "Ally", u.DisplayName())

	require.ErrorIs(t, s.ChangeNickname(999, "ghost"), domain.ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	s := newTestStore(t)
	alice := seed(t, s, "alice")[0]

	require.ErrorIs(t, s.ChangePassword(alice.ID, "nope", "fresh"), domain.ErrWrongPassword)
	require.NoError(t, s.ChangePassword(alice.ID, "secret", "fresh"))

	_, err := s.Authenticate("alice", "secret")
	require.ErrorIs(t, err, domain.ErrWrongPassword)
	_, err = s.Authenticate("alice", "fresh")
	require.NoError(t, err)

	require.ErrorIs(t, s.ChangePassword(999, "a", "b"), domain.ErrNotFound)
}

func TestUserLookups(t *testing.T) {
	s := newTestStore(t)
	alice := seed(t, s, "alice")[0]

	byID, err := s.UserByID(alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	_, err = s.UserByID(42)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.UserByUsername("nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
