package store

import (
	"database/sql"
	"fmt"

	"github.com/fsbteam/chat/internal/domain"
)

func (s *Store) areFriends(userID, friendID int64) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM friendships WHERE user_id = ? AND friend_id = ?`,
		userID, friendID,
	).Scan(&n)
	return n > 0, err
}

// SendFriendRequest records a pending request. Returns domain.ErrExists
// if the users are already friends or the request is already pending.
func (s *Store) SendFriendRequest(fromID, toID int64) error {
	friends, err := s.areFriends(fromID, toID)
	if err != nil {
		return err
	}
	if friends {
		return domain.ErrExists
	}

	_, err = s.db.Exec(
		`INSERT INTO friend_requests (from_id, to_id, created_at) VALUES (?, ?, ?)`,
		fromID, toID, s.timestamp(),
	)
	if isConstraintViolation(err) {
		return domain.ErrExists
	}
	if err != nil {
		return fmt.Errorf("insert friend request: %w", err)
	}
	return nil
}

func (s *Store) DismissFriendRequest(fromID, toID int64) error {
	return expectRows(s.db.Exec(`DELETE FROM friend_requests WHERE from_id = ? AND to_id = ?`, fromID, toID))
}

// AcceptFriendRequest consumes the request from fromID and records the
// friendship in both directions.
func (s *Store) AcceptFriendRequest(toID, fromID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		err := expectRows(tx.Exec(`DELETE FROM friend_requests WHERE from_id = ? AND to_id = ?`, fromID, toID))
		if err != nil {
			return err
		}
		// a crossed request in the other direction is settled too
		if _, err := tx.Exec(`DELETE FROM friend_requests WHERE from_id = ? AND to_id = ?`, toID, fromID); err != nil {
			return err
		}

		now := s.timestamp()
		_, err = tx.Exec(
			`INSERT OR IGNORE INTO friendships (user_id, friend_id, created_at) VALUES (?, ?, ?), (?, ?, ?)`,
			toID, fromID, now, fromID, toID, now,
		)
		return err
	})
}

func (s *Store) DenyFriendRequest(toID, fromID int64) error {
	return expectRows(s.db.Exec(`DELETE FROM friend_requests WHERE from_id = ? AND to_id = ?`, fromID, toID))
}

// RemoveFriend drops the friendship in both directions.
func (s *Store) RemoveFriend(userID, friendID int64) error {
	return expectRows(s.db.Exec(
		`DELETE FROM friendships WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)`,
		userID, friendID, friendID, userID,
	))
}

// ListFriends returns friends ordered by username.
func (s *Store) ListFriends(userID int64) ([]domain.User, error) {
	return queryUsers(s.db, `
		SELECT u.id, u.username, u.nickname, u.created_at
		FROM friendships f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = ?
		ORDER BY u.username`, userID)
}

func (s *Store) ListIncomingRequests(userID int64) ([]domain.User, error) {
	return queryUsers(s.db, `
		SELECT u.id, u.username, u.nickname, u.created_at
		FROM friend_requests r
		JOIN users u ON u.id = r.from_id
		WHERE r.to_id = ?
		ORDER BY r.rowid`, userID)
}
