package store

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/fsbteam/chat/internal/domain"
)

// AppendMessage stores body under a fresh message ID.
func (s *Store) AppendMessage(groupID, senderID int64, body string) (domain.Message, error) {
	sender, err := s.UserByID(senderID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("message sender: %w", err)
	}

	msg := domain.Message{
		ID:       uuid.NewString(),
		GroupID:  groupID,
		SenderID: senderID,
		Sender:   sender.DisplayName(),
		Body:     body,
	}
	sent := s.timestamp()
	msg.SentAt = parseTime(sent)

	_, err = s.db.Exec(
		`INSERT INTO messages (id, group_id, sender_id, body, sent_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, groupID, senderID, body, sent,
	)
	if err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// History returns the last limit messages of a group, oldest first.
// A limit of zero or less returns the whole history.
func (s *Store) History(groupID int64, limit int) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.group_id, m.sender_id, u.username, u.nickname, m.body, m.sent_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.group_id = ?
		ORDER BY m.rowid DESC`
	args := []any{groupID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var (
			m                  domain.Message
			username, nickname string
			ts                 string
		)
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &username, &nickname, &m.Body, &ts); err != nil {
			return nil, err
		}
		m.Sender = domain.User{Username: username, Nickname: nickname}.DisplayName()
		m.SentAt = parseTime(ts)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(out)
	return out, nil
}
