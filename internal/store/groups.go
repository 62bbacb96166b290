package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fsbteam/chat/internal/domain"
)

const groupColumns = `g.id, g.groupname, g.name, g.owner_id, g.created_at`

func scanGroup(row rowScanner) (domain.Group, error) {
	var (
		g  domain.Group
		ts string
	)
	if err := row.Scan(&g.ID, &g.Groupname, &g.Name, &g.OwnerID, &ts); err != nil {
		return domain.Group{}, err
	}
	g.CreatedAt = parseTime(ts)
	return g, nil
}

// CreateGroup creates a group and makes ownerID its owner. The display
// name defaults to the groupname.
func (s *Store) CreateGroup(groupname, name string, ownerID int64) (domain.Group, error) {
	if name == "" {
		name = groupname
	}
	created := s.timestamp()

	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO chat_groups (groupname, name, owner_id, created_at) VALUES (?, ?, ?, ?)`,
			groupname, name, ownerID, created,
		)
		if isConstraintViolation(err) {
			return domain.ErrExists
		}
		if err != nil {
			return fmt.Errorf("insert group: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}

		_, err = tx.Exec(
			`INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`,
			id, ownerID, domain.RoleOwner, created,
		)
		return err
	})
	if err != nil {
		return domain.Group{}, err
	}

	return domain.Group{
		ID:        id,
		Groupname: groupname,
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: parseTime(created),
	}, nil
}

func (s *Store) GroupByName(groupname string) (domain.Group, error) {
	g, err := scanGroup(s.db.QueryRow(`SELECT `+groupColumns+` FROM chat_groups g WHERE g.groupname = ?`, groupname))
	return g, notFound(err)
}

// ListUserGroups returns the groups userID belongs to, by groupname.
func (s *Store) ListUserGroups(userID int64) ([]domain.Group, error) {
	rows, err := s.db.Query(`
		SELECT `+groupColumns+`
		FROM chat_groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = ?
		ORDER BY g.groupname`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Members returns owner first, then admins, then members, each by username.
func (s *Store) Members(groupID int64) ([]domain.Member, error) {
	rows, err := s.db.Query(`
		SELECT u.id, u.username, u.nickname, u.created_at, m.role
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = ?
		ORDER BY CASE m.role WHEN 'owner' THEN 0 WHEN 'admin' THEN 1 ELSE 2 END, u.username`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var (
			m  domain.Member
			ts string
		)
		if err := rows.Scan(&m.ID, &m.Username, &m.Nickname, &ts, &m.Role); err != nil {
			return nil, err
		}
		m.CreatedAt = parseTime(ts)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) Role(groupID, userID int64) (domain.Role, error) {
	var role domain.Role
	err := s.db.QueryRow(
		`SELECT role FROM group_members WHERE group_id = ? AND user_id = ?`,
		groupID, userID,
	).Scan(&role)
	return role, notFound(err)
}

// Invite records a pending invitation. Returns domain.ErrExists if the
// user is already a member or already invited.
func (s *Store) Invite(groupID, userID, inviterID int64) error {
	if _, err := s.Role(groupID, userID); err == nil {
		return domain.ErrExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO group_invites (group_id, user_id, inviter_id, created_at) VALUES (?, ?, ?, ?)`,
		groupID, userID, inviterID, s.timestamp(),
	)
	if isConstraintViolation(err) {
		return domain.ErrExists
	}
	if err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// ListInvites returns pending invitations of userID, oldest first.
func (s *Store) ListInvites(userID int64) ([]domain.Invite, error) {
	rows, err := s.db.Query(`
		SELECT `+groupColumns+`, u.id, u.username, u.nickname, u.created_at
		FROM group_invites i
		JOIN chat_groups g ON g.id = i.group_id
		JOIN users u ON u.id = i.inviter_id
		WHERE i.user_id = ?
		ORDER BY i.rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		var (
			inv          domain.Invite
			groupTS, uTS string
		)
		if err := rows.Scan(
			&inv.Group.ID, &inv.Group.Groupname, &inv.Group.Name, &inv.Group.OwnerID, &groupTS,
			&inv.Inviter.ID, &inv.Inviter.Username, &inv.Inviter.Nickname, &uTS,
		); err != nil {
			return nil, err
		}
		inv.Group.CreatedAt = parseTime(groupTS)
		inv.Inviter.CreatedAt = parseTime(uTS)
		out = append(out, inv)
	}
	return out, rows.Err()
}

// AcceptInvite consumes the invitation and adds userID as a member.
func (s *Store) AcceptInvite(userID, groupID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		err := expectRows(tx.Exec(`DELETE FROM group_invites WHERE group_id = ? AND user_id = ?`, groupID, userID))
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			`INSERT OR IGNORE INTO group_members (group_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`,
			groupID, userID, domain.RoleMember, s.timestamp(),
		)
		return err
	})
}

func (s *Store) DenyInvite(userID, groupID int64) error {
	return expectRows(s.db.Exec(`DELETE FROM group_invites WHERE group_id = ? AND user_id = ?`, groupID, userID))
}

func (s *Store) RemoveMember(groupID, userID int64) error {
	return expectRows(s.db.Exec(`DELETE FROM group_members WHERE group_id = ? AND user_id = ?`, groupID, userID))
}

// DeleteGroup removes the group with its members, invites and history.
func (s *Store) DeleteGroup(groupID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		for _, q := range []string{
			`DELETE FROM messages WHERE group_id = ?`,
			`DELETE FROM group_invites WHERE group_id = ?`,
			`DELETE FROM group_members WHERE group_id = ?`,
		} {
			if _, err := tx.Exec(q, groupID); err != nil {
				return err
			}
		}
		return expectRows(tx.Exec(`DELETE FROM chat_groups WHERE id = ?`, groupID))
	})
}

// SetRole changes the role of an existing member.
func (s *Store) SetRole(groupID, userID int64, role domain.Role) error {
	return expectRows(s.db.Exec(
		`UPDATE group_members SET role = ? WHERE group_id = ? AND user_id = ?`,
		role, groupID, userID,
	))
}

// TransferOwnership makes newOwnerID the owner; the previous owner
// stays in the group as an admin.
func (s *Store) TransferOwnership(groupID, newOwnerID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		var oldOwnerID int64
		if err := tx.QueryRow(`SELECT owner_id FROM chat_groups WHERE id = ?`, groupID).Scan(&oldOwnerID); err != nil {
			return notFound(err)
		}

		err := expectRows(tx.Exec(
			`UPDATE group_members SET role = ? WHERE group_id = ? AND user_id = ?`,
			domain.RoleOwner, groupID, newOwnerID,
		))
		if err != nil {
			return err
		}
		if oldOwnerID != newOwnerID {
			if _, err := tx.Exec(
				`UPDATE group_members SET role = ? WHERE group_id = ? AND user_id = ?`,
				domain.RoleAdmin, groupID, oldOwnerID,
			); err != nil {
				return err
			}
		}

		_, err = tx.Exec(`UPDATE chat_groups SET owner_id = ? WHERE id = ?`, newOwnerID, groupID)
		return err
	})
}

func (s *Store) RenameGroup(groupID int64, name string) error {
	return expectRows(s.db.Exec(`UPDATE chat_groups SET name = ? WHERE id = ?`, name, groupID))
}
