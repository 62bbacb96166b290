package store

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsbteam/chat/internal/domain"
)

const userColumns = `id, username, nickname, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u  domain.User
		ts string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Nickname, &ts); err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = parseTime(ts)
	return u, nil
}

func (s *Store) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// CreateUser registers an account with a bcrypt password hash.
func (s *Store) CreateUser(username, password string) (domain.User, error) {
	h, err := s.hash(password)
	if err != nil {
		return domain.User{}, err
	}

	created := s.timestamp()
	res, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		username, h, created,
	)
	if isConstraintViolation(err) {
		return domain.User{}, domain.ErrExists
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: id, Username: username, CreatedAt: parseTime(created)}, nil
}

// Authenticate returns the account when password matches.
func (s *Store) Authenticate(username, password string) (domain.User, error) {
	var (
		id   int64
		hash string
	)
	err := s.db.QueryRow(`SELECT id, password_hash FROM users WHERE username = ?`, username).Scan(&id, &hash)
	if err != nil {
		return domain.User{}, notFound(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, domain.ErrWrongPassword
		}
		return domain.User{}, err
	}
	return s.UserByID(id)
}

func (s *Store) UserByUsername(username string) (domain.User, error) {
	u, err := scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	return u, notFound(err)
}

func (s *Store) UserByID(id int64) (domain.User, error) {
	u, err := scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	return u, notFound(err)
}

func (s *Store) ChangeNickname(userID int64, nickname string) error {
	return expectRows(s.db.Exec(`UPDATE users SET nickname = ? WHERE id = ?`, nickname, userID))
}

// ChangePassword replaces the hash after verifying oldPassword.
func (s *Store) ChangePassword(userID int64, oldPassword, newPassword string) error {
	var hash string
	if err := s.db.QueryRow(`SELECT password_hash FROM users WHERE id = ?`, userID).Scan(&hash); err != nil {
		return notFound(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(oldPassword)); err != nil {
		return domain.ErrWrongPassword
	}

	h, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	return expectRows(s.db.Exec(`UPDATE users SET password_hash = ? WHERE id = ?`, h, userID))
}

func queryUsers(db *sql.DB, query string, args ...any) ([]domain.User, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
