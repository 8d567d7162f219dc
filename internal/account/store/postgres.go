package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"cineclub/internal/account/models"
	"cineclub/internal/platform/postgres"
	id "cineclub/pkg/domain"
	"cineclub/pkg/platform/sentinel"
)

// Postgres persists users in the users table.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const (
	usernameIndex = "users_username_lower_key"
	emailIndex    = "users_email_lower_key"
	userColumns   = `id, username, email, password_hash, created_at`
)

func (s *Postgres) Create(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(u.ID), u.Username, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if err == nil {
		return nil
	}
	if postgres.IsUniqueViolation(err) {
		switch postgres.ConstraintName(err) {
		case usernameIndex:
			return ErrUsernameTaken
		case emailIndex:
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", sentinel.ErrConflict)
	}
	return fmt.Errorf("insert user: %w", err)
}

func (s *Postgres) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, uuid.UUID(userID))
	return scanUser(row)
}

func (s *Postgres) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u   models.User
		uid uuid.UUID
	)
	if err := row.Scan(&uid, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.ID = id.UserID(uid)
	return &u, nil
}

// UsernamesByID resolves a batch of ids in one query.
func (s *Postgres) UsernamesByID(ctx context.Context, userIDs []id.UserID) (map[id.UserID]string, error) {
	out := make(map[id.UserID]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	ids := make([]string, len(userIDs))
	for i, uid := range userIDs {
		ids[i] = uid.String()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, username FROM users WHERE id = ANY($1::uuid[])`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query usernames: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			uid  uuid.UUID
			name string
		)
		if err := rows.Scan(&uid, &name); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		out[id.UserID(uid)] = name
	}
	return out, rows.Err()
}
