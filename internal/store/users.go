package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"financial-backend/internal/models"
)

// EmailExists reports whether a user with the given email is already
// registered. Callers use this as a pre-insert duplicate check; there
// is no unique constraint backing it, so two concurrent signups with
// the same email can both pass (see the schema note in Migrate).
func (s *PostgresStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`SELECT user_id FROM users WHERE email = $1`, email,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateUser inserts a new user and returns the generated id.
func (s *PostgresStore) CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING user_id`,
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetUserByEmail returns the user with the given email, including the
// password hash for credential checks. Returns ErrUserNotFound when no
// row matches.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, name, email, password_hash, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns the user with the given id, without the password
// hash. Returns ErrUserNotFound when no row matches.
func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, name, email, created_at
		 FROM users WHERE user_id = $1`, id,
	).Scan(&u.UserID, &u.Name, &u.Email, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user with the given id exists.
func (s *PostgresStore) UserExists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := s.pool.QueryRow(ctx,
		`SELECT user_id FROM users WHERE user_id = $1`, id,
	).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
