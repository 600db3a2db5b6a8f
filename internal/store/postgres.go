package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors returned by the store. Handlers translate these into
// the matching HTTP responses; any other error is an internal fault.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotFound     = errors.New("transaction not found")
)

// PostgresStore owns the users and transactions tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the tables if they don't exist.
//
// users.email intentionally carries no UNIQUE constraint: duplicate
// detection is a lookup performed by the signup handler before the
// insert, matching the behavior existing clients were built against.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id       SERIAL PRIMARY KEY,
			name          VARCHAR(100)  NOT NULL,
			email         VARCHAR(255)  NOT NULL,
			password_hash VARCHAR(255)  NOT NULL,
			created_at    TIMESTAMPTZ   DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id   SERIAL        PRIMARY KEY,
			user_id          INT           NOT NULL,
			amount           NUMERIC(12,2) NOT NULL,
			transaction_type VARCHAR(20)   NOT NULL,
			category         VARCHAR(100)  NOT NULL,
			transaction_date DATE          NOT NULL,
			description      TEXT          NOT NULL DEFAULT ''
		)`,
	}

	for _, m := range migrations {
		if _, err := s.pool.Exec(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
