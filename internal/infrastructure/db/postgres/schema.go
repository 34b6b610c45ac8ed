package postgres

import (
	"context"
	"database/sql"
)

// Migrate brings the users table up to the shape the repository expects.
// Idempotent; safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS users_active_created_at_idx ON users (active, created_at, id);`)
	return err
}
