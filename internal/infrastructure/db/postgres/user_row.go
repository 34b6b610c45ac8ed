package postgres

import "time"

// userRow mirrors the users table.
type userRow struct {
	ID           string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
