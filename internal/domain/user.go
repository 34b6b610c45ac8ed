package domain

import "time"

// User is the identity record owned by the repository. The ID is assigned
// once at creation and never changes; Email is stored lowercase and trimmed.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a new active user with UTC timestamps.
// ID generation and password hashing happen in the use-case layer.
func NewUser(id, email, passwordHash string) User {
	now := time.Now().UTC()
	return User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *User) UpdateEmail(email string) {
	u.Email = email
	u.touch()
}

func (u *User) SetPasswordHash(hash string) {
	u.PasswordHash = hash
	u.touch()
}

// Deactivate marks the user inactive (soft delete).
func (u *User) Deactivate() {
	u.Active = false
	u.touch()
}

// Activate reverses a soft delete.
func (u *User) Activate() {
	u.Active = true
	u.touch()
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}
