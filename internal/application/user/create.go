package user

import (
	"context"

	"github.com/google/uuid"

	"userservice/internal/domain"
)

// Create registers a new user. The duplicate-email check here is a fast
// path; the repository's unique constraint closes the race window.
func (s *Service) Create(ctx context.Context, email, password string) (domain.User, error) {
	const action = "user.create"

	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if !validEmail(email) {
		return domain.User{}, domain.ErrInvalidField("email", "invalid format")
	}
	if err := validatePassword(password); err != nil {
		return domain.User{}, err
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != "" {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	} else if err != nil && !domain.Is(err, "user_not_found") {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	created, err := s.users.Create(ctx, domain.NewUser(uuid.NewString(), email, hash))
	if err != nil {
		return domain.User{}, err
	}

	s.audit(action, map[string]string{"user_id": created.ID, "result": "success"})
	return created, nil
}
