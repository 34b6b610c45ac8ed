package user

import (
	"context"
	"strings"

	"userservice/internal/domain"
)

// UpdateInput carries the optional fields of an update. Empty string means
// "not supplied"; the zero value is therefore an empty update.
type UpdateInput struct {
	Email    string
	Password string
}

func (in UpdateInput) empty() bool {
	return in.Email == "" && in.Password == ""
}

// Update applies an email and/or password change to the requester's own
// record. Field validation happens before any write; the record is
// persisted once at the end so the mutation is atomic for the caller.
func (s *Service) Update(ctx context.Context, targetID, requesterID string, in UpdateInput) (domain.User, error) {
	const action = "user.update"

	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if in.empty() {
		return domain.User{}, domain.ErrNoFieldsToUpdate()
	}

	requester, err := s.requireActiveRequester(ctx, requesterID)
	if err != nil {
		return domain.User{}, err
	}
	if targetID != requester.ID {
		s.audit(action, map[string]string{
			"requester_id": requester.ID,
			"target_id":    targetID,
			"result":       "not_self",
		})
		return domain.User{}, domain.ErrNotSelf()
	}

	// Self-only means target == requester, already resolved and active.
	target := requester

	if in.Email != "" {
		email := normalizeEmail(in.Email)
		if !validEmail(email) {
			return domain.User{}, domain.ErrInvalidField("email", "invalid format")
		}
		if other, err := s.users.GetByEmail(ctx, email); err == nil && other.ID != "" && other.ID != targetID {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		} else if err != nil && !domain.Is(err, "user_not_found") {
			return domain.User{}, err
		}
		target.UpdateEmail(email)
	}

	if in.Password != "" {
		if err := validatePassword(in.Password); err != nil {
			return domain.User{}, err
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return domain.User{}, domain.ErrHashFailed(err)
		}
		target.SetPasswordHash(hash)
	}

	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return domain.User{}, err
	}

	s.audit(action, map[string]string{"user_id": updated.ID, "result": "success"})
	return updated, nil
}
