package user

import (
	"context"
	"strings"

	"userservice/internal/domain"
)

// GetByID fetches another user's record on behalf of an authenticated
// requester. Any active authenticated user may view any other active user;
// inactive targets are reported as not-found regardless of true existence.
func (s *Service) GetByID(ctx context.Context, targetID, requesterID string) (domain.User, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	if _, err := s.requireActiveRequester(ctx, requesterID); err != nil {
		return domain.User{}, err
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return domain.User{}, err
	}
	if !target.Active {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return target, nil
}

// GetProfile fetches the requester's own record. Unlike GetByID, an
// inactive own account is reported as inactive, not hidden as not-found.
func (s *Service) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !u.Active {
		return domain.User{}, domain.ErrAccountInactive()
	}
	return u, nil
}
