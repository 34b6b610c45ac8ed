package user

import (
	"context"
	"strings"

	"userservice/internal/domain"
)

// Active --Deactivate--> Inactive --Reactivate--> Active.
// HardDelete removes the record from either state; there is no way back.
//
// These operations are self-only but intentionally do not demand an active
// requester up front: Reactivate is only ever called by the owner of an
// inactive account.

func (s *Service) Deactivate(ctx context.Context, targetID, requesterID string) (domain.User, error) {
	const action = "user.deactivate"

	target, err := s.resolveSelfTarget(ctx, targetID, requesterID)
	if err != nil {
		return domain.User{}, err
	}
	if !target.Active {
		return domain.User{}, domain.ErrAlreadyInactive()
	}

	target.Deactivate()
	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return domain.User{}, err
	}

	s.audit(action, map[string]string{"user_id": updated.ID, "result": "success"})
	return updated, nil
}

func (s *Service) Reactivate(ctx context.Context, targetID, requesterID string) (domain.User, error) {
	const action = "user.reactivate"

	target, err := s.resolveSelfTarget(ctx, targetID, requesterID)
	if err != nil {
		return domain.User{}, err
	}
	if target.Active {
		return domain.User{}, domain.ErrAlreadyActive()
	}

	target.Activate()
	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return domain.User{}, err
	}

	s.audit(action, map[string]string{"user_id": updated.ID, "result": "success"})
	return updated, nil
}

// HardDelete physically removes the record, active or not. Irreversible.
func (s *Service) HardDelete(ctx context.Context, targetID, requesterID string) (string, error) {
	const action = "user.hard_delete"

	target, err := s.resolveSelfTarget(ctx, targetID, requesterID)
	if err != nil {
		return "", err
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		return "", err
	}

	s.audit(action, map[string]string{"user_id": target.ID, "result": "success"})
	return target.ID, nil
}

// resolveSelfTarget enforces the self-only rule and loads the record.
// The permission check runs before the lookup so a non-owner learns
// nothing about the target's existence.
func (s *Service) resolveSelfTarget(ctx context.Context, targetID, requesterID string) (domain.User, error) {
	targetID = strings.TrimSpace(targetID)
	requesterID = strings.TrimSpace(requesterID)
	if targetID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if requesterID == "" {
		return domain.User{}, domain.ErrUnauthenticated()
	}
	if targetID != requesterID {
		return domain.User{}, domain.ErrNotSelf()
	}
	return s.users.GetByID(ctx, targetID)
}
