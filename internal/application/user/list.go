package user

import (
	"context"
	"fmt"

	"userservice/internal/domain"
)

type ListResult struct {
	Users   []domain.User
	Total   int // total count of active users, not of the returned page
	HasMore bool
}

// List returns a page of active users. No ordering guarantee beyond the
// stability of the underlying store between calls.
func (s *Service) List(ctx context.Context, requesterID string, skip, limit int) (ListResult, error) {
	if skip < 0 {
		return ListResult{}, domain.ErrInvalidPagination("skip must be >= 0")
	}
	if limit < 1 || limit > listLimitMax {
		return ListResult{}, domain.ErrInvalidPagination(fmt.Sprintf("limit must be in [1,%d]", listLimitMax))
	}

	if _, err := s.requireActiveRequester(ctx, requesterID); err != nil {
		return ListResult{}, err
	}

	page, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return ListResult{}, err
	}

	total, err := s.users.CountActive(ctx)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Users:   page,
		Total:   total,
		HasMore: skip+len(page) < total,
	}, nil
}
