package memory

import (
	"context"
	"sort"
	"sync"

	"userservice/internal/domain"
)

// UserRepo is the in-memory user.UserRepo implementation, used by tests
// and as the dev fallback when no database is configured.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // email -> userID
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		return domain.User{}, domain.ErrInternal(nil)
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

// List returns a page of active users in creation order.
func (r *UserRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		if u.Active {
			active = append(active, u)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].CreatedAt.Equal(active[j].CreatedAt) {
			return active[i].CreatedAt.Before(active[j].CreatedAt)
		}
		return active[i].ID < active[j].ID
	})

	if skip >= len(active) {
		return nil, nil
	}
	end := skip + limit
	if end > len(active) {
		end = len(active)
	}
	return active[skip:end], nil
}

// Update replaces the whole record. Uniqueness of a changed email is
// enforced here, mirroring the SQL unique index.
func (r *UserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[u.ID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if u.Email != old.Email {
		if owner, exists := r.byEmail[u.Email]; exists && owner != u.ID {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		delete(r.byEmail, old.Email)
		r.byEmail[u.Email] = u.ID
	}

	r.byID[u.ID] = u
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

func (r *UserRepo) CountActive(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, u := range r.byID {
		if u.Active {
			n++
		}
	}
	return n, nil
}
