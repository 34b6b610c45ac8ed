package user

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"userservice/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error
	updateErr     error
	deleteErr     error
	listErr       error
	countErr      error

	// record calls
	deletedIDs []string
	updated    []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) put(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var active []domain.User
	for _, u := range f.byID {
		if u.Active {
			active = append(active, u)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })

	if skip >= len(active) {
		return nil, nil
	}
	end := skip + limit
	if end > len(active) {
		end = len(active)
	}
	return active[skip:end], nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return domain.User{}, f.updateErr
	}
	old, ok := f.byID[u.ID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if old.Email != u.Email {
		delete(f.byEmail, old.Email)
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	f.updated = append(f.updated, u)
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.byID), nil
}

func (f *fakeUserRepo) CountActive(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, u := range f.byID {
		if u.Active {
			n++
		}
	}
	return n, nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signErr   error
	verifyErr error
	signed    int
}

func (f *fakeSigner) SignAccessToken(userID, email string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.signed++
	return fmt.Sprintf("tok:%s:%s", userID, email), nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	if f.verifyErr != nil {
		return TokenClaims{}, f.verifyErr
	}
	return TokenClaims{}, errors.New("not implemented in fake")
}

/*
Shared setup
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	svc := NewService(users, hasher, signer, Config{AccessTTL: 30 * time.Minute})
	return svc, users, hasher, signer
}

// seedActive stores an active user with the fake hasher's hash form.
func seedActive(repo *fakeUserRepo, id, email, password string) domain.User {
	u := domain.NewUser(id, email, "hash:"+password)
	repo.put(u)
	return u
}

func seedInactive(repo *fakeUserRepo, id, email, password string) domain.User {
	u := domain.NewUser(id, email, "hash:"+password)
	u.Deactivate()
	repo.put(u)
	return u
}
