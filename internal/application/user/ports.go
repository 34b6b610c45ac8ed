package user

import (
	"context"
	"time"

	"userservice/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the service needs, not HOW it's stored.

Email uniqueness is enforced here (unique index in the SQL implementation);
the use-case duplicate check is an advisory fast path only.
List returns a page of ACTIVE users in creation order.
*/
type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2. Compare returns nil on match; any failure
(wrong password, malformed hash) is the same opaque error.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + security gate middleware.
*/
type TokenClaims struct {
	UserID   string
	Email    string
	IssuedAt time.Time
	Exp      time.Time
}

type TokenSigner interface {
	SignAccessToken(userID string, email string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
