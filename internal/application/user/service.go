package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"userservice/internal/domain"
)

const (
	passwordMinLen = 6
	passwordMaxLen = 128

	listLimitMax = 100
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
	audit     func(action string, fields map[string]string)
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		accessTTL: ttl,
		audit:     func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// AuthToken is the token output for handler/DTO mapping.
type AuthToken struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}

// normalizeEmail lowercases and trims; the stored form of every email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail is a syntactic well-formedness check, not full RFC parsing.
// The address must have a non-empty local part and a dotted domain.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	dom := email[at+1:]
	if strings.Contains(dom, "@") {
		return false
	}
	dot := strings.Index(dom, ".")
	return dot > 0 && dot < len(dom)-1
}

func validatePassword(password string) error {
	if password == "" {
		return domain.ErrMissingField("password")
	}
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return domain.ErrPasswordLength(passwordMinLen, passwordMaxLen)
	}
	return nil
}

// requireActiveRequester resolves the requesting user and rejects missing
// or inactive requesters. Use cases call this before any permission check.
func (s *Service) requireActiveRequester(ctx context.Context, requesterID string) (domain.User, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return domain.User{}, domain.ErrUnauthenticated()
	}
	req, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return domain.User{}, domain.ErrUnauthenticated()
		}
		return domain.User{}, err
	}
	if !req.Active {
		return domain.User{}, domain.ErrAccountInactive()
	}
	return req, nil
}

func domainCode(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
