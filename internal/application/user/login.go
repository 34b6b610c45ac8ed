package user

import (
	"context"

	"userservice/internal/domain"
)

type LoginResult struct {
	User  domain.User
	Token AuthToken
}

// Login authenticates a user and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration):
// a missing account and a wrong password produce the identical error.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	const action = "user.login"

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}
	if !validEmail(email) {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Hide not-found behind invalid credentials.
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if !u.Active {
		s.audit(action, map[string]string{"user_id": u.ID, "result": "inactive"})
		return LoginResult{}, domain.ErrAccountInactive()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		s.audit(action, map[string]string{"user_id": u.ID, "result": "bad_password"})
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	access, err := s.signer.SignAccessToken(u.ID, u.Email, s.accessTTL)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	s.audit(action, map[string]string{"user_id": u.ID, "result": "success"})
	return LoginResult{
		User: u,
		Token: AuthToken{
			AccessToken: access,
			TokenType:   "Bearer",
			ExpiresIn:   int64(s.accessTTL.Seconds()),
		},
	}, nil
}
