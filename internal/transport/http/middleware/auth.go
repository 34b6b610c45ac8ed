package middleware

import (
	"context"
	"net/http"
	"strings"

	usersvc "userservice/internal/application/user"
	"userservice/internal/domain"
	"userservice/internal/logger"
	"userservice/internal/transport/http/response"
)

// TokenVerifier checks an access token and returns its claims.
type TokenVerifier interface {
	VerifyAccessToken(token string) (usersvc.TokenClaims, error)
}

// UserLoader re-resolves the token subject against current state. A token
// is not trusted on its signature alone: the account must still exist and
// be active at request time.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// Auth is the gate in front of every protected route. Every failure mode
// (missing header, malformed token, expired token, unknown subject,
// inactive subject) collapses into the same 401 so callers cannot tell
// them apart.
func Auth(verifier TokenVerifier, users UserLoader) func(http.Handler) http.Handler {
	return gate(verifier, users, false)
}

// AuthAllowInactive is the gate for the reactivation route only: the owner
// of a deactivated account still holds a valid token and must be let
// through, so the subject-active check is skipped here.
func AuthAllowInactive(verifier TokenVerifier, users UserLoader) func(http.Handler) http.Handler {
	return gate(verifier, users, true)
}

func gate(verifier TokenVerifier, users UserLoader, allowInactive bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				response.WriteError(w, r, domain.ErrUnauthenticated())
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == "" {
				response.WriteError(w, r, domain.ErrUnauthenticated())
				return
			}

			claims, err := verifier.VerifyAccessToken(tokenStr)
			if err != nil {
				logger.WithCtx(r.Context()).Debug().Err(err).Msg("token rejected")
				response.WriteError(w, r, domain.ErrUnauthenticated())
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil || (!u.Active && !allowInactive) {
				response.WriteError(w, r, domain.ErrUnauthenticated())
				return
			}

			ctx := WithUser(r.Context(), u.ID, u.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
