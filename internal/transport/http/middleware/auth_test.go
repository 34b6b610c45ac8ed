package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usersvc "userservice/internal/application/user"
	"userservice/internal/domain"
	"userservice/internal/logger"
	"userservice/internal/transport/http/response"
)

/*
Auth middleware test cases:
1) Missing Authorization header → 401
2) Non-Bearer Authorization header → 401
3) Verifier rejects token → 401
4) Subject not found → 401
5) Subject inactive → 401
6) All failures carry the identical body (no probing)
7) Valid token + active subject injects user id/email and calls next
*/

func init() {
	logger.Init()
}

type stubVerifier struct {
	claims usersvc.TokenClaims
	err    error
}

func (v stubVerifier) VerifyAccessToken(string) (usersvc.TokenClaims, error) {
	return v.claims, v.err
}

type stubLoader struct {
	user domain.User
	err  error
}

func (l stubLoader) GetByID(context.Context, string) (domain.User, error) {
	return l.user, l.err
}

func okVerifier(userID string) stubVerifier {
	return stubVerifier{claims: usersvc.TokenClaims{UserID: userID, Email: userID + "@example.com"}}
}

func activeUser(id string) domain.User {
	return domain.NewUser(id, id+"@example.com", "hash")
}

func serve(mw func(http.Handler) http.Handler, next http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/users/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)
	return rr
}

func noCall(t *testing.T) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not be reached")
	})
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(okVerifier("u1"), stubLoader{user: activeUser("u1")})
	rr := serve(mw, noCall(t), "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_NonBearerHeader(t *testing.T) {
	mw := Auth(okVerifier("u1"), stubLoader{user: activeUser("u1")})
	rr := serve(mw, noCall(t), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_EmptyBearerToken(t *testing.T) {
	mw := Auth(okVerifier("u1"), stubLoader{user: activeUser("u1")})
	rr := serve(mw, noCall(t), "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_RejectedToken(t *testing.T) {
	mw := Auth(stubVerifier{err: domain.ErrTokenExpired()}, stubLoader{user: activeUser("u1")})
	rr := serve(mw, noCall(t), "Bearer whatever")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_SubjectGone(t *testing.T) {
	mw := Auth(okVerifier("u1"), stubLoader{err: domain.ErrUserNotFound()})
	rr := serve(mw, noCall(t), "Bearer whatever")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_SubjectInactive(t *testing.T) {
	u := activeUser("u1")
	u.Deactivate()
	mw := Auth(okVerifier("u1"), stubLoader{user: u})
	rr := serve(mw, noCall(t), "Bearer whatever")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Every rejection must be byte-identical; a client must not be able to
// distinguish a bad token from a deactivated account.
func TestAuth_FailuresIndistinguishable(t *testing.T) {
	inactive := activeUser("u1")
	inactive.Deactivate()

	gates := []func(http.Handler) http.Handler{
		Auth(okVerifier("u1"), stubLoader{user: activeUser("u1")}), // missing header case
		Auth(stubVerifier{err: domain.ErrTokenExpired()}, stubLoader{user: activeUser("u1")}),
		Auth(stubVerifier{err: domain.ErrTokenInvalid()}, stubLoader{user: activeUser("u1")}),
		Auth(okVerifier("u1"), stubLoader{err: domain.ErrUserNotFound()}),
		Auth(okVerifier("u1"), stubLoader{err: errors.New("db down")}),
		Auth(okVerifier("u1"), stubLoader{user: inactive}),
	}

	var bodies []string
	for i, mw := range gates {
		header := "Bearer tok"
		if i == 0 {
			header = ""
		}
		rr := serve(mw, noCall(t), header)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}
	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &body))
	assert.Equal(t, "unauthenticated", body.Code)
}

func TestAuth_Success(t *testing.T) {
	mw := Auth(okVerifier("u1"), stubLoader{user: activeUser("u1")})

	var gotID, gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotEmail, _ = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := serve(mw, next, "Bearer tok")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", gotID)
	assert.Equal(t, "u1@example.com", gotEmail)
}

func TestAuthAllowInactive_AdmitsInactiveSubject(t *testing.T) {
	u := activeUser("u1")
	u.Deactivate()
	mw := AuthAllowInactive(okVerifier("u1"), stubLoader{user: u})

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := serve(mw, next, "Bearer tok")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", gotID)
}

func TestAuthAllowInactive_StillRejectsBadToken(t *testing.T) {
	mw := AuthAllowInactive(stubVerifier{err: domain.ErrTokenInvalid()}, stubLoader{user: activeUser("u1")})
	rr := serve(mw, noCall(t), "Bearer tok")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	mw := RequestID()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRequestID_HonorsClientHeader(t *testing.T) {
	mw := RequestID()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	assert.Equal(t, "req-123", rr.Header().Get("X-Request-Id"))
}
