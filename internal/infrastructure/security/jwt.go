package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userservice/internal/application/user"
	"userservice/internal/domain"
)

// tokenPurpose tags access tokens; verification rejects anything else.
const tokenPurpose = "access"

type JWTSigner struct {
	secret []byte
	issuer string
}

func NewJWTSigner(secret string, issuer string) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type accessClaims struct {
	UserID  string `json:"uid"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) SignAccessToken(userID string, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID:  userID,
		Email:   email,
		Purpose: tokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// VerifyAccessToken keeps the expired/invalid distinction in its error for
// internal logging; the security gate collapses both before they surface.
func (s *JWTSigner) VerifyAccessToken(token string) (user.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.TokenClaims{}, domain.ErrTokenExpired()
		}
		return user.TokenClaims{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return user.TokenClaims{}, domain.ErrTokenInvalid()
	}
	if claims.Purpose != tokenPurpose {
		return user.TokenClaims{}, domain.ErrTokenInvalid()
	}

	out := user.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.Exp = claims.ExpiresAt.Time
	}
	return out, nil
}
