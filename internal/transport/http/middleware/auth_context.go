package middleware

import "context"

type ctxKey string

const (
	ctxUserID ctxKey = "userID"
	ctxEmail  ctxKey = "email"
)

// WithUser injects the authenticated principal into the context.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, userID)
	return context.WithValue(ctx, ctxEmail, email)
}

// UserIDFromContext retrieves the user ID set by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(ctxUserID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// EmailFromContext retrieves the email set by Auth.
func EmailFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(ctxEmail).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
