package auth

import (
	"context"
	"time"
)

// Session is the authenticated admin session carried by a request
type Session struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Remaining returns how long the session stays valid from now
func (s *Session) Remaining(now time.Time) time.Duration {
	if now.After(s.ExpiresAt) {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}

type contextKey string

const sessionContextKey contextKey = "adminSession"

// WithSession adds the session to the context
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// FromContext extracts the session from the context
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*Session)
	return session, ok
}
