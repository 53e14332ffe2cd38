// Package session carries the authenticated identity of a request.
//
// A Session only says who signed in. Role and organization are not part of
// it; they come from a fresh user-record fetch on every request.
package session

import (
	"context"

	"job-board/internal/pkg/jwt"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID
	Email string
}

type Session struct {
	User User
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns nil when the request is anonymous.
func FromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(ctxKey{}).(*Session)
	if s == nil || s.User.ID == uuid.Nil {
		return nil
	}
	return s
}

func FromClaims(c jwt.Claims) *Session {
	if c.UserID == uuid.Nil {
		return nil
	}
	return &Session{User: User{ID: c.UserID, Email: c.Email}}
}
