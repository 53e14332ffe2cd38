package session

import (
	"context"
	"testing"

	"job-board/internal/pkg/jwt"

	"github.com/google/uuid"
)

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != nil {
		t.Fatalf("anonymous context must have no session")
	}

	id := uuid.New()
	ctx := WithSession(context.Background(), FromClaims(jwt.Claims{UserID: id, Email: "a@example.com"}))
	s := FromContext(ctx)
	if s == nil || s.User.ID != id || s.User.Email != "a@example.com" {
		t.Fatalf("unexpected session: %+v", s)
	}

	if FromClaims(jwt.Claims{}) != nil {
		t.Fatalf("claims without a user id must not produce a session")
	}
	if FromContext(WithSession(context.Background(), &Session{})) != nil {
		t.Fatalf("empty session must read as anonymous")
	}
}
