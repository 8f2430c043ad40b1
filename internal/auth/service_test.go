package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatehouse/gatehouse/internal/identity"
)

func TestLoginIssuesTokenForStoredUser(t *testing.T) {
	repo := identity.NewMemoryRepository()
	ids := identity.NewService(repo)
	issuer := NewIssuer([]byte("test-secret"), time.Minute)
	svc := NewService(ids, issuer)

	ctx := context.Background()
	user, err := ids.Register(ctx, identity.Credentials{Username: "alice", Password: "pw123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(ctx, identity.Credentials{Username: "alice", Password: "pw123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected access token")
	}

	userID, err := issuer.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token identity mismatch: got %q want %q", userID, user.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := identity.NewMemoryRepository()
	ids := identity.NewService(repo)
	svc := NewService(ids, NewIssuer([]byte("test-secret"), time.Minute))

	ctx := context.Background()
	if _, err := ids.Register(ctx, identity.Credentials{Username: "alice", Password: "pw123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, identity.Credentials{Username: "alice", Password: "wrong"}); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, identity.Credentials{Username: "nobody", Password: "pw123"}); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}
