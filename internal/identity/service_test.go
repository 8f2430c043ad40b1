package identity

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Register(ctx, Credentials{Username: "alice", Password: "pw123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if user.PasswordHash == "pw123" {
		t.Fatalf("password stored as plaintext")
	}

	authed, err := svc.Authenticate(ctx, Credentials{Username: "alice", Password: "pw123"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, authed.ID)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	cases := []Credentials{
		{Username: "", Password: "pw123"},
		{Username: "alice", Password: ""},
		{Username: "   ", Password: "pw123"},
		{},
	}
	for _, creds := range cases {
		if _, err := svc.Register(ctx, creds); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("creds %+v: expected ErrMissingCredentials, got %v", creds, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Username: "alice", Password: "pw123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, Credentials{Username: "alice", Password: "pw999"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The original record is untouched.
	user, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if _, err := svc.Authenticate(ctx, Credentials{Username: "alice", Password: "pw123"}); err != nil {
		t.Fatalf("authenticate after conflict: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected username %q", user.Username)
	}
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Username: "alice", Password: "pw123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := svc.Authenticate(ctx, Credentials{Username: "alice", Password: "wrong"})
	_, unknownUser := svc.Authenticate(ctx, Credentials{Username: "bob", Password: "pw123"})

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, unknownUser)
	}
}

func TestConcurrentRegistrationSameUsername(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, Credentials{Username: "alice", Password: "pw123"})
		}(i)
	}
	wg.Wait()

	var success, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrUsernameTaken):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", success)
	}
	if conflict != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflict)
	}
}
