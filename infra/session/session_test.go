package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/KumailHaider61/echochamber/domain"
	"github.com/KumailHaider61/echochamber/infra/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(store.NewMemory(), filepath.Join(t.TempDir(), "session.toml"))
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	s := newTestService(t)

	if _, ok := s.Current(); ok {
		t.Fatal("expected no session before login")
	}

	u, err := s.Login(context.Background(), "synth@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "SynthRiders" {
		t.Fatalf("wrong user: %s", u.Name)
	}

	got, ok := s.Current()
	if !ok || got.ID != u.ID {
		t.Fatal("session not persisted")
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("expected no session after logout")
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("logout without a session should be a no-op: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestService(t)

	if _, err := s.Login(context.Background(), "synth@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Login(context.Background(), "ghost@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email should read as invalid credentials, got %v", err)
	}
}

func TestSignupOpensSession(t *testing.T) {
	s := newTestService(t)

	u, err := s.Signup(context.Background(), "NewKid", "new@example.com", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Bio != "New to Echo Chamber!" {
		t.Fatalf("default bio missing: %q", u.Bio)
	}
	if got, ok := s.Current(); !ok || got.ID != u.ID {
		t.Fatal("signup should open a session")
	}

	if _, err := s.Signup(context.Background(), "Again", "new@example.com", "x"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestToggleLike(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Login(context.Background(), "cyber@example.com", "password123"); err != nil {
		t.Fatal(err)
	}

	liked, err := s.ToggleLike(context.Background(), "vid8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !liked || !s.IsLiked("vid8") {
		t.Fatal("first toggle should like")
	}

	liked, err = s.ToggleLike(context.Background(), "vid8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if liked || s.IsLiked("vid8") {
		t.Fatal("second toggle should return to unliked")
	}
}

func TestToggleLikeWithoutSession(t *testing.T) {
	s := newTestService(t)
	if _, err := s.ToggleLike(context.Background(), "vid1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if s.IsLiked("vid1") {
		t.Fatal("IsLiked must be false without a session")
	}
}

func TestUpdateProfileRefreshesCurrent(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Login(context.Background(), "neon@example.com", "password123"); err != nil {
		t.Fatal(err)
	}

	u, err := s.UpdateProfile(context.Background(), "NeonVibesPro", "brighter lights")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "NeonVibesPro" {
		t.Fatalf("name not updated: %s", u.Name)
	}

	// Current re-reads from the store, so the edit is visible immediately.
	got, _ := s.Current()
	if got.Name != "NeonVibesPro" || got.Bio != "brighter lights" {
		t.Fatal("profile edit not visible through Current")
	}
}

func TestAcquireLockRefusesSecondInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echochamber.lock")
	release, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release()

	if _, err := AcquireLock(path); err == nil {
		t.Fatal("second lock acquisition should fail")
	}
}
