package app

import (
	"context"

	"github.com/KumailHaider61/echochamber/domain"
)

// SessionService owns the single authenticated session of a running
// instance. Current is a synchronous re-read; there are no change
// notifications, callers re-query whenever they need fresh state.
type SessionService interface {
	// Current returns the authenticated user, re-read from the backing
	// store, or false when nobody is signed in.
	Current() (domain.User, bool)

	// Login authenticates by email and password and opens a session.
	Login(ctx context.Context, email, password string) (domain.User, error)

	// Signup creates an account and opens a session for it.
	Signup(ctx context.Context, name, email, password string) (domain.User, error)

	// Logout discards the session. Safe to call without one.
	Logout() error

	// IsLiked reports whether the session user has liked the video.
	// Always false without a session.
	IsLiked(videoID string) bool

	// ToggleLike flips the session user's liked flag for the video and
	// returns the new state. domain.ErrUnauthorized without a session.
	ToggleLike(ctx context.Context, videoID string) (bool, error)

	// UpdateProfile updates the session user's display name and bio.
	UpdateProfile(ctx context.Context, name, bio string) (domain.User, error)
}
