package app

import (
	"context"

	"github.com/KumailHaider61/echochamber/domain"
)

// UserStore persists Echo Chamber accounts.
type UserStore interface {
	// ByEmail returns the user with the given email, or domain.ErrNotFound.
	ByEmail(ctx context.Context, email string) (domain.User, error)

	// ByID returns the user with the given id, or domain.ErrNotFound.
	ByID(ctx context.Context, id string) (domain.User, error)

	// Create adds a new account. Name, email, password and avatar come
	// from the caller; counters start at zero.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Update replaces the stored user, including the liked-video set.
	Update(ctx context.Context, u domain.User) error
}
