package app

import (
	"context"

	"github.com/KumailHaider61/echochamber/domain"
)

// VideoSource provides paginated access to the video catalog.
type VideoSource interface {
	// GetPage returns up to count videos starting at offset, in stable
	// catalog order. An exhausted offset returns an empty page, not an error.
	GetPage(ctx context.Context, count, offset int) ([]domain.Video, error)

	// GetByID returns the video with the given id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Video, error)

	// Add publishes a new video for the given creator. New videos land at
	// the front of the catalog.
	Add(ctx context.Context, userID, mediaURL, caption string) (domain.Video, error)

	// ByUser returns all videos published by the given creator, newest first.
	ByUser(ctx context.Context, userID string) ([]domain.Video, error)
}
