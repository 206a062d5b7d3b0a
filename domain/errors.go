package domain

import "errors"

var (
	// ErrNotFound indicates a video or user id that is absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates an interaction attempted without a session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserExists indicates a signup with an email already in use.
	ErrUserExists = errors.New("an account with that email already exists")

	// ErrEmptyCaption indicates an upload without a caption.
	ErrEmptyCaption = errors.New("caption cannot be empty")

	// ErrAutoplayBlocked indicates the playback policy refused an autoplay attempt.
	ErrAutoplayBlocked = errors.New("autoplay blocked by policy")
)
