package app

// Player controls media playback for the feed. Autoplay is subject to a
// policy and may be refused; a user-gesture Play always wins and unlocks
// later autoplay attempts.
type Player interface {
	// Autoplay starts playback without a user gesture. Returns
	// domain.ErrAutoplayBlocked when the policy refuses.
	Autoplay(mediaURL string) error

	// Play starts playback on an explicit user gesture.
	Play(mediaURL string) error

	// Pause stops the current playback, if any.
	Pause()
}
