package player

import (
	"sync"

	"github.com/KumailHaider61/echochamber/domain"
)

// Headless simulates media playback with a browser-like autoplay policy:
// unmuted autoplay is refused until the user has played something by hand,
// then later autoplay attempts succeed. There is no real decode pipeline;
// the feed only needs the state transitions.
type Headless struct {
	mu       sync.Mutex
	unlocked bool
	current  string
}

// New returns a player. allowAutoplay skips the gesture requirement.
func New(allowAutoplay bool) *Headless {
	return &Headless{unlocked: allowAutoplay}
}

// Autoplay implements app.Player.
func (p *Headless) Autoplay(mediaURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.unlocked {
		return domain.ErrAutoplayBlocked
	}
	p.current = mediaURL
	return nil
}

// Play implements app.Player. A user gesture always wins and unlocks
// future autoplay attempts.
func (p *Headless) Play(mediaURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unlocked = true
	p.current = mediaURL
	return nil
}

// Pause implements app.Player.
func (p *Headless) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = ""
}

// Current returns the media URL being played, or "" when paused.
func (p *Headless) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
