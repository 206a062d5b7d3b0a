package player

import (
	"errors"
	"testing"

	"github.com/KumailHaider61/echochamber/domain"
)

func TestAutoplayBlockedBeforeGesture(t *testing.T) {
	p := New(false)
	if err := p.Autoplay("a.mp4"); !errors.Is(err, domain.ErrAutoplayBlocked) {
		t.Fatalf("expected ErrAutoplayBlocked, got %v", err)
	}
	if p.Current() != "" {
		t.Fatal("blocked autoplay must not start playback")
	}
}

func TestGestureUnlocksAutoplay(t *testing.T) {
	p := New(false)
	if err := p.Play("a.mp4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Autoplay("b.mp4"); err != nil {
		t.Fatalf("autoplay should succeed after a gesture: %v", err)
	}
	if p.Current() != "b.mp4" {
		t.Fatalf("wrong current media: %s", p.Current())
	}
}

func TestAllowAutoplayPolicy(t *testing.T) {
	p := New(true)
	if err := p.Autoplay("a.mp4"); err != nil {
		t.Fatalf("permissive policy should allow autoplay: %v", err)
	}
	p.Pause()
	if p.Current() != "" {
		t.Fatal("pause should clear current media")
	}
}
