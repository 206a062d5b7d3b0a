package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/domain"
)

// stubSource serves a fixed catalog and counts page fetches.
type stubSource struct {
	mu      sync.Mutex
	videos  []domain.Video
	fetches int
	pageErr error
}

func newStubSource(n int) *stubSource {
	s := &stubSource{}
	for i := 0; i < n; i++ {
		s.videos = append(s.videos, domain.Video{
			ID:       fmt.Sprintf("vid%d", i+1),
			UserID:   "user1",
			Author:   domain.AuthorRef{Name: "SynthRiders"},
			MediaURL: fmt.Sprintf("https://example.com/v/%d.mp4", i+1),
			Caption:  fmt.Sprintf("clip %d", i+1),
		})
	}
	return s
}

func (s *stubSource) GetPage(_ context.Context, count, offset int) ([]domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	if offset >= len(s.videos) {
		return nil, nil
	}
	end := offset + count
	if end > len(s.videos) {
		end = len(s.videos)
	}
	out := make([]domain.Video, end-offset)
	copy(out, s.videos[offset:end])
	return out, nil
}

func (s *stubSource) GetByID(_ context.Context, id string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID == id {
			return v.Clone(), nil
		}
	}
	return domain.Video{}, domain.ErrNotFound
}

func (s *stubSource) Add(_ context.Context, userID, mediaURL, caption string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := domain.Video{
		ID:       fmt.Sprintf("vid%d", len(s.videos)+1),
		UserID:   userID,
		MediaURL: mediaURL,
		Caption:  caption,
	}
	s.videos = append([]domain.Video{v}, s.videos...)
	return v, nil
}

func (s *stubSource) ByUser(_ context.Context, userID string) ([]domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Video
	for _, v := range s.videos {
		if v.UserID == userID {
			out = append(out, v.Clone())
		}
	}
	return out, nil
}

func (s *stubSource) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

// stubSession is a logged-in session with controllable like outcomes.
type stubSession struct {
	user      domain.User
	signedOut bool
	liked     map[string]bool
	toggleErr error
}

func newStubSession() *stubSession {
	return &stubSession{
		user:  domain.User{ID: "user1", Name: "SynthRiders", Email: "synth@echo.chat"},
		liked: map[string]bool{},
	}
}

func (s *stubSession) Current() (domain.User, bool) {
	if s.signedOut {
		return domain.User{}, false
	}
	return s.user, true
}

func (s *stubSession) Login(context.Context, string, string) (domain.User, error) {
	return s.user, nil
}

func (s *stubSession) Signup(context.Context, string, string, string) (domain.User, error) {
	return s.user, nil
}

func (s *stubSession) Logout() error {
	s.signedOut = true
	return nil
}

func (s *stubSession) IsLiked(videoID string) bool {
	return s.liked[videoID]
}

func (s *stubSession) ToggleLike(_ context.Context, videoID string) (bool, error) {
	if s.toggleErr != nil {
		return false, s.toggleErr
	}
	s.liked[videoID] = !s.liked[videoID]
	return s.liked[videoID], nil
}

func (s *stubSession) UpdateProfile(_ context.Context, name, bio string) (domain.User, error) {
	s.user.Name = name
	s.user.Bio = bio
	return s.user, nil
}

// stubPlayer records calls; autoplay can be made to refuse.
type stubPlayer struct {
	blockAutoplay bool
	playing       string
	autoplays     []string
	plays         []string
	pauses        int
}

func (p *stubPlayer) Autoplay(url string) error {
	p.autoplays = append(p.autoplays, url)
	if p.blockAutoplay {
		return domain.ErrAutoplayBlocked
	}
	p.playing = url
	return nil
}

func (p *stubPlayer) Play(url string) error {
	p.plays = append(p.plays, url)
	p.playing = url
	return nil
}

func (p *stubPlayer) Pause() {
	p.pauses++
	p.playing = ""
}

// stubClipboard captures written text.
type stubClipboard struct {
	text string
	err  error
}

func (c *stubClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// fakeTracker lets tests hand-feed crossings without any geometry.
type fakeTracker struct {
	registered []string
	crossings  []Crossing
}

func (t *fakeTracker) Register(id string, _ Extent) {
	t.registered = append(t.registered, id)
}

func (t *fakeTracker) Unregister(id string) {
	for i, r := range t.registered {
		if r == id {
			t.registered = append(t.registered[:i], t.registered[i+1:]...)
			return
		}
	}
}

func (t *fakeTracker) Observe(int, int) []Crossing {
	out := t.crossings
	t.crossings = nil
	return out
}

func testDeps(source *stubSource, session *stubSession, player *stubPlayer) Deps {
	return Deps{
		Source:          source,
		Session:         session,
		Player:          player,
		Clipboard:       &stubClipboard{},
		BaseURL:         "https://echochamber.chat",
		InitialPageSize: 10,
		PageSize:        5,
	}
}

// runCmd executes a command synchronously and feeds every produced
// message back into the model, following batches.
func runCmd(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = runCmd(m, c)
		}
		return m
	}
	// Spinner ticks self-perpetuate; following them would never return.
	if _, ok := msg.(spinner.TickMsg); ok {
		return m
	}
	var next tea.Cmd
	m, next = m.Update(msg)
	return runCmd(m, next)
}

// seededModel builds a model and drives the initial fetch to completion.
func seededModel(source *stubSource, session *stubSession, player *stubPlayer) Model {
	m := New(testDeps(source, session, player))
	return runCmd(m, m.fetchSeed(0))
}
