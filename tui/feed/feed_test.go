package feed

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/domain"
)

func TestSeedLoadsInitialPage(t *testing.T) {
	source := newStubSource(20)
	m := seededModel(source, newStubSession(), &stubPlayer{})

	if got := len(m.Videos()); got != 10 {
		t.Fatalf("expected 10 seeded videos, got %d", got)
	}
	if m.ActiveID() != "vid1" {
		t.Fatalf("expected first video active, got %q", m.ActiveID())
	}
	if m.loading {
		t.Fatal("expected loading to clear")
	}
}

func TestSeedActivatesFirstItemInTallViewport(t *testing.T) {
	source := newStubSource(20)
	player := &stubPlayer{}
	m := New(testDeps(source, newStubSession(), player))

	// The window size lands before the seed resolves, so several cells
	// are fully visible the moment they register. The first item still
	// wins; last-crossing-wins is for scroll and resize, not seeding.
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = runCmd(m, m.fetchSeed(0))

	if m.ActiveID() != "vid1" {
		t.Fatalf("expected the first seeded video active, got %q", m.ActiveID())
	}
	if len(player.autoplays) != 1 {
		t.Fatalf("expected a single autoplay for the first video, got %v", player.autoplays)
	}
	if !m.cells[0].Playing {
		t.Fatal("expected the first cell playing after the seed")
	}
}

func TestSeedActivationAutoplays(t *testing.T) {
	player := &stubPlayer{}
	m := seededModel(newStubSource(20), newStubSession(), player)

	if len(player.autoplays) != 1 {
		t.Fatalf("expected one autoplay, got %d", len(player.autoplays))
	}
	idx := m.indexOf(m.ActiveID())
	if !m.cells[idx].Playing {
		t.Fatal("expected active cell playing")
	}
}

func TestSeedAutoplayBlockLeavesPaused(t *testing.T) {
	player := &stubPlayer{blockAutoplay: true}
	m := seededModel(newStubSource(20), newStubSession(), player)

	if m.ActiveID() != "vid1" {
		t.Fatal("a blocked autoplay must not disturb active status")
	}
	if m.cells[0].Playing {
		t.Fatal("expected the active cell paused under a blocked policy")
	}
}

func TestDeepLinkPinsVideoFirst(t *testing.T) {
	source := newStubSource(20)
	deps := testDeps(source, newStubSession(), &stubPlayer{})
	deps.DeepLinkID = "vid3"
	m := New(deps)
	m = runCmd(m, m.fetchSeed(0))

	videos := m.Videos()
	if videos[0].ID != "vid3" {
		t.Fatalf("expected deep-linked video first, got %q", videos[0].ID)
	}
	for i, v := range videos[1:] {
		if v.ID == "vid3" {
			t.Fatalf("deep-linked video duplicated at position %d", i+1)
		}
	}
	if m.ActiveID() != "vid3" {
		t.Fatalf("expected deep-linked video active, got %q", m.ActiveID())
	}
}

func TestDeepLinkUnknownFallsBack(t *testing.T) {
	source := newStubSource(20)
	deps := testDeps(source, newStubSession(), &stubPlayer{})
	deps.DeepLinkID = "no-such-video"
	m := New(deps)
	m = runCmd(m, m.fetchSeed(0))

	if m.err != nil {
		t.Fatalf("unknown deep link must not error: %v", m.err)
	}
	if got := m.Videos(); len(got) != 10 || got[0].ID != "vid1" {
		t.Fatalf("expected the plain first page, got %d starting with %q", len(got), got[0].ID)
	}
}

func TestSentinelTriggersSingleFetch(t *testing.T) {
	source := newStubSource(20)
	m := seededModel(source, newStubSession(), &stubPlayer{})
	before := source.fetchCount()

	// A viewport tall enough to show the tail fires the sentinel.
	m, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 200})
	if cmd == nil {
		t.Fatal("expected a page fetch to start")
	}
	if !m.LoadingMore() {
		t.Fatal("expected loadingMore while the fetch is in flight")
	}

	// The gate keeps a second fetch from starting while one is in flight.
	m2, cmd2 := m.loadMore()
	if cmd2 != nil {
		t.Fatal("expected no second fetch while one is in flight")
	}
	m = m2

	m = runCmd(m, cmd)
	if source.fetchCount() != before+1 {
		t.Fatalf("expected exactly one extra fetch, got %d", source.fetchCount()-before)
	}
	if m.LoadingMore() {
		t.Fatal("expected loadingMore to clear")
	}
	if got := len(m.Videos()); got != 15 {
		t.Fatalf("expected 15 videos after one page, got %d", got)
	}
}

func TestLastCrossingWins(t *testing.T) {
	m := seededModel(newStubSource(20), newStubSession(), &stubPlayer{})

	// A tall viewport makes every cell cross in one observation; the
	// last one reported becomes active.
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 200})
	if m.ActiveID() != "vid10" {
		t.Fatalf("expected last crossing to win, got %q", m.ActiveID())
	}
}

func TestInjectedTrackerLastCrossingWins(t *testing.T) {
	tr := &fakeTracker{}
	deps := testDeps(newStubSource(20), newStubSession(), &stubPlayer{})
	deps.Tracker = tr
	m := New(deps)
	m = runCmd(m, m.fetchSeed(0))

	tr.crossings = []Crossing{
		{ID: "vid5", Fraction: 0.9},
		{ID: "vid2", Fraction: 0.85},
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.ActiveID() != "vid2" {
		t.Fatalf("expected the last reported crossing active, got %q", m.ActiveID())
	}
}

func TestSetActiveUnknownIDIsNoOp(t *testing.T) {
	m := seededModel(newStubSource(20), newStubSession(), &stubPlayer{})

	got := m.setActive("removed-long-ago")
	if got.ActiveID() != m.ActiveID() {
		t.Fatal("unknown id must not change active state")
	}
}

func TestStalePageResponseIgnored(t *testing.T) {
	m := seededModel(newStubSource(20), newStubSession(), &stubPlayer{})
	before := len(m.Videos())

	m, _ = m.Update(PageLoadedMsg{
		Videos: []domain.Video{{ID: "stale"}},
		ReqSeq: m.reqSeq + 7,
	})
	if len(m.Videos()) != before {
		t.Fatal("a stale page response must be dropped")
	}
}

func TestEmptyPageCompletesQuietly(t *testing.T) {
	source := newStubSource(10)
	m := seededModel(source, newStubSession(), &stubPlayer{})

	m, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 200})
	m = runCmd(m, cmd)

	if m.err != nil || m.notice != "" {
		t.Fatalf("an exhausted catalog must stay quiet, got err=%v notice=%q", m.err, m.notice)
	}
	if m.LoadingMore() {
		t.Fatal("expected loadingMore to clear on an empty page")
	}
	if got := len(m.Videos()); got != 10 {
		t.Fatalf("expected the feed unchanged, got %d", got)
	}

	// The fired sentinel keeps an unchanged tail from refetching.
	before := source.fetchCount()
	m, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 220})
	m = runCmd(m, cmd)
	if source.fetchCount() != before {
		t.Fatal("an exhausted tail must not refetch")
	}
}

func TestPageErrorNoticesAndRearms(t *testing.T) {
	source := newStubSource(20)
	m := seededModel(source, newStubSession(), &stubPlayer{})

	source.mu.Lock()
	source.pageErr = errors.New("connection reset")
	source.mu.Unlock()

	m, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 200})
	m = runCmd(m, cmd)
	if m.notice == "" {
		t.Fatal("expected a retry notice after a failed page")
	}
	if m.err != nil {
		t.Fatal("a failed page must not take down the feed")
	}

	source.mu.Lock()
	source.pageErr = nil
	source.mu.Unlock()

	m, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 220})
	m = runCmd(m, cmd)
	if got := len(m.Videos()); got != 15 {
		t.Fatalf("expected the re-armed sentinel to retry, got %d videos", got)
	}
}

func TestLikePersistsOptimistically(t *testing.T) {
	session := newStubSession()
	m := seededModel(newStubSource(20), session, &stubPlayer{})

	m, cmd := m.toggleLike()
	if !m.cells[0].Liked || m.cells[0].Video.LikeCount != 1 {
		t.Fatal("expected an immediate optimistic like")
	}
	m = runCmd(m, cmd)
	if !m.cells[0].Liked || m.cells[0].Video.LikeCount != 1 {
		t.Fatal("expected the like to stick once persisted")
	}
	if !session.IsLiked("vid1") {
		t.Fatal("expected the session to record the like")
	}
}

func TestLikeDoubleToggleNetsToZero(t *testing.T) {
	session := newStubSession()
	m := seededModel(newStubSource(20), session, &stubPlayer{})

	m, cmd := m.toggleLike()
	m = runCmd(m, cmd)
	m, cmd = m.toggleLike()
	m = runCmd(m, cmd)

	if m.cells[0].Liked || m.cells[0].Video.LikeCount != 0 {
		t.Fatalf("expected original state after a double toggle, got liked=%v count=%d",
			m.cells[0].Liked, m.cells[0].Video.LikeCount)
	}
	if session.IsLiked("vid1") {
		t.Fatal("expected the session like cleared")
	}
}

func TestLikeRollsBackOnError(t *testing.T) {
	session := newStubSession()
	session.toggleErr = errors.New("disk full")
	m := seededModel(newStubSource(20), session, &stubPlayer{})

	m, cmd := m.toggleLike()
	m = runCmd(m, cmd)
	if m.cells[0].Liked || m.cells[0].Video.LikeCount != 0 {
		t.Fatal("expected the optimistic like rolled back")
	}
	if m.notice == "" {
		t.Fatal("expected a notice for the failed like")
	}
}

func TestLikeSignedOutIsNoOp(t *testing.T) {
	session := newStubSession()
	session.signedOut = true
	m := seededModel(newStubSource(20), session, &stubPlayer{})

	m, cmd := m.toggleLike()
	if cmd != nil {
		t.Fatal("a signed-out like must not reach the store")
	}
	if m.cells[0].Liked || m.cells[0].Video.LikeCount != 0 {
		t.Fatal("a signed-out like must not change the cell")
	}
	if m.notice == "" {
		t.Fatal("expected a sign-in notice")
	}
}

func TestShareCopiesDeepLink(t *testing.T) {
	clip := &stubClipboard{}
	deps := testDeps(newStubSource(20), newStubSession(), &stubPlayer{})
	deps.Clipboard = clip
	m := New(deps)
	m = runCmd(m, m.fetchSeed(0))

	m = runCmd(m, m.copyShareLink(m.cells[0]))
	want := "https://echochamber.chat/home?videoId=vid1"
	if clip.text != want {
		t.Fatalf("clipboard = %q, want %q", clip.text, want)
	}
	if m.notice == "" {
		t.Fatal("expected a copied notice")
	}
}

func TestReseedDeepLinksAndInvalidatesInFlight(t *testing.T) {
	source := newStubSource(20)
	m := seededModel(source, newStubSession(), &stubPlayer{})

	// Start a page fetch, then reseed before it lands.
	m, pageCmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 200})
	m, seedCmd := m.Update(ReseedMsg{VideoID: "vid7"})

	// The stale page lands after the reseed and must be dropped.
	m = runCmd(m, seedCmd)
	m = runCmd(m, pageCmd)

	videos := m.Videos()
	if videos[0].ID != "vid7" {
		t.Fatalf("expected reseeded feed pinned to vid7, got %q", videos[0].ID)
	}
	if got := len(videos); got != 10 {
		t.Fatalf("expected a fresh 10-video feed, got %d", got)
	}
}

func TestCommentSheetFlow(t *testing.T) {
	m := seededModel(newStubSource(20), newStubSession(), &stubPlayer{})

	m = m.openComments()
	if !m.CommentSheetOpen() || !m.cells[0].ShowComments {
		t.Fatal("expected the comment sheet open with focus")
	}

	m.cells[0].CommentInput.SetValue("love this")
	m, _ = m.submitComment(0)
	if m.cells[0].Video.CommentCount != 1 {
		t.Fatalf("expected comment count 1, got %d", m.cells[0].Video.CommentCount)
	}
	if got := m.cells[0].CommentInput.Value(); got != "" {
		t.Fatalf("expected the input cleared, got %q", got)
	}

	// Whitespace leaves everything untouched, input included.
	m.cells[0].CommentInput.SetValue("   ")
	m, _ = m.submitComment(0)
	if m.cells[0].Video.CommentCount != 1 {
		t.Fatal("whitespace-only comment must not post")
	}
	if got := m.cells[0].CommentInput.Value(); got != "   " {
		t.Fatalf("whitespace-only input must stay, got %q", got)
	}
}
