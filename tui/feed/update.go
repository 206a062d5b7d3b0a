package feed

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/domain"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m.observe()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SeedLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		return m.applySeed(msg.Videos)

	case SeedErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case PageLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		return m.appendPage(msg.Videos)

	case PageErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loadingMore = false
		m.notice = "Couldn't load more videos. Keep scrolling to retry."
		m.deps.Logger.Warn("page fetch failed", "error", msg.Err)
		// Re-arm so the next sighting of the tail retries the fetch.
		m.sentinel = Sentinel{}
		if len(m.cells) > 0 {
			m.sentinel.Attach(m.cells[len(m.cells)-1].Video.ID)
		}
		return m, nil

	case LikeResultMsg:
		return m.applyLikeResult(msg), nil

	case ShareResultMsg:
		if msg.Err != nil {
			m.notice = "Couldn't copy the link to the clipboard."
			m.deps.Logger.Warn("clipboard write failed", "video", msg.ID, "error", msg.Err)
		} else {
			m.notice = "Link copied to clipboard."
		}
		return m, nil

	case ReseedMsg:
		return m.reseed(msg.VideoID)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

// applySeed replaces the feed with the initial page and activates the
// first item.
func (m Model) applySeed(videos []domain.Video) (Model, tea.Cmd) {
	for _, c := range m.cells {
		m.tracker.Unregister(c.Video.ID)
	}
	m.cells = nil
	m.activeID = ""
	m.loading = false
	m.loadingMore = false
	m.err = nil
	m.scrollLine = 0
	m.sentinel = Sentinel{}

	for i, v := range videos {
		m.cells = append(m.cells, newCell(v, m.deps.Session.IsLiked(v.ID)))
		m.tracker.Register(v.ID, m.extentFor(i))
	}
	if len(m.cells) == 0 {
		return m, nil
	}
	m.sentinel.Attach(m.cells[len(m.cells)-1].Video.ID)

	// The first item is the active one after a seed, no matter how many
	// cells the viewport shows at once. Burn one observation so freshly
	// registered cells record their baseline fractions; last-crossing-wins
	// applies only to later scroll and resize events.
	m.tracker.Observe(m.scrollLine, m.viewportHeight())
	m = m.setActive(m.cells[0].Video.ID)
	return m.checkSentinel()
}

// appendPage adds a fetched page behind the current items. An empty page
// means the catalog is exhausted; the sentinel stays fired and nothing
// else changes.
func (m Model) appendPage(videos []domain.Video) (Model, tea.Cmd) {
	m.loadingMore = false
	if len(videos) == 0 {
		return m, nil
	}
	for _, v := range videos {
		// A deep-linked video pinned to the top shifts offsets by one,
		// so a later page can contain it again.
		if m.indexOf(v.ID) >= 0 {
			continue
		}
		m.cells = append(m.cells, newCell(v, m.deps.Session.IsLiked(v.ID)))
		m.tracker.Register(v.ID, m.extentFor(len(m.cells)-1))
	}
	if len(m.cells) > 0 {
		m.sentinel.Attach(m.cells[len(m.cells)-1].Video.ID)
	}
	return m.observe()
}

// reseed rebuilds the feed from scratch, optionally deep-linked.
func (m Model) reseed(videoID string) (Model, tea.Cmd) {
	m.deepLinkID = videoID
	m.loading = true
	m.loadingMore = false
	m.err = nil
	m.notice = ""
	m.commentFocus = false
	m.reqSeq++
	return m, tea.Batch(m.fetchSeed(m.reqSeq), m.spinner.Tick)
}

// observe reruns visibility over the current viewport. The last crossing
// wins when several cells cross in one observation.
func (m Model) observe() (Model, tea.Cmd) {
	crossings := m.tracker.Observe(m.scrollLine, m.viewportHeight())
	if len(crossings) > 0 {
		m = m.setActive(crossings[len(crossings)-1].ID)
	}
	return m.checkSentinel()
}

// setActive transfers playback eligibility to the given cell. Unknown
// ids are ignored so a stale crossing cannot disturb current state.
func (m Model) setActive(id string) Model {
	idx := m.indexOf(id)
	if idx < 0 || id == m.activeID {
		return m
	}
	if prev := m.indexOf(m.activeID); prev >= 0 {
		m.cells[prev].Deactivate(m.deps.Player)
	}
	m.activeID = id
	if err := m.cells[idx].Activate(m.deps.Player); err != nil {
		if errors.Is(err, domain.ErrAutoplayBlocked) {
			m.deps.Logger.Info("autoplay blocked", "video", id)
		} else {
			m.deps.Logger.Warn("playback failed", "video", id, "error", err)
		}
	}
	return m
}

// checkSentinel fires the tail sentinel when any part of the last cell
// is on screen, then kicks a fetch if none is in flight.
func (m Model) checkSentinel() (Model, tea.Cmd) {
	if len(m.cells) == 0 {
		return m, nil
	}
	last := len(m.cells) - 1
	frac := visibleFraction(m.extentFor(last), m.scrollLine, m.viewportHeight())
	if !m.sentinel.Observe(m.cells[last].Video.ID, frac) {
		return m, nil
	}
	return m.loadMore()
}

// loadMore starts a page fetch unless one is already running.
func (m Model) loadMore() (Model, tea.Cmd) {
	if m.loading || m.loadingMore {
		return m, nil
	}
	m.loadingMore = true
	m.reqSeq++
	return m, m.fetchPage(m.reqSeq, len(m.cells))
}

// applyLikeResult reconciles an optimistic like with the store outcome.
func (m Model) applyLikeResult(msg LikeResultMsg) Model {
	idx := m.indexOf(msg.ID)
	if idx < 0 {
		return m
	}
	if msg.Err != nil {
		// Roll the optimistic flip back.
		m.cells[idx].ApplyLike(!m.cells[idx].Liked)
		if errors.Is(msg.Err, domain.ErrUnauthorized) {
			m.notice = "Sign in to like videos."
		} else {
			m.notice = "Couldn't save your like. Try again."
			m.deps.Logger.Warn("like failed", "video", msg.ID, "error", msg.Err)
		}
		return m
	}
	m.cells[idx].ApplyLike(msg.Liked)
	return m
}
