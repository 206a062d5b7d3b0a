package feed

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/domain"
)

// fetchSeed loads the initial page. When a deep-link id is set, that
// video is resolved first and pinned to the top, with the regular first
// page (minus any duplicate) behind it. An unknown id falls back to the
// plain first page.
func (m Model) fetchSeed(seq int) tea.Cmd {
	source := m.deps.Source
	count := m.deps.InitialPageSize
	deepLink := m.deepLinkID
	return func() tea.Msg {
		ctx := context.Background()

		page, err := source.GetPage(ctx, count, 0)
		if err != nil {
			return SeedErrorMsg{Err: err, ReqSeq: seq}
		}
		if deepLink == "" {
			return SeedLoadedMsg{Videos: page, ReqSeq: seq}
		}

		pinned, err := source.GetByID(ctx, deepLink)
		if errors.Is(err, domain.ErrNotFound) {
			return SeedLoadedMsg{Videos: page, ReqSeq: seq}
		}
		if err != nil {
			return SeedErrorMsg{Err: err, ReqSeq: seq}
		}

		videos := make([]domain.Video, 0, len(page)+1)
		videos = append(videos, pinned)
		for _, v := range page {
			if v.ID != pinned.ID {
				videos = append(videos, v)
			}
		}
		return SeedLoadedMsg{Videos: videos, ReqSeq: seq}
	}
}

// fetchPage loads the next page after a simulated network delay. The
// offset is the caller's current item count, so concurrent fetches would
// request overlapping ranges; the loadingMore gate in the model keeps
// this to one in flight.
func (m Model) fetchPage(seq, offset int) tea.Cmd {
	source := m.deps.Source
	count := m.deps.PageSize
	delay := m.deps.NetworkDelay
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		page, err := source.GetPage(context.Background(), count, offset)
		if err != nil {
			return PageErrorMsg{Err: err, ReqSeq: seq}
		}
		return PageLoadedMsg{Videos: page, ReqSeq: seq}
	}
}

// persistLike records a toggled like through the session.
func (m Model) persistLike(id string) tea.Cmd {
	session := m.deps.Session
	return func() tea.Msg {
		liked, err := session.ToggleLike(context.Background(), id)
		return LikeResultMsg{ID: id, Liked: liked, Err: err}
	}
}

// copyShareLink writes the deep link for a video to the clipboard.
func (m Model) copyShareLink(c Cell) tea.Cmd {
	clip := m.deps.Clipboard
	link := c.ShareURL(m.deps.BaseURL)
	id := c.Video.ID
	return func() tea.Msg {
		return ShareResultMsg{ID: id, Err: clip.WriteText(link)}
	}
}
