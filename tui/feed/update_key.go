package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.commentFocus {
		return m.updateCommentKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.scrollLine += scrollStep
		m.clampScroll()
		return m.observe()

	case key.Matches(msg, m.keys.Up):
		m.scrollLine -= scrollStep
		m.clampScroll()
		return m.observe()

	case key.Matches(msg, m.keys.NextVideo):
		return m.snapTo(m.activeIndex() + 1)

	case key.Matches(msg, m.keys.PrevVideo):
		return m.snapTo(m.activeIndex() - 1)

	case key.Matches(msg, m.keys.TogglePlay):
		if idx := m.activeIndex(); idx >= 0 {
			if err := m.cells[idx].TogglePlay(m.deps.Player); err != nil {
				m.deps.Logger.Warn("playback failed", "video", m.activeID, "error", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Like):
		return m.toggleLike()

	case key.Matches(msg, m.keys.Comment):
		return m.openComments(), nil

	case key.Matches(msg, m.keys.Share):
		if idx := m.activeIndex(); idx >= 0 {
			return m, m.copyShareLink(m.cells[idx])
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.reseed("")
	}
	return m, nil
}

func (m Model) updateCommentKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	idx := m.activeIndex()
	if idx < 0 {
		m.commentFocus = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.cells[idx].ShowComments = false
		m.cells[idx].CommentInput.Blur()
		m.commentFocus = false
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitComment(idx)
	}

	var cmd tea.Cmd
	m.cells[idx].CommentInput, cmd = m.cells[idx].CommentInput.Update(msg)
	return m, cmd
}

func (m Model) activeIndex() int {
	return m.indexOf(m.activeID)
}

// snapTo scrolls so the given cell fills the top of the viewport and
// becomes active.
func (m Model) snapTo(idx int) (Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.cells) {
		return m, nil
	}
	m.scrollLine = idx * cellHeight
	m.clampScroll()
	m = m.setActive(m.cells[idx].Video.ID)
	return m.checkSentinel()
}

// toggleLike applies the flip locally first and reconciles when the
// store answers.
func (m Model) toggleLike() (Model, tea.Cmd) {
	idx := m.activeIndex()
	if idx < 0 {
		return m, nil
	}
	if _, ok := m.deps.Session.Current(); !ok {
		m.notice = "Sign in to like videos."
		return m, nil
	}
	id := m.cells[idx].Video.ID
	m.cells[idx].ApplyLike(!m.cells[idx].Liked)
	return m, m.persistLike(id)
}

func (m Model) openComments() Model {
	idx := m.activeIndex()
	if idx < 0 {
		return m
	}
	m.cells[idx].ShowComments = true
	m.cells[idx].CommentInput.Focus()
	m.commentFocus = true
	return m
}

func (m Model) submitComment(idx int) (Model, tea.Cmd) {
	user, ok := m.deps.Session.Current()
	if !ok {
		m.notice = "Sign in to comment."
		return m, nil
	}
	text := m.cells[idx].CommentInput.Value()
	if m.cells[idx].AddComment(text, user.Ref()) {
		m.cells[idx].CommentInput.SetValue("")
	}
	return m, nil
}
