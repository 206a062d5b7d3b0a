package profile

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
)

// --- Tabs ---

type tab int

const (
	tabVideos tab = iota
	tabLiked
	tabEdit
)

// --- Messages ---

// DoneMsg is sent when the profile view closes.
type DoneMsg struct {
	LoggedOut bool
}

// WatchMsg asks the app to reseed the feed starting at a chosen video.
type WatchMsg struct {
	VideoID string
}

type loadedMsg struct {
	videos []domain.Video
	liked  []domain.Video
	err    error
}

type savedMsg struct {
	user domain.User
	err  error
}

// --- Model ---

// Model holds the state for the profile view.
type Model struct {
	source  app.VideoSource
	session app.SessionService

	user    domain.User
	tab     tab
	videos  []domain.Video
	liked   []domain.Video
	cursor  int
	loading bool
	err     error
	status  string

	nameInput textinput.Model
	bioInput  textinput.Model
	editFocus int
}

// New creates a profile view for the session user.
func New(source app.VideoSource, session app.SessionService, user domain.User) Model {
	name := textinput.New()
	name.SetValue(user.Name)
	name.CharLimit = 40

	bio := textinput.New()
	bio.SetValue(user.Bio)
	bio.CharLimit = 120

	return Model{
		source:    source,
		session:   session,
		user:      user,
		loading:   true,
		nameInput: name,
		bioInput:  bio,
	}
}

// Init loads the user's own and liked videos.
func (m Model) Init() tea.Cmd {
	source := m.source
	user := m.user
	return func() tea.Msg {
		ctx := context.Background()
		own, err := source.ByUser(ctx, user.ID)
		if err != nil {
			return loadedMsg{err: err}
		}
		var liked []domain.Video
		for _, id := range user.LikedVideos {
			v, err := source.GetByID(ctx, id)
			if err != nil {
				// A liked video can vanish from the catalog; skip it.
				continue
			}
			liked = append(liked, v)
		}
		return loadedMsg{videos: own, liked: liked}
	}
}

// Update handles messages for the profile view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		m.videos = msg.videos
		m.liked = msg.liked
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.user = msg.user
		m.status = "Profile updated."
		m.tab = tabVideos
		return m, nil

	case tea.KeyMsg:
		if m.tab == tabEdit {
			return m.updateEditKeys(msg)
		}
		return m.updateListKeys(msg)
	}
	return m, nil
}

func (m Model) updateListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, done(DoneMsg{})

	case "tab", "right":
		m = m.switchTab(m.tab + 1)
		return m, nil

	case "shift+tab", "left":
		m = m.switchTab(m.tab - 1)
		return m, nil

	case "j", "down":
		if m.cursor < len(m.currentList())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter":
		list := m.currentList()
		if m.cursor < len(list) {
			id := list[m.cursor].ID
			return m, func() tea.Msg { return WatchMsg{VideoID: id} }
		}
		return m, nil

	case "ctrl+l":
		session := m.session
		return m, func() tea.Msg {
			if err := session.Logout(); err != nil {
				return loadedMsg{err: err}
			}
			return DoneMsg{LoggedOut: true}
		}
	}
	return m, nil
}

func (m Model) updateEditKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.tab = tabVideos
		m.err = nil
		return m, nil

	case "tab", "shift+tab", "down", "up":
		if m.editFocus == 0 {
			m.editFocus = 1
			m.nameInput.Blur()
			m.bioInput.Focus()
		} else {
			m.editFocus = 0
			m.bioInput.Blur()
			m.nameInput.Focus()
		}
		return m, nil

	case "enter":
		name := m.nameInput.Value()
		bio := m.bioInput.Value()
		session := m.session
		return m, func() tea.Msg {
			user, err := session.UpdateProfile(context.Background(), name, bio)
			return savedMsg{user: user, err: err}
		}
	}

	var cmd tea.Cmd
	if m.editFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.bioInput, cmd = m.bioInput.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(t tab) Model {
	if t < tabVideos {
		t = tabEdit
	}
	if t > tabEdit {
		t = tabVideos
	}
	m.tab = t
	m.cursor = 0
	m.status = ""
	m.err = nil
	if t == tabEdit {
		m.editFocus = 0
		m.nameInput.SetValue(m.user.Name)
		m.bioInput.SetValue(m.user.Bio)
		m.nameInput.Focus()
		m.bioInput.Blur()
	}
	return m
}

func (m Model) currentList() []domain.Video {
	if m.tab == tabLiked {
		return m.liked
	}
	return m.videos
}

func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
