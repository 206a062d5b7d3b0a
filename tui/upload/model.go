package upload

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
)

// --- Messages ---

// DoneMsg is sent when the upload flow completes or is cancelled.
type DoneMsg struct {
	Video     domain.Video
	Cancelled bool
	Err       error
}

type publishResultMsg struct {
	video domain.Video
	err   error
}

// --- Model ---

type focusField int

const (
	focusURL focusField = iota
	focusCaption
)

// Model holds the state for the upload form. There is no real file
// transfer; the creator points at a hosted media URL the way the seed
// catalog does.
type Model struct {
	source  app.VideoSource
	session app.SessionService

	mediaURL textinput.Model
	caption  textarea.Model
	focus    focusField
	busy     bool
	err      error
}

// New creates an upload form.
func New(source app.VideoSource, session app.SessionService) Model {
	url := textinput.New()
	url.Placeholder = "https://cdn.example.com/clip.mp4"
	url.CharLimit = 300
	url.Focus()

	caption := textarea.New()
	caption.Placeholder = "Say something about your video... #hashtags welcome"
	caption.CharLimit = 150
	caption.SetWidth(60)
	caption.SetHeight(3)

	return Model{
		source:   source,
		session:  session,
		mediaURL: url,
		caption:  caption,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the upload form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case publishResultMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, done(DoneMsg{Video: msg.video})

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{Cancelled: true})

		case "tab", "shift+tab":
			return m.cycleFocus(), nil

		case "ctrl+d":
			return m.publish()

		case "enter":
			if m.focus == focusURL {
				return m.cycleFocus(), nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.mediaURL, cmd = m.mediaURL.Update(msg)
	case focusCaption:
		m.caption, cmd = m.caption.Update(msg)
	}
	return m, cmd
}

func (m Model) cycleFocus() Model {
	if m.focus == focusURL {
		m.mediaURL.Blur()
		m.caption.Focus()
		m.focus = focusCaption
	} else {
		m.caption.Blur()
		m.mediaURL.Focus()
		m.focus = focusURL
	}
	return m
}

func (m Model) publish() (Model, tea.Cmd) {
	user, ok := m.session.Current()
	if !ok {
		m.err = domain.ErrUnauthorized
		return m, nil
	}
	caption := strings.TrimSpace(m.caption.Value())
	if caption == "" {
		m.err = domain.ErrEmptyCaption
		return m, nil
	}
	url := strings.TrimSpace(m.mediaURL.Value())
	if url == "" {
		url = defaultMediaURL
	}

	m.busy = true
	m.err = nil
	source := m.source
	return m, func() tea.Msg {
		video, err := source.Add(context.Background(), user.ID, url, caption)
		return publishResultMsg{video: video, err: err}
	}
}

// defaultMediaURL stands in when the creator leaves the URL blank, the
// same way the web uploader falls back to a sample clip.
const defaultMediaURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4"

func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
