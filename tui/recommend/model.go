package recommend

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
)

// --- Messages ---

// DoneMsg is sent when the dialog closes.
type DoneMsg struct{}

// WatchMsg asks the app to reseed the feed at the recommended video.
type WatchMsg struct {
	VideoID string
}

type resultMsg struct {
	rec   app.Recommendation
	video domain.Video
	err   error
}

// --- Model ---

// Model holds the state for the "For You" recommendation dialog. One
// suggestion per request; a failure is shown inline with a manual retry.
type Model struct {
	recommender app.Recommender
	source      app.VideoSource
	activity    app.Activity

	spinner spinner.Model
	busy    bool
	rec     app.Recommendation
	video   domain.Video
	err     error
}

// New creates the dialog for a given activity snapshot.
func New(recommender app.Recommender, source app.VideoSource, activity app.Activity) Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF00FF"))
	return Model{
		recommender: recommender,
		source:      source,
		activity:    activity,
		spinner:     s,
		busy:        true,
	}
}

// Init starts the request and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

func (m Model) fetch() tea.Cmd {
	recommender := m.recommender
	source := m.source
	activity := m.activity
	return func() tea.Msg {
		ctx := context.Background()
		rec, err := recommender.Recommend(ctx, activity)
		if err != nil {
			return resultMsg{err: err}
		}
		video, err := source.GetByID(ctx, rec.VideoID)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{rec: rec, video: video}
	}
}

// Update handles messages for the dialog.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		m.busy = false
		m.err = msg.err
		m.rec = msg.rec
		m.video = msg.video
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return DoneMsg{} }

		case "r":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.err = nil
			return m, tea.Batch(m.fetch(), m.spinner.Tick)

		case "enter":
			if m.busy || m.err != nil || m.rec.VideoID == "" {
				return m, nil
			}
			id := m.rec.VideoID
			return m, func() tea.Msg { return WatchMsg{VideoID: id} }
		}
	}
	return m, nil
}
