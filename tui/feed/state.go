package feed

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
	"github.com/KumailHaider61/echochamber/tui/common"
)

const (
	defaultInitialPageSize = 10
	defaultPageSize        = 5

	// cellHeight is the rendered height of one video cell including its
	// border. Tracker extents are derived from it, so view rendering and
	// visibility arithmetic share one number.
	cellHeight = 12

	// scrollStep is how many lines a plain up/down key moves the viewport.
	// Smaller than a cell so the activation threshold actually matters.
	scrollStep = 3
)

// --- Messages ---

// SeedLoadedMsg is sent when the initial (possibly deep-linked) page is ready.
type SeedLoadedMsg struct {
	Videos []domain.Video
	ReqSeq int
}

// SeedErrorMsg is sent when the initial fetch fails.
type SeedErrorMsg struct {
	Err    error
	ReqSeq int
}

// PageLoadedMsg is sent when a follow-up page arrives.
type PageLoadedMsg struct {
	Videos []domain.Video
	ReqSeq int
}

// PageErrorMsg is sent when a follow-up page fetch fails.
type PageErrorMsg struct {
	Err    error
	ReqSeq int
}

// LikeResultMsg is sent after the session persisted (or failed to
// persist) a like toggle.
type LikeResultMsg struct {
	ID    string
	Liked bool
	Err   error
}

// ShareResultMsg is sent after a clipboard write attempt.
type ShareResultMsg struct {
	ID  string
	Err error
}

// ReseedMsg rebuilds the feed, optionally deep-linked to one video. The
// recommendation dialog and the upload flow send it.
type ReseedMsg struct {
	VideoID string
}

// --- Model ---

// Deps holds everything the feed needs. Plain struct, not a DI container.
type Deps struct {
	Source    app.VideoSource
	Session   app.SessionService
	Player    app.Player
	Clipboard app.Clipboard
	Logger    *slog.Logger

	// Tracker may be injected for tests; nil means geometry tracking.
	Tracker Tracker

	BaseURL         string
	DeepLinkID      string
	InitialPageSize int
	PageSize        int
	NetworkDelay    time.Duration
}

// Model holds the state for the feed view.
type Model struct {
	deps    Deps
	keys    common.KeyMap
	spinner spinner.Model

	cells       []Cell
	activeID    string
	loading     bool
	loadingMore bool
	reqSeq      int
	deepLinkID  string

	tracker  Tracker
	sentinel Sentinel

	scrollLine int
	width      int
	height     int

	err    error
	notice string

	// commentFocus routes key input to the open comment sheet.
	commentFocus bool
}

// New creates a feed model with injected dependencies.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF00FF"))

	if deps.InitialPageSize <= 0 {
		deps.InitialPageSize = defaultInitialPageSize
	}
	if deps.PageSize <= 0 {
		deps.PageSize = defaultPageSize
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	tracker := deps.Tracker
	if tracker == nil {
		tracker = NewTracker()
	}

	return Model{
		deps:       deps,
		keys:       common.DefaultKeyMap(),
		spinner:    s,
		loading:    true,
		deepLinkID: deps.DeepLinkID,
		tracker:    tracker,
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchSeed(m.reqSeq),
		m.spinner.Tick,
	)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// ActiveID returns the id of the video currently eligible for playback,
// or "" when the feed is empty.
func (m Model) ActiveID() string {
	return m.activeID
}

// Videos returns the loaded videos in feed order.
func (m Model) Videos() []domain.Video {
	out := make([]domain.Video, 0, len(m.cells))
	for _, c := range m.cells {
		out = append(out, c.Video)
	}
	return out
}

// LoadingMore reports whether a page fetch is in flight.
func (m Model) LoadingMore() bool {
	return m.loadingMore
}

// CommentSheetOpen reports whether a comment sheet has key focus.
func (m Model) CommentSheetOpen() bool {
	return m.commentFocus
}

func (m Model) indexOf(id string) int {
	for i, c := range m.cells {
		if c.Video.ID == id {
			return i
		}
	}
	return -1
}

func (m Model) extentFor(index int) Extent {
	return Extent{Top: index * cellHeight, Height: cellHeight}
}

func (m Model) viewportHeight() int {
	h := m.height - reservedLines
	if h < cellHeight {
		h = cellHeight
	}
	return h
}

func (m *Model) clampScroll() {
	max := len(m.cells)*cellHeight - m.viewportHeight()
	if max < 0 {
		max = 0
	}
	if m.scrollLine > max {
		m.scrollLine = max
	}
	if m.scrollLine < 0 {
		m.scrollLine = 0
	}
}
