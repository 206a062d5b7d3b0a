package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/tui/common"
	"github.com/KumailHaider61/echochamber/tui/feed"
	"github.com/KumailHaider61/echochamber/tui/login"
	"github.com/KumailHaider61/echochamber/tui/profile"
	"github.com/KumailHaider61/echochamber/tui/recommend"
	"github.com/KumailHaider61/echochamber/tui/upload"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Source      app.VideoSource
	Session     app.SessionService
	Player      app.Player
	Clipboard   app.Clipboard
	Recommender app.Recommender
	Logger      *slog.Logger

	BaseURL      string
	DeepLinkID   string
	PageSize     int
	InitialPage  int
	NetworkDelay time.Duration
}

type activeView int

const (
	feedView activeView = iota
	loginView
	uploadView
	profileView
	recommendView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps      Deps
	active    activeView
	feed      feed.Model
	login     login.Model
	upload    upload.Model
	profile   profile.Model
	recommend recommend.Model
	keys      common.KeyMap
	status    string // Transient status message (e.g. "Video published!")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	a := App{
		deps:   deps,
		active: feedView,
		keys:   common.DefaultKeyMap(),
		feed: feed.New(feed.Deps{
			Source:          deps.Source,
			Session:         deps.Session,
			Player:          deps.Player,
			Clipboard:       deps.Clipboard,
			Logger:          deps.Logger,
			BaseURL:         deps.BaseURL,
			DeepLinkID:      deps.DeepLinkID,
			InitialPageSize: deps.InitialPage,
			PageSize:        deps.PageSize,
			NetworkDelay:    deps.NetworkDelay,
		}),
	}
	if _, ok := deps.Session.Current(); !ok {
		a.active = loginView
		a.login = login.New(deps.Session)
	}
	return a
}

// Init starts the feed fetch, and the auth form if nobody is signed in.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.feed.Init()}
	if a.active == loginView {
		cmds = append(cmds, a.login.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The feed keeps tracking geometry even while another view is up.
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.active == feedView && !a.feed.CommentSheetOpen() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit

			case key.Matches(msg, a.keys.Upload):
				return a.openUpload()

			case key.Matches(msg, a.keys.Profile):
				return a.openProfile()

			case key.Matches(msg, a.keys.ForYou):
				return a.openRecommend()
			}
		}

	case spinner.TickMsg:
		// Spinners tick in the feed and the recommendation dialog.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		cmds = append(cmds, cmd)
		if a.active == recommendView {
			a.recommend, cmd = a.recommend.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case login.DoneMsg:
		a.active = feedView
		if msg.Cancelled {
			a.status = "Browsing as a guest. Press p to sign in."
			return a, nil
		}
		if msg.Err != nil {
			a.status = "Sign-in failed."
			return a, nil
		}
		a.status = "Welcome back, " + msg.User.Name + "!"
		// Reseed so liked flags reflect the session user.
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(feed.ReseedMsg{})
		return a, cmd

	case upload.DoneMsg:
		a.active = feedView
		if msg.Cancelled {
			a.status = ""
			return a, nil
		}
		if msg.Err != nil {
			a.status = "Upload failed."
			return a, nil
		}
		a.status = "Video published!"
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(feed.ReseedMsg{VideoID: msg.Video.ID})
		return a, cmd

	case profile.DoneMsg:
		a.active = feedView
		if msg.LoggedOut {
			a.status = "Logged out."
			var cmd tea.Cmd
			a.feed, cmd = a.feed.Update(feed.ReseedMsg{})
			return a, cmd
		}
		a.status = ""
		return a, nil

	case profile.WatchMsg:
		a.active = feedView
		a.status = ""
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(feed.ReseedMsg{VideoID: msg.VideoID})
		return a, cmd

	case recommend.DoneMsg:
		a.active = feedView
		a.status = ""
		return a, nil

	case recommend.WatchMsg:
		a.active = feedView
		a.status = ""
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(feed.ReseedMsg{VideoID: msg.VideoID})
		return a, cmd
	}

	// Delegate to the active sub-model.
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		if _, isKey := msg.(tea.KeyMsg); isKey {
			a.status = ""
		}
		a.feed, cmd = a.feed.Update(msg)
	case loginView:
		a.login, cmd = a.login.Update(msg)
	case uploadView:
		a.upload, cmd = a.upload.Update(msg)
	case profileView:
		a.profile, cmd = a.profile.Update(msg)
	case recommendView:
		a.recommend, cmd = a.recommend.Update(msg)
	}
	return a, cmd
}

func (a App) openUpload() (tea.Model, tea.Cmd) {
	if _, ok := a.deps.Session.Current(); !ok {
		a.active = loginView
		a.login = login.New(a.deps.Session)
		a.status = "Sign in to upload."
		return a, a.login.Init()
	}
	a.active = uploadView
	a.status = ""
	a.upload = upload.New(a.deps.Source, a.deps.Session)
	return a, a.upload.Init()
}

func (a App) openProfile() (tea.Model, tea.Cmd) {
	user, ok := a.deps.Session.Current()
	if !ok {
		a.active = loginView
		a.login = login.New(a.deps.Session)
		a.status = ""
		return a, a.login.Init()
	}
	a.active = profileView
	a.status = ""
	a.profile = profile.New(a.deps.Source, a.deps.Session, user)
	return a, a.profile.Init()
}

func (a App) openRecommend() (tea.Model, tea.Cmd) {
	a.active = recommendView
	a.status = ""
	a.recommend = recommend.New(a.deps.Recommender, a.deps.Source, a.activity())
	return a, a.recommend.Init()
}

// activity snapshots what the recommender personalizes on: videos in the
// current feed, the session user's likes, and the creators behind them.
func (a App) activity() app.Activity {
	var act app.Activity
	creators := map[string]bool{}
	for _, v := range a.feed.Videos() {
		act.WatchedVideos = append(act.WatchedVideos, v.ID)
		if !creators[v.Author.Name] {
			creators[v.Author.Name] = true
			act.FollowedCreators = append(act.FollowedCreators, v.Author.Name)
		}
	}
	if user, ok := a.deps.Session.Current(); ok {
		act.LikedCategories = append(act.LikedCategories, user.LikedVideos...)
	}
	return act
}

// View renders the active sub-model.
func (a App) View() string {
	var s string
	switch a.active {
	case feedView:
		s = a.feed.View()
	case loginView:
		s = a.login.View()
	case uploadView:
		s = a.upload.View()
	case profileView:
		s = a.profile.View()
	case recommendView:
		s = a.recommend.View()
	}

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render("  " + a.status)
	}
	return s
}
