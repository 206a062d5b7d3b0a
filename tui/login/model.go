package login

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
)

// --- Mode ---

type mode int

const (
	signInMode mode = iota
	signUpMode
)

// --- Messages ---

// DoneMsg is sent when authentication completes or is cancelled.
type DoneMsg struct {
	User      domain.User
	Cancelled bool
	Err       error
}

type authResultMsg struct {
	user domain.User
	err  error
}

// --- Model ---

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// Model holds the state for the sign-in / sign-up form.
type Model struct {
	session app.SessionService
	mode    mode
	inputs  [fieldCount]textinput.Model
	focus   int
	busy    bool
	err     error
}

// New creates a sign-in form.
func New(session app.SessionService) Model {
	m := Model{session: session, focus: fieldEmail}

	name := textinput.New()
	name.Placeholder = "Display name"
	name.CharLimit = 40

	email := textinput.New()
	email.Placeholder = "you@echo.chat"
	email.CharLimit = 80
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 80

	m.inputs[fieldName] = name
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the auth form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, done(DoneMsg{User: msg.user})

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{Cancelled: true})

		case "tab", "shift+tab", "down", "up":
			return m.cycleFocus(msg.String() == "tab" || msg.String() == "down"), nil

		case "ctrl+s":
			m = m.toggleMode()
			return m, nil

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) cycleFocus(forward bool) Model {
	first := fieldEmail
	if m.mode == signUpMode {
		first = fieldName
	}
	fields := []int{fieldEmail, fieldPassword}
	if m.mode == signUpMode {
		fields = []int{fieldName, fieldEmail, fieldPassword}
	}

	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
			break
		}
	}
	if forward {
		pos = (pos + 1) % len(fields)
	} else {
		pos = (pos - 1 + len(fields)) % len(fields)
	}

	m.inputs[m.focus].Blur()
	m.focus = fields[pos]
	if m.focus < first {
		m.focus = first
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) toggleMode() Model {
	m.err = nil
	if m.mode == signInMode {
		m.mode = signUpMode
		m.inputs[m.focus].Blur()
		m.focus = fieldName
		m.inputs[fieldName].Focus()
	} else {
		m.mode = signInMode
		m.inputs[m.focus].Blur()
		m.focus = fieldEmail
		m.inputs[fieldEmail].Focus()
	}
	return m
}

func (m Model) submit() (Model, tea.Cmd) {
	name := m.inputs[fieldName].Value()
	email := m.inputs[fieldEmail].Value()
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" || (m.mode == signUpMode && name == "") {
		m.err = domain.ErrInvalidCredentials
		return m, nil
	}

	m.busy = true
	m.err = nil
	session := m.session
	signUp := m.mode == signUpMode
	return m, func() tea.Msg {
		ctx := context.Background()
		var (
			user domain.User
			err  error
		)
		if signUp {
			user, err = session.Signup(ctx, name, email, password)
		} else {
			user, err = session.Login(ctx, email, password)
		}
		return authResultMsg{user: user, err: err}
	}
}

func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
