package login

import (
	"errors"
	"strings"

	"github.com/KumailHaider61/echochamber/domain"
	"github.com/KumailHaider61/echochamber/tui/common"
)

// View renders the auth form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Echo Chamber"))
	b.WriteString("\n")
	b.WriteString(common.TaglineStyle.Render("Where your videos echo forever"))
	b.WriteString("\n\n")

	if m.mode == signUpMode {
		b.WriteString(common.SheetTitleStyle.Render("  Create account"))
		b.WriteString("\n\n")
		b.WriteString("  " + common.FieldLabelStyle.Render("Name") + "\n")
		b.WriteString("  " + m.inputs[fieldName].View() + "\n\n")
	} else {
		b.WriteString(common.SheetTitleStyle.Render("  Sign in"))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + common.FieldLabelStyle.Render("Email") + "\n")
	b.WriteString("  " + m.inputs[fieldEmail].View() + "\n\n")
	b.WriteString("  " + common.FieldLabelStyle.Render("Password") + "\n")
	b.WriteString("  " + m.inputs[fieldPassword].View() + "\n\n")

	switch {
	case m.busy:
		b.WriteString(common.StatusBarStyle.Render("  Signing in..."))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  " + authErrorText(m.err)))
	}
	b.WriteString("\n")

	toggle := "ctrl+s sign up instead"
	if m.mode == signUpMode {
		toggle = "ctrl+s sign in instead"
	}
	b.WriteString(common.StatusBarStyle.Render("  enter submit · tab next field · " + toggle + " · esc browse without an account"))
	return b.String()
}

func authErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Check your email and password."
	case errors.Is(err, domain.ErrUserExists):
		return "An account with that email already exists."
	default:
		return "Something went wrong. Try again."
	}
}
