package upload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KumailHaider61/echochamber/domain"
	"github.com/KumailHaider61/echochamber/tui/common"
)

// View renders the upload form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Echo Chamber"))
	b.WriteString("  Upload\n\n")

	b.WriteString("  " + common.FieldLabelStyle.Render("Media URL") + "\n")
	b.WriteString("  " + m.mediaURL.View() + "\n\n")
	b.WriteString("  " + common.FieldLabelStyle.Render("Caption") + "\n")
	b.WriteString(indent(m.caption.View()))
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(common.StatusBarStyle.Render("  Publishing..."))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  " + publishErrorText(m.err)))
	}
	b.WriteString("\n")

	b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf(
		"  ctrl+d publish · tab switch field · esc cancel · %d/150 chars",
		len(m.caption.Value()),
	)))
	return b.String()
}

func publishErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Sign in to upload videos."
	case errors.Is(err, domain.ErrEmptyCaption):
		return "A caption is required."
	default:
		return "Couldn't publish your video. Try again."
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
