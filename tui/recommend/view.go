package recommend

import (
	"strings"

	"github.com/KumailHaider61/echochamber/tui/common"
)

// View renders the dialog body; the app wraps it in the dialog frame.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.SheetTitleStyle.Render("✨ For You"))
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " Finding something you'll love...")

	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("Couldn't get a recommendation right now."))
		b.WriteString("\n\n")
		b.WriteString(common.StatusBarStyle.Render("r try again · esc close"))

	default:
		b.WriteString(common.CreatorStyle.Render("@" + m.video.Author.Name))
		b.WriteString("\n")
		b.WriteString(common.CaptionStyle.Render(common.Truncate(m.video.Caption, 48)))
		b.WriteString("\n\n")
		b.WriteString(common.Truncate(m.rec.Reason, 52))
		b.WriteString("\n\n")
		b.WriteString(common.StatusBarStyle.Render("enter watch · r another · esc close"))
	}
	return common.DialogStyle.Render(b.String())
}
