package profile

import (
	"fmt"
	"strings"

	"github.com/KumailHaider61/echochamber/tui/common"
)

// View renders the profile view.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Echo Chamber"))
	b.WriteString("  Profile\n\n")

	b.WriteString("  " + common.CreatorStyle.Render("@"+m.user.Name))
	b.WriteString("  " + common.CountStyle.Render(m.user.Email) + "\n")
	if m.user.Bio != "" {
		b.WriteString("  " + common.CaptionStyle.Render(m.user.Bio) + "\n")
	}
	b.WriteString("  " + common.CountStyle.Render(fmt.Sprintf(
		"%d following · %s followers · %s likes",
		m.user.Following, m.user.Followers, m.user.Likes,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  Loading...\n")
	case m.tab == tabEdit:
		b.WriteString(m.renderEdit())
	default:
		b.WriteString(m.renderList())
	}

	if m.err != nil {
		b.WriteString("\n" + common.ErrorStyle.Render("  Something went wrong: "+m.err.Error()))
	} else if m.status != "" {
		b.WriteString("\n" + common.SuccessStyle.Render("  "+m.status))
	}

	b.WriteString("\n")
	if m.tab == tabEdit {
		b.WriteString(common.StatusBarStyle.Render("  enter save · tab next field · esc back"))
	} else {
		b.WriteString(common.StatusBarStyle.Render("  enter watch · tab switch · ctrl+l log out · esc back"))
	}
	return b.String()
}

func (m Model) renderTabs() string {
	render := func(t tab, label string) string {
		if m.tab == t {
			return common.TabActiveStyle.Render(label)
		}
		return common.TabInactiveStyle.Render(label)
	}
	return "  " + render(tabVideos, fmt.Sprintf("Videos (%d)", len(m.videos))) +
		render(tabLiked, fmt.Sprintf("Liked (%d)", len(m.liked))) +
		render(tabEdit, "Edit")
}

func (m Model) renderList() string {
	list := m.currentList()
	if len(list) == 0 {
		if m.tab == tabLiked {
			return "  Nothing liked yet.\n"
		}
		return "  No uploads yet. Press u on the feed to publish one.\n"
	}

	var b strings.Builder
	for i, v := range list {
		marker := "  "
		if i == m.cursor {
			marker = common.CreatorStyle.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s  %s",
			marker,
			common.CaptionStyle.Render(common.Truncate(v.Caption, 44)),
			common.CountStyle.Render("♡ "+common.FormatCount(v.LikeCount)),
		)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderEdit() string {
	var b strings.Builder
	b.WriteString("  " + common.FieldLabelStyle.Render("Name") + "\n")
	b.WriteString("  " + m.nameInput.View() + "\n\n")
	b.WriteString("  " + common.FieldLabelStyle.Render("Bio") + "\n")
	b.WriteString("  " + m.bioInput.View() + "\n")
	return b.String()
}
