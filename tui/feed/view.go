package feed

import (
	"fmt"
	"strings"

	"github.com/KumailHaider61/echochamber/tui/common"
)

// reservedLines is the chrome around the scrollable feed: header, status
// line and help line.
const reservedLines = 6

// cellContentLines is cellHeight minus the two border rows.
const cellContentLines = cellHeight - 2

// View renders the feed.
func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s Loading your feed...\n", m.spinner.View())
	}
	if m.err != nil {
		return "\n" + common.ErrorStyle.Render("  Couldn't load the feed: "+m.err.Error()) +
			"\n\n" + common.StatusBarStyle.Render("  r retry · q quit")
	}
	if len(m.cells) == 0 {
		return "\n  No videos yet. Press u to upload the first one.\n"
	}

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Echo Chamber"))
	b.WriteString("\n")
	b.WriteString(m.renderWindow())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render("  " + m.helpLine()))
	return b.String()
}

// renderWindow renders every cell at its fixed height, then slices the
// lines the viewport covers. Keeping render and tracker geometry on the
// same cellHeight is what makes activation line up with what's on
// screen.
func (m Model) renderWindow() string {
	lines := make([]string, 0, len(m.cells)*cellHeight)
	for _, c := range m.cells {
		lines = append(lines, m.renderCell(c)...)
	}

	top := m.scrollLine
	if top > len(lines) {
		top = len(lines)
	}
	bottom := top + m.viewportHeight()
	if bottom > len(lines) {
		bottom = len(lines)
	}
	return strings.Join(lines[top:bottom], "\n")
}

func (m Model) renderCell(c Cell) []string {
	width := m.cellWidth()
	var content []string
	if c.ShowComments {
		content = m.renderCommentSheet(c, width)
	} else {
		content = m.renderVideoFace(c, width)
	}
	for len(content) < cellContentLines {
		content = append(content, "")
	}
	content = content[:cellContentLines]

	style := common.InactiveCellStyle
	if c.Video.ID == m.activeID {
		style = common.ActiveCellStyle
	}
	boxed := style.Width(width).Render(strings.Join(content, "\n"))
	out := strings.Split(boxed, "\n")
	for len(out) < cellHeight {
		out = append(out, "")
	}
	return out[:cellHeight]
}

func (m Model) renderVideoFace(c Cell, width int) []string {
	inner := width - 2
	state := "▶ playing"
	if !c.Playing {
		state = "⏸ paused"
	}
	heart := "♡"
	likeStyle := common.CountStyle
	if c.Liked {
		heart = "♥"
		likeStyle = common.LikedStyle
	}
	counts := fmt.Sprintf("%s · 💬 %s · ↗ %s",
		likeStyle.Render(heart+" "+common.FormatCount(c.Video.LikeCount)),
		common.FormatCount(c.Video.CommentCount),
		common.FormatCount(c.Video.ShareCount),
	)

	return []string{
		common.CreatorStyle.Render(common.Truncate("@"+c.Video.Author.Name, inner)),
		common.CaptionStyle.Render(common.Truncate(c.Video.Caption, inner)),
		"",
		common.CountStyle.Render(common.Truncate(c.Video.MediaURL, inner)),
		"",
		"        ░░░░░ " + state + " ░░░░░",
		"",
		counts,
	}
}

func (m Model) renderCommentSheet(c Cell, width int) []string {
	inner := width - 2
	lines := []string{
		common.SheetTitleStyle.Render(fmt.Sprintf("Comments (%d)", c.Video.CommentCount)),
	}
	comments := c.Video.Comments
	// Newest last; show as many as fit above the input.
	maxShown := cellContentLines - 3
	if len(comments) > maxShown {
		comments = comments[len(comments)-maxShown:]
	}
	for _, cm := range comments {
		line := common.CreatorStyle.Render(cm.Author.Name) + " " + cm.Text
		lines = append(lines, common.Truncate(line, inner))
	}
	for len(lines) < cellContentLines-2 {
		lines = append(lines, "")
	}
	lines = append(lines, c.CommentInput.View())
	lines = append(lines, common.CountStyle.Render("enter to post · esc to close"))
	return lines
}

func (m Model) renderStatus() string {
	if m.loadingMore {
		return "  " + m.spinner.View() + " Loading more videos..."
	}
	if m.notice != "" {
		return common.NoticeStyle.Render("  " + m.notice)
	}
	return ""
}

func (m Model) helpLine() string {
	if m.commentFocus {
		return "enter post · esc close"
	}
	return "j/k scroll · J/K snap · space play/pause · l like · c comments · s share · u upload · p profile · g for you · q quit"
}

func (m Model) cellWidth() int {
	w := m.width - 4
	if w < 30 || m.width == 0 {
		w = 56
	}
	return w
}
