package feed

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
)

// Cell is the per-video playback and interaction state machine. Each cell
// is independent of its neighbors: the feed model drives active status in
// and the cell keeps a local copy of the video for optimistic edits.
// Those edits (like deltas, new comments) are display-only and are not
// pushed back to the video source; a re-fetch recomputes them from the
// store. No cross-session reconciliation happens here.
type Cell struct {
	Video        domain.Video
	Liked        bool
	Playing      bool
	ShowComments bool
	CommentInput textinput.Model
}

func newCell(v domain.Video, liked bool) Cell {
	input := textinput.New()
	input.Placeholder = "Add a comment..."
	input.CharLimit = 280
	return Cell{
		Video:        v.Clone(),
		Liked:        liked,
		CommentInput: input,
	}
}

// Activate attempts autoplay through the player. A policy block leaves
// the cell paused; the caller logs the error, nothing surfaces to the
// user.
func (c *Cell) Activate(p app.Player) error {
	if err := p.Autoplay(c.Video.MediaURL); err != nil {
		c.Playing = false
		return err
	}
	c.Playing = true
	return nil
}

// Deactivate pauses the cell when it loses active status.
func (c *Cell) Deactivate(p app.Player) {
	if c.Playing {
		p.Pause()
	}
	c.Playing = false
}

// TogglePlay flips playback on an explicit user gesture.
func (c *Cell) TogglePlay(p app.Player) error {
	if c.Playing {
		p.Pause()
		c.Playing = false
		return nil
	}
	if err := p.Play(c.Video.MediaURL); err != nil {
		c.Playing = false
		return err
	}
	c.Playing = true
	return nil
}

// ApplyLike records the liked state and adjusts the local count to match.
func (c *Cell) ApplyLike(liked bool) {
	if c.Liked == liked {
		return
	}
	c.Liked = liked
	if liked {
		c.Video.LikeCount++
	} else if c.Video.LikeCount > 0 {
		c.Video.LikeCount--
	}
}

// AddComment appends a comment to the local copy and reports whether
// anything was added. Whitespace-only text is a silent no-op.
func (c *Cell) AddComment(text string, author domain.AuthorRef) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.Video.Comments = append(c.Video.Comments, domain.Comment{
		ID:     uuid.NewString(),
		Author: author,
		Text:   text,
	})
	c.Video.CommentCount++
	return true
}

// ShareURL builds the deep link other clients resolve through the
// videoId query parameter.
func (c Cell) ShareURL(baseURL string) string {
	return fmt.Sprintf("%s/home?videoId=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(c.Video.ID))
}
