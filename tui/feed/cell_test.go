package feed

import (
	"testing"

	"github.com/KumailHaider61/echochamber/domain"
)

func TestCellDoubleToggleRestoresState(t *testing.T) {
	player := &stubPlayer{}
	c := newCell(domain.Video{ID: "vid1", MediaURL: "https://example.com/1.mp4"}, false)

	if err := c.TogglePlay(player); err != nil {
		t.Fatal(err)
	}
	if !c.Playing {
		t.Fatal("expected playing after first toggle")
	}
	if err := c.TogglePlay(player); err != nil {
		t.Fatal(err)
	}
	if c.Playing {
		t.Fatal("expected paused after second toggle")
	}
	if len(player.plays) != 1 || player.pauses != 1 {
		t.Fatalf("expected one play and one pause, got %d/%d", len(player.plays), player.pauses)
	}
}

func TestCellAutoplayBlockedStaysPaused(t *testing.T) {
	player := &stubPlayer{blockAutoplay: true}
	c := newCell(domain.Video{ID: "vid1"}, false)

	err := c.Activate(player)
	if err == nil {
		t.Fatal("expected blocked autoplay to error")
	}
	if c.Playing {
		t.Fatal("blocked autoplay must leave the cell paused")
	}
}

func TestCellApplyLike(t *testing.T) {
	c := newCell(domain.Video{ID: "vid1", LikeCount: 10}, false)

	c.ApplyLike(true)
	if !c.Liked || c.Video.LikeCount != 11 {
		t.Fatalf("expected liked with count 11, got %v %d", c.Liked, c.Video.LikeCount)
	}
	// Same state again is a no-op.
	c.ApplyLike(true)
	if c.Video.LikeCount != 11 {
		t.Fatalf("expected count unchanged, got %d", c.Video.LikeCount)
	}
	c.ApplyLike(false)
	if c.Liked || c.Video.LikeCount != 10 {
		t.Fatalf("expected unliked with count 10, got %v %d", c.Liked, c.Video.LikeCount)
	}
}

func TestCellApplyLikeClampsAtZero(t *testing.T) {
	c := newCell(domain.Video{ID: "vid1", LikeCount: 0}, true)
	c.ApplyLike(false)
	if c.Video.LikeCount != 0 {
		t.Fatalf("expected count clamped at 0, got %d", c.Video.LikeCount)
	}
}

func TestCellAddComment(t *testing.T) {
	c := newCell(domain.Video{ID: "vid1", CommentCount: 2}, false)
	author := domain.AuthorRef{Name: "NeonVibes"}

	if !c.AddComment("  so good  ", author) {
		t.Fatal("expected comment to be added")
	}
	if c.Video.CommentCount != 3 || len(c.Video.Comments) != 1 {
		t.Fatalf("expected count 3 with one local comment, got %d/%d",
			c.Video.CommentCount, len(c.Video.Comments))
	}
	got := c.Video.Comments[0]
	if got.Text != "so good" {
		t.Fatalf("expected trimmed text, got %q", got.Text)
	}
	if got.ID == "" {
		t.Fatal("expected a generated comment id")
	}
}

func TestCellAddCommentWhitespaceNoOp(t *testing.T) {
	c := newCell(domain.Video{ID: "vid1", CommentCount: 2}, false)

	if c.AddComment("   \t  ", domain.AuthorRef{Name: "NeonVibes"}) {
		t.Fatal("whitespace-only comment must not be added")
	}
	if c.Video.CommentCount != 2 || len(c.Video.Comments) != 0 {
		t.Fatal("whitespace-only comment must leave the cell untouched")
	}
}

func TestCellShareURL(t *testing.T) {
	c := newCell(domain.Video{ID: "vid 7"}, false)

	got := c.ShareURL("https://echochamber.chat/")
	want := "https://echochamber.chat/home?videoId=vid+7"
	if got != want {
		t.Fatalf("ShareURL = %q, want %q", got, want)
	}
}

func TestCellLocalEditsDoNotLeakToCatalog(t *testing.T) {
	v := domain.Video{ID: "vid1", LikeCount: 5, Comments: []domain.Comment{{ID: "c1", Text: "first"}}}
	c := newCell(v, false)

	c.ApplyLike(true)
	c.AddComment("local only", domain.AuthorRef{Name: "NeonVibes"})

	if v.LikeCount != 5 || len(v.Comments) != 1 {
		t.Fatal("cell edits must not reach the source video")
	}
}
