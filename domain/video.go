package domain

// AuthorRef is the denormalized creator identity carried on videos and comments.
type AuthorRef struct {
	Name      string
	AvatarURL string
}

// Comment is a single comment on a video. Comment lists are append-only
// within a feed session.
type Comment struct {
	ID     string
	Author AuthorRef
	Text   string
}

// Video represents one short video in the catalog.
type Video struct {
	ID           string
	UserID       string
	Author       AuthorRef
	MediaURL     string
	Caption      string
	LikeCount    int
	CommentCount int
	ShareCount   int
	Comments     []Comment
}

// Clone returns a deep copy safe for local optimistic edits.
func (v Video) Clone() Video {
	out := v
	if len(v.Comments) > 0 {
		out.Comments = make([]Comment, len(v.Comments))
		copy(out.Comments, v.Comments)
	}
	return out
}
