package domain

// User is an Echo Chamber account. Follower and like totals are kept as
// pre-formatted display strings, the way the catalog stores them.
type User struct {
	ID          string
	Name        string
	Email       string
	Password    string // mock store only; never rendered
	AvatarURL   string
	Bio         string
	Following   int
	Followers   string
	Likes       string
	LikedVideos []string
}

// Ref returns the denormalized identity stamped onto videos and comments.
func (u User) Ref() AuthorRef {
	return AuthorRef{Name: u.Name, AvatarURL: u.AvatarURL}
}

// HasLiked reports whether the user has liked the given video.
func (u User) HasLiked(videoID string) bool {
	for _, id := range u.LikedVideos {
		if id == videoID {
			return true
		}
	}
	return false
}
