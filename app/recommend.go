package app

import "context"

// Activity describes a user's recent behavior for the recommender.
type Activity struct {
	WatchedVideos    []string
	LikedCategories  []string
	FollowedCreators []string
}

// Recommendation is a single suggested video with a human-readable reason.
type Recommendation struct {
	VideoID string
	Reason  string
}

// Recommender suggests one video for the given activity. Single-shot:
// failures are displayed, never retried automatically.
type Recommender interface {
	Recommend(ctx context.Context, activity Activity) (Recommendation, error)
}
